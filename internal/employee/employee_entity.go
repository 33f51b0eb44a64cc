package employee

import (
	"time"
)

// Employee dipetakan ke tabel karyawan yang juga dipakai perangkat absensi.
type Employee struct {
	ID        uint   `gorm:"column:id;primaryKey;autoIncrement"`
	Nama      string `gorm:"column:nama;type:varchar(100);not null"`
	NIP       string `gorm:"column:nip;type:varchar(30);not null;uniqueIndex:uq_karyawan_nip"`
	Email     string `gorm:"column:email;type:varchar(100);uniqueIndex:uq_karyawan_email"`
	Password  string `gorm:"column:password;type:varchar(100)"`
	Status    string `gorm:"column:status;type:varchar(30);not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Employee) TableName() string {
	return "karyawan"
}
