package setting

import (
	"time"

	"gorm.io/datatypes"
)

// AttendanceSetting adalah record tunggal pengaturan absensi. HariKerja
// berisi nama hari bahasa Inggris lowercase ("monday".."sunday").
type AttendanceSetting struct {
	ID        uint                         `gorm:"column:id;primaryKey;autoIncrement"`
	HariKerja datatypes.JSONSlice[string]  `gorm:"column:hari_kerja;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (AttendanceSetting) TableName() string {
	return "pengaturan_absensi"
}
