package attendance

import (
	"time"
)

// Record adalah event mentah dari perangkat absensi. Status berupa teks
// bebas ("Tepat Waktu", "Terlambat", "Checkout Pulang", ...); rekap yang
// menafsirkannya, bukan modul ini.
type Record struct {
	ID         uint      `gorm:"column:id;primaryKey;autoIncrement"`
	KaryawanID uint      `gorm:"column:karyawan_id;not null;index"`
	Timestamp  time.Time `gorm:"column:timestamp_absensi;type:timestamptz;not null;index"`
	Status     string    `gorm:"column:status;type:varchar(50);not null"`
	CreatedAt  time.Time
}

func (Record) TableName() string {
	return "catatan_absensi"
}
