package holiday

import (
	"time"
)

type Holiday struct {
	ID         uint      `gorm:"column:id;primaryKey;autoIncrement"`
	Tanggal    time.Time `gorm:"column:tanggal;type:date;not null;index"`
	Keterangan string    `gorm:"column:keterangan;type:varchar(150)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Holiday) TableName() string {
	return "hari_libur"
}
