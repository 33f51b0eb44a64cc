package attendance

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, rec *Record) error
	FindAllBetween(ctx context.Context, start, end time.Time) ([]Record, error)
	FindAllByEmployeeBetween(ctx context.Context, karyawanID uint, start, end time.Time) ([]Record, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, rec *Record) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

// FindAllBetween sengaja tanpa ORDER BY: agregasi rekap memakai urutan
// apa adanya dari store (lihat aturan first-wins/last-wins di recap).
func (r *repository) FindAllBetween(ctx context.Context, start, end time.Time) ([]Record, error) {
	var rows []Record
	err := r.db.WithContext(ctx).
		Where("timestamp_absensi BETWEEN ? AND ?", start, end).
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllByEmployeeBetween(ctx context.Context, karyawanID uint, start, end time.Time) ([]Record, error) {
	var rows []Record
	err := r.db.WithContext(ctx).
		Where("karyawan_id = ?", karyawanID).
		Where("timestamp_absensi BETWEEN ? AND ?", start, end).
		Order("timestamp_absensi ASC").
		Find(&rows).Error
	return rows, err
}
