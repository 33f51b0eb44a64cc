package holiday

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=holiday_repo.go -destination=mock/holiday_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, h *Holiday) error
	FindAll(ctx context.Context) ([]Holiday, error)
	FindAllBetween(ctx context.Context, start, end time.Time) ([]Holiday, error)
	FindByID(ctx context.Context, id uint) (*Holiday, error)
	Update(ctx context.Context, h *Holiday) error
	Delete(ctx context.Context, id uint) error
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

func (r *repository) Create(ctx context.Context, h *Holiday) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Holiday, error) {
	var holidays []Holiday
	err := r.db.WithContext(ctx).
		Order("tanggal ASC").
		Find(&holidays).Error
	return holidays, err
}

func (r *repository) FindAllBetween(ctx context.Context, start, end time.Time) ([]Holiday, error) {
	var holidays []Holiday
	err := r.db.WithContext(ctx).
		Where("tanggal BETWEEN ? AND ?", start.Format("2006-01-02"), end.Format("2006-01-02")).
		Order("tanggal ASC").
		Find(&holidays).Error
	return holidays, err
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Holiday, error) {
	var h Holiday
	err := r.db.WithContext(ctx).
		First(&h, "id = ?", id).Error
	return &h, err
}

func (r *repository) Update(ctx context.Context, h *Holiday) error {
	return r.db.WithContext(ctx).Save(h).Error
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Delete(&Holiday{}, "id = ?", id).Error
}
