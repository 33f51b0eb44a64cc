package setting

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=setting_repo.go -destination=mock/setting_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindFirst(ctx context.Context) (*AttendanceSetting, error)
	Create(ctx context.Context, s *AttendanceSetting) error
	Update(ctx context.Context, s *AttendanceSetting) error
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

func (r *repository) FindFirst(ctx context.Context) (*AttendanceSetting, error) {
	var s AttendanceSetting
	err := r.db.WithContext(ctx).
		Order("id ASC").
		First(&s).Error
	return &s, err
}

func (r *repository) Create(ctx context.Context, s *AttendanceSetting) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) Update(ctx context.Context, s *AttendanceSetting) error {
	return r.db.WithContext(ctx).Save(s).Error
}
