package recap

import (
	"context"
	"time"

	"go-absensi/internal/attendance"
	"go-absensi/internal/employee"
	"go-absensi/internal/holiday"
	"go-absensi/internal/setting"

	"gorm.io/gorm"
)

//go:generate mockgen -source=recap_repo.go -destination=mock/recap_repo_mock.go -package=mock
type Repository interface {
	FindWorkdaySetting(ctx context.Context) (setting.AttendanceSetting, error)
	FindHolidaysBetween(ctx context.Context, start, end time.Time) ([]holiday.Holiday, error)
	FindEmployees(ctx context.Context) ([]employee.Employee, error)
	FindAttendanceBetween(ctx context.Context, start, end time.Time) ([]attendance.Record, error)
}

type repository struct {
	db       *gorm.DB
	holidays holiday.Repository
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db, holidays: holiday.NewRepository(db)}
}

func (r *repository) FindWorkdaySetting(ctx context.Context) (setting.AttendanceSetting, error) {
	var row setting.AttendanceSetting
	err := r.db.WithContext(ctx).Order("id ASC").First(&row).Error
	return row, err
}

// FindHolidaysBetween membaca lewat repository modul holiday; query
// rentang tanggalnya milik modul itu.
func (r *repository) FindHolidaysBetween(ctx context.Context, start, end time.Time) ([]holiday.Holiday, error) {
	return r.holidays.FindAllBetween(ctx, start, end)
}

func (r *repository) FindEmployees(ctx context.Context) ([]employee.Employee, error) {
	var rows []employee.Employee
	err := r.db.WithContext(ctx).
		Select("id", "nama", "nip", "status").
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}

// FindAttendanceBetween sengaja tanpa ORDER BY; lihat aturan
// first-wins/last-wins pada Aggregate.
func (r *repository) FindAttendanceBetween(ctx context.Context, start, end time.Time) ([]attendance.Record, error) {
	var rows []attendance.Record
	err := r.db.WithContext(ctx).
		Where("timestamp_absensi BETWEEN ? AND ?", start, end).
		Find(&rows).Error
	return rows, err
}
