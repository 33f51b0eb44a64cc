package holiday

import (
	"context"
	"database/sql"
	"testing"
	"time"

	holidayerrors "go-absensi/internal/holiday/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	withTxFn         func(tx *sql.Tx) Repository
	createFn         func(ctx context.Context, h *Holiday) error
	findAllFn        func(ctx context.Context) ([]Holiday, error)
	findAllBetweenFn func(ctx context.Context, start, end time.Time) ([]Holiday, error)
	findByIDFn       func(ctx context.Context, id uint) (*Holiday, error)
	updateFn         func(ctx context.Context, h *Holiday) error
	deleteFn         func(ctx context.Context, id uint) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository                   { return f.withTxFn(tx) }
func (f *fakeRepo) Create(ctx context.Context, h *Holiday) error   { return f.createFn(ctx, h) }
func (f *fakeRepo) FindAll(ctx context.Context) ([]Holiday, error) { return f.findAllFn(ctx) }
func (f *fakeRepo) FindAllBetween(ctx context.Context, start, end time.Time) ([]Holiday, error) {
	return f.findAllBetweenFn(ctx, start, end)
}
func (f *fakeRepo) FindByID(ctx context.Context, id uint) (*Holiday, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) Update(ctx context.Context, h *Holiday) error { return f.updateFn(ctx, h) }
func (f *fakeRepo) Delete(ctx context.Context, id uint) error    { return f.deleteFn(ctx, id) }

func TestService_Create_ParsesDate(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	var saved Holiday
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.createFn = func(ctx context.Context, h *Holiday) error {
		h.ID = 1
		saved = *h
		return nil
	}

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Create(context.Background(), CreateHolidayRequest{
		Tanggal:    "2025-02-17",
		Keterangan: "Hari Raya",
	})
	assert.NoError(t, err)
	assert.Equal(t, "2025-02-17", resp.Tanggal)
	assert.Equal(t, time.February, saved.Tanggal.Month())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_InvalidDate(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeRepo{})
	_, err := svc.Create(context.Background(), CreateHolidayRequest{
		Tanggal:    "17-02-2025",
		Keterangan: "Hari Raya",
	})
	assert.ErrorIs(t, err, holidayerrors.ErrInvalidHolidayDate)
}

func TestService_GetByID_NotFound(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.findByIDFn = func(ctx context.Context, id uint) (*Holiday, error) {
		return nil, gorm.ErrRecordNotFound
	}

	svc := NewService(db, repo)
	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, holidayerrors.ErrHolidayNotFound)
}
