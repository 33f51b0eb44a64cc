package attendance

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-absensi/internal/shared/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	withTxFn                   func(tx *sql.Tx) Repository
	createFn                   func(ctx context.Context, rec *Record) error
	findAllBetweenFn           func(ctx context.Context, start, end time.Time) ([]Record, error)
	findAllByEmployeeBetweenFn func(ctx context.Context, karyawanID uint, start, end time.Time) ([]Record, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository                { return f.withTxFn(tx) }
func (f *fakeRepo) Create(ctx context.Context, r *Record) error { return f.createFn(ctx, r) }
func (f *fakeRepo) FindAllBetween(ctx context.Context, start, end time.Time) ([]Record, error) {
	return f.findAllBetweenFn(ctx, start, end)
}
func (f *fakeRepo) FindAllByEmployeeBetween(ctx context.Context, karyawanID uint, start, end time.Time) ([]Record, error) {
	return f.findAllByEmployeeBetweenFn(ctx, karyawanID, start, end)
}

func TestService_Record(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	var saved Record
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.createFn = func(ctx context.Context, rec *Record) error {
		rec.ID = 11
		saved = *rec
		return nil
	}

	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Record(context.Background(), RecordAttendanceRequest{
		KaryawanID: 3,
		Timestamp:  "2025-02-03T08:05:00+07:00",
		Status:     "Tepat Waktu",
	})
	assert.NoError(t, err)
	assert.Equal(t, uint(11), resp.ID)
	assert.Equal(t, uint(3), saved.KaryawanID)
	assert.Equal(t, "Tepat Waktu", saved.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Record_InvalidTimestamp(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeRepo{})
	_, err := svc.Record(context.Background(), RecordAttendanceRequest{
		KaryawanID: 3,
		Timestamp:  "03-02-2025 08:05",
		Status:     "Tepat Waktu",
	})
	assert.Error(t, err)
	httpErr := apperror.ToHTTP(err)
	assert.Equal(t, 400, httpErr.Status)
}

func TestService_GetAllByPeriod_PreservesStoreOrder(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	base := time.Date(2025, 2, 3, 8, 0, 0, 0, time.UTC)
	repo := &fakeRepo{}
	repo.findAllBetweenFn = func(ctx context.Context, start, end time.Time) ([]Record, error) {
		// store boleh mengembalikan urutan sembarang
		return []Record{
			{ID: 2, KaryawanID: 1, Timestamp: base.Add(time.Hour), Status: "Terlambat"},
			{ID: 1, KaryawanID: 1, Timestamp: base, Status: "Tepat Waktu"},
		}, nil
	}

	svc := NewService(db, repo)
	resp, err := svc.GetAllByPeriod(context.Background(), base.AddDate(0, 0, -1), base.AddDate(0, 0, 1))
	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, uint(2), resp[0].ID)
	assert.Equal(t, uint(1), resp[1].ID)
}
