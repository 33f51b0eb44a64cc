package attendance

import (
	"context"
	"database/sql"
	"time"

	attendanceerrors "go-absensi/internal/attendance/errors"

	"go.uber.org/zap"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	Record(ctx context.Context, req RecordAttendanceRequest) (RecordResponse, error)
	GetAllByPeriod(ctx context.Context, start, end time.Time) ([]RecordResponse, error)
	GetByEmployee(ctx context.Context, karyawanID uint, start, end time.Time) ([]RecordResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{
		db:     db,
		repo:   repo,
		logger: zap.L().Named("attendance.service"),
	}
}

func (s *service) Record(ctx context.Context, req RecordAttendanceRequest) (RecordResponse, error) {
	ts, err := time.Parse(time.RFC3339, req.Timestamp)
	if err != nil {
		return RecordResponse{}, attendanceerrors.ErrInvalidTimestamp
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RecordResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rec := &Record{
		KaryawanID: req.KaryawanID,
		Timestamp:  ts,
		Status:     req.Status,
	}

	if err := qtx.Create(ctx, rec); err != nil {
		s.logger.Error("record attendance persist failed", zap.Error(err))
		return RecordResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return RecordResponse{}, err
	}

	s.logger.Info("attendance recorded",
		zap.Uint("employee_id", rec.KaryawanID),
		zap.String("status", rec.Status),
	)

	return mapToResponse(*rec), nil
}

func (s *service) GetAllByPeriod(ctx context.Context, start, end time.Time) ([]RecordResponse, error) {
	rows, err := s.repo.FindAllBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return mapToListResponse(rows), nil
}

func (s *service) GetByEmployee(ctx context.Context, karyawanID uint, start, end time.Time) ([]RecordResponse, error) {
	rows, err := s.repo.FindAllByEmployeeBetween(ctx, karyawanID, start, end)
	if err != nil {
		return nil, err
	}

	return mapToListResponse(rows), nil
}

func mapToResponse(rec Record) RecordResponse {
	return RecordResponse{
		ID:         rec.ID,
		KaryawanID: rec.KaryawanID,
		Timestamp:  rec.Timestamp.Format(time.RFC3339),
		Status:     rec.Status,
	}
}

func mapToListResponse(rows []Record) []RecordResponse {
	res := make([]RecordResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res
}
