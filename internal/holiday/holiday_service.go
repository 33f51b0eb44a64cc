package holiday

import (
	"context"
	"database/sql"
	"errors"
	"time"

	holidayerrors "go-absensi/internal/holiday/errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=holiday_service.go -destination=mock/holiday_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	GetAll(ctx context.Context) ([]HolidayResponse, error)
	GetByID(ctx context.Context, id uint) (HolidayResponse, error)
	Update(ctx context.Context, id uint, req UpdateHolidayRequest) (HolidayResponse, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error) {
	tanggal, err := time.Parse("2006-01-02", req.Tanggal)
	if err != nil {
		return HolidayResponse{}, holidayerrors.ErrInvalidHolidayDate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return HolidayResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	h := &Holiday{
		Tanggal:    tanggal,
		Keterangan: req.Keterangan,
	}

	if err := qtx.Create(ctx, h); err != nil {
		return HolidayResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return HolidayResponse{}, err
	}

	return mapToResponse(*h), nil
}

func (s *service) GetAll(ctx context.Context) ([]HolidayResponse, error) {
	holidays, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return mapToListResponse(holidays), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (HolidayResponse, error) {
	h, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return HolidayResponse{}, holidayerrors.ErrHolidayNotFound
		}
		return HolidayResponse{}, err
	}

	return mapToResponse(*h), nil
}

func (s *service) Update(ctx context.Context, id uint, req UpdateHolidayRequest) (HolidayResponse, error) {
	tanggal, err := time.Parse("2006-01-02", req.Tanggal)
	if err != nil {
		return HolidayResponse{}, holidayerrors.ErrInvalidHolidayDate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return HolidayResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	h, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return HolidayResponse{}, holidayerrors.ErrHolidayNotFound
		}
		return HolidayResponse{}, err
	}

	h.Tanggal = tanggal
	h.Keterangan = req.Keterangan

	if err := qtx.Update(ctx, h); err != nil {
		return HolidayResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return HolidayResponse{}, err
	}

	return mapToResponse(*h), nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Delete(ctx, id); err != nil {
		return err
	}

	return tx.Commit()
}

func mapToResponse(h Holiday) HolidayResponse {
	return HolidayResponse{
		ID:         h.ID,
		Tanggal:    h.Tanggal.Format("2006-01-02"),
		Keterangan: h.Keterangan,
	}
}

func mapToListResponse(holidays []Holiday) []HolidayResponse {
	res := make([]HolidayResponse, len(holidays))
	for i, h := range holidays {
		res[i] = mapToResponse(h)
	}
	return res
}
