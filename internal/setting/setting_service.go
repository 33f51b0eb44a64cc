package setting

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	settingerrors "go-absensi/internal/setting/errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var validWeekdays = map[string]struct{}{
	"sunday":    {},
	"monday":    {},
	"tuesday":   {},
	"wednesday": {},
	"thursday":  {},
	"friday":    {},
	"saturday":  {},
}

//go:generate mockgen -source=setting_service.go -destination=mock/setting_service_mock.go -package=mock
type Service interface {
	Get(ctx context.Context) (SettingResponse, error)
	Upsert(ctx context.Context, req UpsertSettingRequest) (SettingResponse, error)
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Get(ctx context.Context) (SettingResponse, error) {
	row, err := s.repo.FindFirst(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SettingResponse{}, settingerrors.ErrSettingNotFound
		}
		return SettingResponse{}, err
	}

	return mapToResponse(*row), nil
}

func (s *service) Upsert(ctx context.Context, req UpsertSettingRequest) (SettingResponse, error) {
	normalized, err := normalizeWeekdays(req.HariKerja)
	if err != nil {
		return SettingResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SettingResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindFirst(ctx)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return SettingResponse{}, err
		}
		row = &AttendanceSetting{}
	}

	row.HariKerja = datatypes.NewJSONSlice(normalized)

	if row.ID == 0 {
		err = qtx.Create(ctx, row)
	} else {
		err = qtx.Update(ctx, row)
	}
	if err != nil {
		return SettingResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return SettingResponse{}, err
	}

	return mapToResponse(*row), nil
}

// normalizeWeekdays menurunkan ke lowercase dan membuang duplikat,
// urutan kemunculan pertama dipertahankan.
func normalizeWeekdays(names []string) ([]string, error) {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		lower := strings.ToLower(strings.TrimSpace(name))
		if _, ok := validWeekdays[lower]; !ok {
			return nil, settingerrors.ErrUnknownWeekday
		}
		if _, dup := seen[lower]; dup {
			continue
		}
		seen[lower] = struct{}{}
		out = append(out, lower)
	}
	return out, nil
}

func mapToResponse(row AttendanceSetting) SettingResponse {
	return SettingResponse{
		ID:        row.ID,
		HariKerja: []string(row.HariKerja),
	}
}
