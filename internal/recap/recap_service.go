package recap

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-absensi/internal/employee"
	recaperrors "go-absensi/internal/recap/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=recap_service.go -destination=mock/recap_service_mock.go -package=mock
type Service interface {
	Assemble(ctx context.Context, month, year int) ([]StatusGroup, error)
	Generate(ctx context.Context, month, year int) (RecapFile, error)
}

type service struct {
	repo   Repository
	loc    *time.Location
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, loc *time.Location) Service {
	return &service{
		repo:   repo,
		loc:    loc,
		now:    time.Now,
		logger: zap.L().Named("recap.service"),
	}
}

// Assemble menjalankan pipeline rekap: kalender → klasifikasi →
// agregasi → tabel baris per status. Murni baca-transform, tidak ada
// state yang ditulis.
func (s *service) Assemble(ctx context.Context, month, year int) ([]StatusGroup, error) {
	days, err := BuildCalendar(year, month, s.now(), s.loc)
	if err != nil {
		return nil, err
	}

	periodStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, s.loc)
	periodEnd := periodStart.AddDate(0, 1, 0).Add(-time.Nanosecond)

	cfg, err := s.repo.FindWorkdaySetting(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("attendance settings missing, recap cannot be generated")
			return nil, recaperrors.ErrMissingConfiguration
		}
		return nil, err
	}

	workdays := make(map[string]struct{}, len(cfg.HariKerja))
	for _, w := range cfg.HariKerja {
		workdays[strings.ToLower(w)] = struct{}{}
	}

	holidayRows, err := s.repo.FindHolidaysBetween(ctx, periodStart, periodEnd)
	if err != nil {
		return nil, err
	}
	holidays := make(map[string]string, len(holidayRows))
	for _, h := range holidayRows {
		holidays[h.Tanggal.In(s.loc).Format(displayKeyFormat)] = h.Keterangan
	}

	roster, err := s.repo.FindEmployees(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.repo.FindAttendanceBetween(ctx, periodStart, periodEnd)
	if err != nil {
		return nil, err
	}
	agg := Aggregate(records, s.loc)

	classes := make([]DayClass, len(days))
	for i, day := range days {
		classes[i] = Classify(day, workdays, holidays)
	}

	// Grup status urut kemunculan pertama di roster, bukan urutan map.
	var groups []StatusGroup
	index := make(map[string]int)
	members := make([][]employee.Employee, 0)
	for _, emp := range roster {
		gi, ok := index[emp.Status]
		if !ok {
			gi = len(groups)
			index[emp.Status] = gi
			groups = append(groups, StatusGroup{Status: emp.Status})
			members = append(members, nil)
		}
		members[gi] = append(members[gi], emp)
	}

	for gi := range groups {
		no := 0
		for di, day := range days {
			for _, emp := range members[gi] {
				no++
				row := Row{No: no, Date: day.Key, Name: emp.Nama}
				switch classes[di].Kind {
				case KindHoliday:
					row.Arrival = classes[di].Label
					row.Departure = classes[di].Label
				case KindNonWorkday:
					row.Arrival = "Not a Workday"
					row.Departure = "Not a Workday"
				default:
					times := agg[DayKey{KaryawanID: emp.ID, DateKey: day.Key}]
					row.Arrival = orDash(times.Arrival)
					row.Departure = orDash(times.Departure)
				}
				groups[gi].Rows = append(groups[gi].Rows, row)
			}
		}
	}

	return groups, nil
}

func (s *service) Generate(ctx context.Context, month, year int) (RecapFile, error) {
	groups, err := s.Assemble(ctx, month, year)
	if err != nil {
		return RecapFile{}, err
	}

	buf, err := writeWorkbook(groups)
	if err != nil {
		s.logger.Error("recap workbook serialization failed", zap.Error(err))
		return RecapFile{}, err
	}

	s.logger.Info("recap generated",
		zap.Int("month", month),
		zap.Int("year", year),
		zap.Int("sheets", len(groups)),
	)

	return RecapFile{
		Name:    fmt.Sprintf("rekap-absensi-%02d-%d.xlsx", month, year),
		Content: buf.Bytes(),
	}, nil
}

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
