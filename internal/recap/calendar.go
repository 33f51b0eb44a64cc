package recap

import (
	"time"

	recaperrors "go-absensi/internal/recap/errors"
)

// BuildCalendar mengembalikan urutan tanggal dari tanggal 1 sampai yang
// lebih dulu antara akhir bulan dan "hari ini" di zona loc. Bulan yang
// sepenuhnya di masa depan menghasilkan slice kosong, bukan error.
func BuildCalendar(year, month int, now time.Time, loc *time.Location) ([]Day, error) {
	if month < 1 || month > 12 || year <= 0 {
		return nil, recaperrors.ErrInvalidPeriod
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, -1)

	today := now.In(loc)
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, loc)
	if today.Before(end) {
		end = today
	}

	var days []Day
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, Day{Date: d, Key: d.Format(displayKeyFormat)})
	}
	return days, nil
}
