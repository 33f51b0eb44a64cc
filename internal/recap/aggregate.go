package recap

import (
	"strings"
	"time"

	"go-absensi/internal/attendance"
)

// Aggregate membangun indeks (karyawan, tanggal) → jam datang/pulang
// dari catatan mentah. Catatan diproses sesuai urutan slice, TANPA
// sort kronologis: check-in pertama yang tercatat menang (first-wins),
// checkout terakhir yang tercatat menang (last-wins, menutup kasus
// scan ulang di perangkat). Status di luar dua aturan itu diabaikan.
func Aggregate(records []attendance.Record, loc *time.Location) map[DayKey]Times {
	agg := make(map[DayKey]Times, len(records))

	for _, rec := range records {
		local := rec.Timestamp.In(loc)
		key := DayKey{KaryawanID: rec.KaryawanID, DateKey: local.Format(displayKeyFormat)}
		status := strings.ToLower(rec.Status)

		times := agg[key]
		switch {
		case isArrivalStatus(status):
			if times.Arrival != "" {
				continue
			}
			times.Arrival = local.Format(timeOfDayFormat)
		case isDepartureStatus(status):
			times.Departure = local.Format(timeOfDayFormat)
		default:
			continue
		}
		agg[key] = times
	}

	return agg
}

func isArrivalStatus(status string) bool {
	switch status {
	case "on time", "late", "tepat waktu", "terlambat":
		return true
	}
	return false
}

func isDepartureStatus(status string) bool {
	return strings.Contains(status, "checkout") || strings.Contains(status, "pulang")
}
