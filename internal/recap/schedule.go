package recap

import "strings"

const defaultHolidayLabel = "Holiday"

// Classify menentukan kelas satu tanggal. Hari libur menang atas set
// hari kerja; di luar keduanya berarti bukan hari kerja. Perbandingan
// nama hari memakai nama Inggris lowercase.
func Classify(day Day, workdays map[string]struct{}, holidays map[string]string) DayClass {
	if label, ok := holidays[day.Key]; ok {
		if label == "" {
			label = defaultHolidayLabel
		}
		return DayClass{Kind: KindHoliday, Label: label}
	}

	weekday := strings.ToLower(day.Date.Weekday().String())
	if _, ok := workdays[weekday]; ok {
		return DayClass{Kind: KindWorkday}
	}
	return DayClass{Kind: KindNonWorkday}
}
