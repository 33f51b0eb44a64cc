package recap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func weekdaySet(names ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

func day(y int, m time.Month, d int) Day {
	date := time.Date(y, m, d, 0, 0, 0, 0, jakarta)
	return Day{Date: date, Key: date.Format(displayKeyFormat)}
}

func TestClassify_HolidayWinsOverWorkday(t *testing.T) {
	workdays := weekdaySet("monday", "tuesday", "wednesday", "thursday", "friday")
	holidays := map[string]string{"17 Feb 2025": "Independence Day Observed"}

	// 17 Feb 2025 jatuh di hari Senin
	got := Classify(day(2025, 2, 17), workdays, holidays)
	assert.Equal(t, KindHoliday, got.Kind)
	assert.Equal(t, "Independence Day Observed", got.Label)
}

func TestClassify_EmptyHolidayLabelFallsBack(t *testing.T) {
	holidays := map[string]string{"17 Feb 2025": ""}

	got := Classify(day(2025, 2, 17), weekdaySet("monday"), holidays)
	assert.Equal(t, KindHoliday, got.Kind)
	assert.Equal(t, "Holiday", got.Label)
}

func TestClassify_WorkdayAndNonWorkday(t *testing.T) {
	workdays := weekdaySet("monday", "tuesday", "wednesday", "thursday", "friday")

	assert.Equal(t, KindWorkday, Classify(day(2025, 2, 3), workdays, nil).Kind)    // Senin
	assert.Equal(t, KindNonWorkday, Classify(day(2025, 2, 1), workdays, nil).Kind) // Sabtu
	assert.Equal(t, KindNonWorkday, Classify(day(2025, 2, 2), workdays, nil).Kind) // Minggu
}
