package recap

import (
	"testing"
	"time"

	recaperrors "go-absensi/internal/recap/errors"

	"github.com/stretchr/testify/assert"
)

var jakarta = time.FixedZone("WIB", 7*3600)

func TestBuildCalendar_PastMonthFullLength(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, jakarta)

	days, err := BuildCalendar(2025, 2, now, jakarta)
	assert.NoError(t, err)
	assert.Len(t, days, 28)
	assert.Equal(t, "01 Feb 2025", days[0].Key)
	assert.Equal(t, "28 Feb 2025", days[27].Key)
}

func TestBuildCalendar_CurrentMonthClippedToToday(t *testing.T) {
	now := time.Date(2025, 2, 15, 23, 30, 0, 0, jakarta)

	days, err := BuildCalendar(2025, 2, now, jakarta)
	assert.NoError(t, err)
	assert.Len(t, days, 15)
	assert.Equal(t, "15 Feb 2025", days[len(days)-1].Key)
}

func TestBuildCalendar_TodayInZoneNotServerClock(t *testing.T) {
	// 18:00 UTC pada 14 Feb sudah 15 Feb 01:00 di WIB
	now := time.Date(2025, 2, 14, 18, 0, 0, 0, time.UTC)

	days, err := BuildCalendar(2025, 2, now, jakarta)
	assert.NoError(t, err)
	assert.Len(t, days, 15)
}

func TestBuildCalendar_FutureMonthEmpty(t *testing.T) {
	now := time.Date(2025, 2, 15, 12, 0, 0, 0, jakarta)

	days, err := BuildCalendar(2025, 6, now, jakarta)
	assert.NoError(t, err)
	assert.Empty(t, days)
}

func TestBuildCalendar_InvalidPeriod(t *testing.T) {
	now := time.Date(2025, 2, 15, 12, 0, 0, 0, jakarta)

	for _, tc := range []struct{ year, month int }{
		{2025, 0},
		{2025, 13},
		{0, 3},
		{-1, 3},
	} {
		_, err := BuildCalendar(tc.year, tc.month, now, jakarta)
		assert.ErrorIs(t, err, recaperrors.ErrInvalidPeriod)
	}
}
