package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDay(t *testing.T) {
	d, err := ParseDay("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.February, d.Month())
	assert.Equal(t, 29, d.DayOfMonth())
	assert.Equal(t, "2024-02-29", d.String())

	for _, bad := range []string{"", "2024-2-29", "2023-02-29", "yesterday", "2024-02-29T00:00:00Z"} {
		_, err := ParseDay(bad)
		assert.Error(t, err, bad)
	}
}

func TestDayArithmeticCrossesBoundaries(t *testing.T) {
	tests := []struct {
		name string
		from string
		n    int
		want string
	}{
		{"month end", "2025-01-31", 1, "2025-02-01"},
		{"year end", "2024-12-31", 1, "2025-01-01"},
		{"leap day back", "2024-03-01", -1, "2024-02-29"},
		{"a year back", "2025-10-15", -364, "2024-10-16"},
		{"us dst start", "2025-03-09", 1, "2025-03-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, err := ParseDay(tt.from)
			require.NoError(t, err)
			got := from.AddDays(tt.n)
			assert.Equal(t, tt.want, got.String())
			assert.Equal(t, tt.n, got.Sub(from))
		})
	}
}

func TestTodayUsesLocalCalendarDay(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	// 23:30 local is already the next day in UTC
	now := time.Date(2025, 6, 30, 23, 30, 0, 0, loc)
	assert.Equal(t, "2025-06-30", Today(now).String())
}

func TestDayWeekdayAndOrdering(t *testing.T) {
	d := NewDay(2025, time.October, 12)
	assert.Equal(t, time.Sunday, d.Weekday())
	assert.True(t, d.Before(d.AddDays(1)))
	assert.True(t, d.After(d.AddDays(-1)))
	assert.False(t, d.IsZero())
	assert.True(t, Day{}.IsZero())
}
