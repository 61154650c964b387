package models

import (
	"fmt"
	"time"
)

// DayLayout is the on-disk format of calendar days
const DayLayout = "2006-01-02"

// Day is a local calendar day with no time of day and no zone.
// All arithmetic is done on calendar dates, so DST shifts and month or
// year boundaries never change the result.
type Day struct {
	year  int
	month time.Month
	day   int
}

// NewDay returns the given calendar day, normalising out-of-range values the way time.Date does
func NewDay(year int, month time.Month, day int) Day {
	return dayOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// Today returns the calendar day of now in now's own location
func Today(now time.Time) Day {
	return dayOf(now)
}

// ParseDay parses a YYYY-MM-DD string
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return Day{}, fmt.Errorf("parsing day %q: %w", s, err)
	}
	return dayOf(t), nil
}

func dayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{year: y, month: m, day: d}
}

func (d Day) utc() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// String formats the day as YYYY-MM-DD
func (d Day) String() string {
	return d.utc().Format(DayLayout)
}

// IsZero reports whether d is the zero Day
func (d Day) IsZero() bool {
	return d == Day{}
}

func (d Day) Year() int             { return d.year }
func (d Day) Month() time.Month     { return d.month }
func (d Day) DayOfMonth() int       { return d.day }
func (d Day) Weekday() time.Weekday { return d.utc().Weekday() }

// AddDays returns the day n calendar days after d (before it when n is negative)
func (d Day) AddDays(n int) Day {
	return dayOf(d.utc().AddDate(0, 0, n))
}

// Sub returns the number of whole calendar days from other to d
func (d Day) Sub(other Day) int {
	return int(d.utc().Sub(other.utc()) / (24 * time.Hour))
}

func (d Day) Before(other Day) bool { return d.Sub(other) < 0 }
func (d Day) After(other Day) bool  { return d.Sub(other) > 0 }

// In returns midnight of d in loc
func (d Day) In(loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, loc)
}
