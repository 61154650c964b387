package models

import (
	"maps"
	"time"
)

// Habit is a user-defined daily activity and its completion history.
// Streaks and rates are never stored here; they are recomputed from Completions.
type Habit struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Color       string          `json:"color"`
	CreatedDate string          `json:"createdDate"` // YYYY-MM-DD
	Completions map[string]bool `json:"completions"` // YYYY-MM-DD -> done
}

// Completed reports whether the habit was done on the given day.
// Days missing from Completions count as not done.
func (h Habit) Completed(day string) bool {
	return h.Completions[day]
}

// CompletedCount returns the number of days marked done
func (h Habit) CompletedCount() int {
	n := 0
	for _, done := range h.Completions {
		if done {
			n++
		}
	}
	return n
}

// Created returns CreatedDate as a time in loc, or the zero time if it is malformed
func (h Habit) Created(loc *time.Location) time.Time {
	d, err := ParseDay(h.CreatedDate)
	if err != nil {
		return time.Time{}
	}
	return d.In(loc)
}

// Clone returns a copy that shares no state with h
func (h Habit) Clone() Habit {
	c := h
	c.Completions = make(map[string]bool, len(h.Completions))
	maps.Copy(c.Completions, h.Completions)
	return c
}
