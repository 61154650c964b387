// Package stats derives streak and completion-rate figures from a habit's
// completion history. Every function is pure: "today" is always passed in.
package stats

import (
	"math"
	"sort"

	"github.com/jgoulah/habitgrid/pkg/models"
)

// RateWindow is the number of days, ending today, that CompletionRate looks at
const RateWindow = 30

// Stats holds the figures shown next to the calendar
type Stats struct {
	CurrentStreak  int `json:"current_streak"`
	LongestStreak  int `json:"longest_streak"`
	CompletionRate int `json:"completion_rate"` // percent, 0-100
}

// Empty returns the stats shown when no habit is selected
func Empty() Stats {
	return Stats{}
}

// Compute returns all figures for completions as of today
func Compute(completions map[string]bool, today models.Day) Stats {
	return Stats{
		CurrentStreak:  CurrentStreak(completions, today),
		LongestStreak:  LongestStreak(completions),
		CompletionRate: CompletionRate(completions, today),
	}
}

// CurrentStreak counts consecutive completed days walking back from today.
// An incomplete today gives 0. The walk never goes further back than the
// number of completed days, since the streak cannot be longer than that.
func CurrentStreak(completions map[string]bool, today models.Day) int {
	limit := completedDays(completions)

	streak := 0
	for day := today; streak < limit; day = day.AddDays(-1) {
		if !completions[day.String()] {
			break
		}
		streak++
	}
	return streak
}

// LongestStreak returns the longest run of calendar-adjacent completed days.
// Keys that are not valid days are ignored.
func LongestStreak(completions map[string]bool) int {
	days := make([]models.Day, 0, len(completions))
	for key, done := range completions {
		if !done {
			continue
		}
		day, err := models.ParseDay(key)
		if err != nil {
			continue
		}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	longest, run := 0, 0
	for i, day := range days {
		if i > 0 && day.Sub(days[i-1]) == 1 {
			run++
		} else {
			run = 1
		}
		longest = max(longest, run)
	}
	return longest
}

// CompletionRate returns the rounded percentage of the RateWindow days
// ending today (inclusive) that were completed. The denominator is always
// RateWindow, however old the habit is.
func CompletionRate(completions map[string]bool, today models.Day) int {
	done := 0
	for i := 0; i < RateWindow; i++ {
		if completions[today.AddDays(-i).String()] {
			done++
		}
	}
	return int(math.Round(100 * float64(done) / RateWindow))
}

func completedDays(completions map[string]bool) int {
	n := 0
	for _, done := range completions {
		if done {
			n++
		}
	}
	return n
}
