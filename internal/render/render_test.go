package render

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgoulah/habitgrid/internal/calendar"
	"github.com/jgoulah/habitgrid/internal/stats"
	"github.com/jgoulah/habitgrid/pkg/models"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func plain(s string) string {
	return ansi.ReplaceAllString(s, "")
}

var today = models.NewDay(2025, time.October, 15)

func TestHeatmap(t *testing.T) {
	completions := map[string]bool{today.String(): true, today.AddDays(-1).String(): true}
	g := calendar.Build(completions, today)

	out := plain(New(DefaultTheme()).Heatmap(g, "#216e39"))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 8)

	assert.True(t, strings.HasPrefix(lines[0], "    Oct"), lines[0])
	for _, month := range []string{"Nov", "Dec", "Jan", "Jun"} {
		assert.Contains(t, lines[0], month)
	}
	assert.True(t, strings.HasPrefix(lines[2], "Mon "))
	assert.True(t, strings.HasPrefix(lines[4], "Wed "))
	assert.True(t, strings.HasPrefix(lines[6], "Fri "))

	// every in-range day is drawn once
	assert.Equal(t, len(g.Cells()), strings.Count(out, cellGlyph))
}

func TestMonthLineDropsCrowdedLabel(t *testing.T) {
	g := calendar.Grid{
		Weeks: make([]calendar.Week, calendar.Columns),
		Months: []calendar.MonthLabel{
			{Column: 0, Label: "Mar"},
			{Column: 1, Label: "Apr"},
			{Column: 6, Label: "May"},
		},
	}

	line := monthLine(g)
	assert.NotContains(t, line, "Mar")
	assert.Equal(t, 4+1*2, strings.Index(line, "Apr"))
	assert.Equal(t, 4+6*2, strings.Index(line, "May"))
}

func TestStats(t *testing.T) {
	out := plain(New(DefaultTheme()).Stats(stats.Stats{CurrentStreak: 1, LongestStreak: 12, CompletionRate: 43}))

	for _, want := range []string{"Current Streak", "Longest Streak", "Completion Rate", "1 day", "12 days", "43%"} {
		assert.Contains(t, out, want)
	}
}

func TestHabitPlaceholder(t *testing.T) {
	out := plain(New(DefaultTheme()).Habit(models.Habit{}, false, today))

	assert.Contains(t, out, Placeholder)
	assert.Contains(t, out, "0 days")
	assert.Contains(t, out, "0%")
	assert.NotContains(t, out, cellGlyph)
}

func TestHabit(t *testing.T) {
	h := models.Habit{
		ID:          "h1",
		Name:        "Meditate",
		Color:       "#9be9a8",
		CreatedDate: "2025-10-01",
		Completions: map[string]bool{today.String(): true},
	}

	out := plain(New(DefaultTheme()).Habit(h, true, today))
	assert.True(t, strings.HasPrefix(out, "Meditate"))
	assert.Contains(t, out, "Mon")
	assert.Contains(t, out, "1 day")
	assert.Contains(t, out, "3%")
}

func TestHabitList(t *testing.T) {
	now := time.Date(2025, time.October, 15, 12, 0, 0, 0, time.UTC)
	habits := []models.Habit{
		{ID: "a", Name: "Read", Color: "#40c463", CreatedDate: "2025-10-15", Completions: map[string]bool{"2025-10-15": true}},
		{ID: "b", Name: "Run", CreatedDate: "2025-10-01", Completions: map[string]bool{}},
	}

	out := plain(New(DefaultTheme()).HabitList(habits, "b", now))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)

	assert.True(t, strings.HasPrefix(lines[0], "  "))
	assert.Contains(t, lines[0], "Read")
	assert.Contains(t, lines[0], "created today")
	assert.Contains(t, lines[0], "done 1 time")

	assert.True(t, strings.HasPrefix(lines[1], "> "))
	assert.Contains(t, lines[1], "Run")
	assert.Contains(t, lines[1], "weeks ago")
	assert.Contains(t, lines[1], "done 0 times")
}

func TestHabitListEmpty(t *testing.T) {
	out := plain(New(DefaultTheme()).HabitList(nil, "", time.Now()))
	assert.Contains(t, out, "No habits yet")
}
