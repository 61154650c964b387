// Package render draws habits, stats and the calendar heat-map for a terminal.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/jgoulah/habitgrid/internal/calendar"
	"github.com/jgoulah/habitgrid/internal/stats"
	"github.com/jgoulah/habitgrid/pkg/models"
)

// Placeholder is shown instead of a calendar when no habit is selected
const Placeholder = "Select a habit to view"

const (
	cellGlyph   = "■"
	cellWidth   = 2 // glyph plus gap
	labelWidth  = 4 // "Mon "
	defaultFill = "#40c463"
)

// Theme holds the colours used outside the habit's own colour
type Theme struct {
	Empty  lipgloss.Color
	Muted  lipgloss.Color
	Title  lipgloss.Color
	Border lipgloss.Color
}

// DefaultTheme mirrors the GitHub contribution palette
func DefaultTheme() Theme {
	return Theme{
		Empty:  lipgloss.Color("#ebedf0"),
		Muted:  lipgloss.Color("#767676"),
		Title:  lipgloss.Color("#24292f"),
		Border: lipgloss.Color("#d0d7de"),
	}
}

// Renderer turns core data into terminal text
type Renderer struct {
	theme Theme
}

// New returns a renderer using theme
func New(theme Theme) *Renderer {
	return &Renderer{theme: theme}
}

// Heatmap draws the grid as seven weekday rows under a row of month labels
func (r *Renderer) Heatmap(g calendar.Grid, color string) string {
	if color == "" {
		color = defaultFill
	}
	done := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	empty := lipgloss.NewStyle().Foreground(r.theme.Empty)
	muted := lipgloss.NewStyle().Foreground(r.theme.Muted)

	var b strings.Builder
	b.WriteString(muted.Render(monthLine(g)))
	b.WriteString("\n")

	labels := calendar.DayLabels()
	for row := 0; row < 7; row++ {
		b.WriteString(muted.Render(fmt.Sprintf("%-*s", labelWidth, labels[row])))
		for _, week := range g.Weeks {
			cell := week[row]
			switch {
			case !cell.InRange:
				b.WriteString(strings.Repeat(" ", cellWidth))
			case cell.Level == calendar.LevelComplete:
				b.WriteString(done.Render(cellGlyph) + " ")
			default:
				b.WriteString(empty.Render(cellGlyph) + " ")
			}
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// monthLine places each month label above its column. A label that would
// run into the next one is dropped, so a sliver of a month at the left
// edge does not hide the following month.
func monthLine(g calendar.Grid) string {
	width := labelWidth + len(g.Weeks)*cellWidth
	line := []rune(strings.Repeat(" ", width))

	nextStart := width + 1
	for i := len(g.Months) - 1; i >= 0; i-- {
		m := g.Months[i]
		pos := labelWidth + m.Column*cellWidth
		end := pos + len(m.Label)
		if end >= nextStart || end > width {
			continue
		}
		copy(line[pos:], []rune(m.Label))
		nextStart = pos
	}

	return strings.TrimRight(string(line), " ")
}

// Stats draws the three figures as bordered boxes side by side
func (r *Renderer) Stats(s stats.Stats) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(r.theme.Border).
		Padding(0, 1).
		Align(lipgloss.Center)
	label := lipgloss.NewStyle().Foreground(r.theme.Muted)
	value := lipgloss.NewStyle().Bold(true)

	render := func(title, v string) string {
		return box.Render(value.Render(v) + "\n" + label.Render(title))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		render("Current Streak", english.Plural(s.CurrentStreak, "day", "days")),
		render("Longest Streak", english.Plural(s.LongestStreak, "day", "days")),
		render("Completion Rate", fmt.Sprintf("%d%%", s.CompletionRate)),
	)
}

// Habit draws the title, heat-map and stats for one habit, or the
// placeholder when ok is false
func (r *Renderer) Habit(h models.Habit, ok bool, today models.Day) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(r.theme.Title)
	if !ok {
		return lipgloss.JoinVertical(lipgloss.Left,
			title.Render(Placeholder),
			r.Stats(stats.Empty()),
		)
	}

	grid := calendar.Build(h.Completions, today)
	return lipgloss.JoinVertical(lipgloss.Left,
		title.Render(h.Name),
		"",
		r.Heatmap(grid, h.Color),
		"",
		r.Stats(stats.Compute(h.Completions, today)),
	)
}

// HabitList draws one line per habit, marking the selected one
func (r *Renderer) HabitList(habits []models.Habit, selectedID string, now time.Time) string {
	if len(habits) == 0 {
		return lipgloss.NewStyle().Foreground(r.theme.Muted).Render("No habits yet. Add one with: habitgrid add <name>")
	}

	muted := lipgloss.NewStyle().Foreground(r.theme.Muted)
	active := lipgloss.NewStyle().Bold(true)

	lines := make([]string, 0, len(habits))
	for _, h := range habits {
		marker := "  "
		name := h.Name
		if h.ID == selectedID {
			marker = "> "
			name = active.Render(name)
		}

		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(orDefault(h.Color))).Render(cellGlyph)

		created := h.CreatedDate
		if t := h.Created(now.Location()); !t.IsZero() {
			created = humanize.RelTime(t, now, "ago", "from now")
			if models.Today(now).String() == h.CreatedDate {
				created = "today"
			}
		}

		detail := fmt.Sprintf("created %s, done %s  %s",
			created,
			english.Plural(h.CompletedCount(), "time", "times"),
			h.ID)
		lines = append(lines, fmt.Sprintf("%s%s %s  %s", marker, swatch, name, muted.Render(detail)))
	}

	return strings.Join(lines, "\n")
}

func orDefault(color string) string {
	if color == "" {
		return defaultFill
	}
	return color
}
