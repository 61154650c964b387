// Package calendar lays a year of completions out as a Sunday-first week
// grid, the way contribution heat-maps are drawn.
package calendar

import (
	"time"

	"github.com/jgoulah/habitgrid/pkg/models"
)

const (
	// WindowDays is the number of days, ending today, the grid must cover
	WindowDays = 365
	// Columns is the fixed number of week columns in a grid
	Columns = 53
)

// Intensity levels used when colouring a cell
const (
	LevelNone     = 0
	LevelComplete = 4
)

// Cell is one day of the grid
type Cell struct {
	Date      models.Day
	Completed bool
	Level     int
	// InRange is false for the padding days after today in the last column
	InRange bool
}

// Title is the hover text for the cell
func (c Cell) Title() string {
	if c.Completed {
		return c.Date.String() + " - Completed"
	}
	return c.Date.String()
}

// Week is a Sunday-first column of seven cells
type Week [7]Cell

// MonthLabel marks the column where a month first appears
type MonthLabel struct {
	Column int
	Label  string
	Month  time.Month
	Year   int
}

// Grid is a year of completions arranged in week columns
type Grid struct {
	Start  models.Day // always a Sunday
	End    models.Day // today
	Weeks  []Week
	Months []MonthLabel
}

// Build lays completions out over the WindowDays ending at today.
// The grid starts on the Sunday on or before today-364 and always has
// Columns columns; days after today are padding with InRange false.
func Build(completions map[string]bool, today models.Day) Grid {
	start := today.AddDays(-(WindowDays - 1))
	start = start.AddDays(-int(start.Weekday()))

	grid := Grid{
		Start: start,
		End:   today,
		Weeks: make([]Week, Columns),
	}

	type monthKey struct {
		year  int
		month time.Month
	}
	seen := make(map[monthKey]bool)
	lastMonth := time.Month(0)

	day := start
	for col := 0; col < Columns; col++ {
		for row := 0; row < 7; row++ {
			inRange := !day.After(today)

			if inRange && day.Month() != lastMonth {
				lastMonth = day.Month()
				key := monthKey{year: day.Year(), month: day.Month()}
				if !seen[key] {
					seen[key] = true
					grid.Months = append(grid.Months, MonthLabel{
						Column: col,
						Label:  day.Month().String()[:3],
						Month:  day.Month(),
						Year:   day.Year(),
					})
				}
			}

			done := inRange && completions[day.String()]
			grid.Weeks[col][row] = Cell{
				Date:      day,
				Completed: done,
				Level:     Level(done),
				InRange:   inRange,
			}
			day = day.AddDays(1)
		}
	}

	return grid
}

// Level maps a completion flag to a colour intensity
func Level(completed bool) int {
	if completed {
		return LevelComplete
	}
	return LevelNone
}

// DayLabels returns the row labels, with only alternate weekdays named
func DayLabels() [7]string {
	return [7]string{"", "Mon", "", "Wed", "", "Fri", ""}
}

// Cells returns the in-range cells in date order
func (g Grid) Cells() []Cell {
	cells := make([]Cell, 0, len(g.Weeks)*7)
	for _, week := range g.Weeks {
		for _, cell := range week {
			if cell.InRange {
				cells = append(cells, cell)
			}
		}
	}
	return cells
}
