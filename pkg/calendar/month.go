package calendar

import (
	"time"

	"tableflip.dev/bakelog/pkg/record"
)

// Cell is one slot in a month grid. Leading blank cells (Day == 0) pad the
// first week so day 1 lands on its weekday column.
type Cell struct {
	Day       int
	Key       record.DayKey
	Completed bool
	Planned   bool
	Today     bool
}

func (c Cell) Blank() bool {
	return c.Day == 0
}

// MonthCells produces the grid for the month containing anchor: one blank per
// weekday slot before day 1 (Sunday-first columns), then one cell per day 1..N
// flagged against the index and the viewer's local today.
func MonthCells(anchor time.Time, today record.DayKey, ix Index) []Cell {
	first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
	days := DaysIn(anchor)

	cells := make([]Cell, 0, int(first.Weekday())+days)
	for i := time.Sunday; i < first.Weekday(); i++ {
		cells = append(cells, Cell{})
	}
	for d := 1; d <= days; d++ {
		k := record.DayKey{Year: first.Year(), Month: first.Month(), Day: d}
		cells = append(cells, Cell{
			Day:       d,
			Key:       k,
			Completed: ix.HasCompleted(k),
			Planned:   ix.HasPlanned(k),
			Today:     k == today,
		})
	}
	return cells
}

// DaysIn returns the number of days in the month containing t.
func DaysIn(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// StartDay returns the weekday of the first of the month containing t.
func StartDay(t time.Time) time.Weekday {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).Weekday()
}

// NextMonth and PrevMonth step the displayed anchor, pinned to day 1 so short
// months never skip.
func NextMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, t.Location())
}

func PrevMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()-1, 1, 0, 0, 0, 0, t.Location())
}
