package calendar

import (
	"testing"
	"time"

	"tableflip.dev/bakelog/pkg/record"
)

func day(y int, m time.Month, d int) record.DayKey {
	return record.DayKey{Year: y, Month: m, Day: d}
}

func TestBuildIndexCollapsesSameDay(t *testing.T) {
	completed := []*record.Bake{
		{Title: "sourdough", On: day(2024, time.March, 5)},
		{Title: "bagels", On: day(2024, time.March, 5)},
		{Title: "rye", On: day(2024, time.March, 7)},
	}
	planned := []*record.Upcoming{
		{Title: "croissants", On: day(2024, time.March, 9)},
	}

	ix := BuildIndex(completed, planned)

	if len(ix.Completed) != 2 {
		t.Fatalf("expected 2 completed days, got %d", len(ix.Completed))
	}
	if !ix.HasCompleted(day(2024, time.March, 5)) || !ix.HasCompleted(day(2024, time.March, 7)) {
		t.Fatal("missing completed day")
	}
	if !ix.HasPlanned(day(2024, time.March, 9)) {
		t.Fatal("missing planned day")
	}
	if ix.HasCompleted(day(2024, time.March, 9)) {
		t.Fatal("planned day leaked into completed set")
	}
}

func TestBuildIndexSkipsNilAndZeroDates(t *testing.T) {
	ix := BuildIndex(
		[]*record.Bake{nil, {Title: "undated"}},
		[]*record.Upcoming{nil, {Title: "undated"}},
	)
	if len(ix.Completed) != 0 || len(ix.Planned) != 0 {
		t.Fatalf("expected empty index, got %d/%d", len(ix.Completed), len(ix.Planned))
	}
}

func TestClickRouting(t *testing.T) {
	ix := BuildIndex(
		[]*record.Bake{{Title: "sourdough", On: day(2024, time.March, 5)}},
		[]*record.Upcoming{
			{Title: "croissants", On: day(2024, time.March, 9)},
			{Title: "focaccia", On: day(2024, time.March, 5)},
		},
	)

	if got := ix.Click(day(2024, time.March, 5)); got != ClickOpenJournal {
		t.Fatalf("completed day (even with a plan): got %v", got)
	}
	if got := ix.Click(day(2024, time.March, 9)); got != ClickPlannedInfo {
		t.Fatalf("planned-only day: got %v", got)
	}
	if got := ix.Click(day(2024, time.March, 1)); got != ClickNothing {
		t.Fatalf("empty day: got %v", got)
	}
}

func TestMonthCellsLeadingBlanks(t *testing.T) {
	// March 2024 starts on a Friday: five leading blanks, 31 day cells.
	anchor := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	cells := MonthCells(anchor, day(2024, time.March, 5), Index{})

	if len(cells) != 5+31 {
		t.Fatalf("expected 36 cells, got %d", len(cells))
	}
	for i := 0; i < 5; i++ {
		if !cells[i].Blank() {
			t.Fatalf("cell %d should be blank", i)
		}
	}
	if cells[5].Day != 1 || cells[len(cells)-1].Day != 31 {
		t.Fatalf("day cells misaligned: first=%d last=%d", cells[5].Day, cells[len(cells)-1].Day)
	}
	var today int
	for _, c := range cells {
		if c.Today {
			today = c.Day
		}
	}
	if today != 5 {
		t.Fatalf("today flag on day %d", today)
	}
}

func TestMonthCellsFlags(t *testing.T) {
	ix := BuildIndex(
		[]*record.Bake{{Title: "rye", On: day(2024, time.February, 29)}},
		[]*record.Upcoming{{Title: "babka", On: day(2024, time.February, 10)}},
	)
	cells := MonthCells(time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC), record.DayKey{}, ix)

	// February 2024 starts on a Thursday and has 29 days.
	if len(cells) != 4+29 {
		t.Fatalf("expected 33 cells, got %d", len(cells))
	}
	for _, c := range cells {
		switch c.Day {
		case 29:
			if !c.Completed || c.Planned {
				t.Fatalf("day 29 flags wrong: %+v", c)
			}
		case 10:
			if !c.Planned || c.Completed {
				t.Fatalf("day 10 flags wrong: %+v", c)
			}
		default:
			if c.Completed || c.Planned {
				t.Fatalf("day %d unexpectedly flagged", c.Day)
			}
		}
	}
}
