package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/bakelog/pkg/calendar"
	"tableflip.dev/bakelog/pkg/record"
	"tableflip.dev/bakelog/pkg/timeutil"
)

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, s string) Model {
	t.Helper()
	next, _ := m.Update(keyMsg(s))
	got, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return got
}

func testModel() Model {
	m := New(nil, nil)
	m.today = record.DayKey{Year: 2024, Month: time.March, Day: 15}
	m.selected = m.today
	m.anchor = monthOf(m.today)
	return m
}

func TestSelectionCrossesMonthBoundary(t *testing.T) {
	m := testModel()
	m.selected = record.DayKey{Year: 2024, Month: time.March, Day: 31}

	m = press(t, m, "right")

	want := record.DayKey{Year: 2024, Month: time.April, Day: 1}
	if m.selected != want {
		t.Fatalf("selected = %s, want %s", m.selected, want)
	}
	if m.anchor.Month() != time.April {
		t.Fatalf("anchor month = %s, want April", m.anchor.Month())
	}
}

func TestWeekNavigationMovesSevenDays(t *testing.T) {
	m := testModel()

	m = press(t, m, "up")
	want := record.DayKey{Year: 2024, Month: time.March, Day: 8}
	if m.selected != want {
		t.Fatalf("selected after up = %s, want %s", m.selected, want)
	}

	m = press(t, m, "down")
	if m.selected != m.today {
		t.Fatalf("selected after down = %s, want %s", m.selected, m.today)
	}
}

func TestMonthJumpSelectsFirstOfMonth(t *testing.T) {
	m := testModel()

	m = press(t, m, "l")

	want := record.DayKey{Year: 2024, Month: time.April, Day: 1}
	if m.selected != want {
		t.Fatalf("selected = %s, want %s", m.selected, want)
	}

	m = press(t, m, "h")
	if got := record.DayKeyOf(m.anchor); got.Month != time.March {
		t.Fatalf("anchor after h = %s, want March", got)
	}
}

func TestClickRouting(t *testing.T) {
	logged := record.DayKey{Year: 2024, Month: time.March, Day: 10}
	planned := record.DayKey{Year: 2024, Month: time.March, Day: 20}

	m := testModel()
	bakes := []*record.Bake{{ID: "a1", Title: "rye loaf", On: logged, Hours: 1}}
	next, _ := m.Update(dataLoadedMsg{
		bakes:    bakes,
		upcoming: []*record.Upcoming{{Title: "babka", On: planned}},
	})
	m = next.(Model)

	m.selected = logged
	m = press(t, m, "enter")
	if !m.dayOpen {
		t.Fatal("expected day journal to open on a logged day")
	}
	if len(m.dayBakes) != 1 || m.dayBakes[0].Title != "rye loaf" {
		t.Fatalf("dayBakes = %+v", m.dayBakes)
	}

	m = press(t, m, "esc")
	if m.dayOpen {
		t.Fatal("esc should close the day journal")
	}

	m.selected = planned
	m = press(t, m, "enter")
	if m.dayOpen {
		t.Fatal("planned-only day must not open the journal")
	}
	if !strings.Contains(m.status, "planned") {
		t.Fatalf("status = %q, want planned notice", m.status)
	}

	m.selected = record.DayKey{Year: 2024, Month: time.March, Day: 3}
	m = press(t, m, "enter")
	if !strings.Contains(m.status, "nothing") {
		t.Fatalf("status = %q, want empty-day notice", m.status)
	}
}

func TestWindowCycleWrapsAround(t *testing.T) {
	m := testModel()

	order := []timeutil.Kind{
		timeutil.KindLastWeek,
		timeutil.KindMonth,
		timeutil.KindAllTime,
		timeutil.KindWeek,
	}
	for _, want := range order {
		m = press(t, m, "w")
		if m.windowKind != want {
			t.Fatalf("windowKind = %s, want %s", m.windowKind, want)
		}
		if m.window.Label == "" {
			t.Fatalf("window not re-resolved for %s", want)
		}
	}
}

func TestStatsFollowLoadedData(t *testing.T) {
	m := testModel()
	m.windowKind = timeutil.KindAllTime
	m.refreshStats()

	next, _ := m.Update(dataLoadedMsg{bakes: []*record.Bake{
		{ID: "a1", Title: "bagels", On: m.today, Hours: 1, Minutes: 30},
		{ID: "a2", Title: "focaccia", On: m.today.AddDays(-1), Minutes: 45},
	}})
	m = next.(Model)

	if m.summary.Count != 2 {
		t.Fatalf("count = %d, want 2", m.summary.Count)
	}
	if m.summary.TotalHours != 2 {
		t.Fatalf("hours = %d, want 2", m.summary.TotalHours)
	}
}

func TestRenderGrid(t *testing.T) {
	anchor := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	today := record.DayKey{Year: 2024, Month: time.March, Day: 15}
	ix := calendar.BuildIndex(
		[]*record.Bake{{ID: "a1", Title: "sourdough", On: record.DayKey{Year: 2024, Month: time.March, Day: 10}}},
		nil,
	)

	out := renderGrid(anchor, calendar.MonthCells(anchor, today, ix), today, defaultGridStyles())

	if !strings.Contains(out, "March 2024") {
		t.Fatalf("missing month header:\n%s", out)
	}
	if !strings.Contains(out, "Su Mo Tu We Th Fr Sa") {
		t.Fatalf("missing weekday header:\n%s", out)
	}
	if !strings.Contains(out, "31") {
		t.Fatalf("missing last day of March:\n%s", out)
	}
	// March 2024 starts on a Friday, so the first row carries five blanks.
	lines := strings.Split(out, "\n")
	if len(lines) < 3 || !strings.HasPrefix(lines[2], strings.Repeat("  ", 1)) {
		t.Fatalf("first week row should start blank:\n%s", out)
	}
}
