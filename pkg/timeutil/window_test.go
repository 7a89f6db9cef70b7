package timeutil

import (
	"testing"
	"time"

	"tableflip.dev/bakelog/pkg/record"
)

func TestResolveWeekStartsMondayForEveryWeekday(t *testing.T) {
	// 2024-03-04 is a Monday; walk the whole week around it.
	for i := 0; i < 7; i++ {
		now := time.Date(2024, time.March, 4+i, 13, 37, 0, 0, time.Local)
		w := Resolve(KindWeek, now, time.Time{})
		if w.Start.Weekday() != time.Monday {
			t.Fatalf("now=%v: start %v is not a Monday", now, w.Start)
		}
		if h, m, s := w.Start.Clock(); h != 0 || m != 0 || s != 0 {
			t.Fatalf("now=%v: start not at midnight: %v", now, w.Start)
		}
		if w.End.Weekday() != time.Sunday {
			t.Fatalf("now=%v: end %v is not a Sunday", now, w.End)
		}
		if h, m, s := w.End.Clock(); h != 23 || m != 59 || s != 59 {
			t.Fatalf("now=%v: end not at day close: %v", now, w.End)
		}
		if !w.Contains(now) {
			t.Fatalf("week window does not contain now %v", now)
		}
	}
}

func TestResolveWeekSundayBelongsToPriorMonday(t *testing.T) {
	// Sunday picks the Monday six days back, not the next day's Monday.
	sunday := time.Date(2024, time.March, 10, 9, 0, 0, 0, time.Local)
	w := Resolve(KindWeek, sunday, time.Time{})
	wantStart := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.Local)
	if !w.Start.Equal(wantStart) {
		t.Fatalf("expected start %v, got %v", wantStart, w.Start)
	}
}

func TestResolveLastWeekIsSevenDaysEndingBeforeThisWeek(t *testing.T) {
	now := time.Date(2024, time.March, 7, 8, 0, 0, 0, time.Local)
	this := Resolve(KindWeek, now, time.Time{})
	last := Resolve(KindLastWeek, now, time.Time{})

	if got := last.End.Sub(last.Start); got != 7*24*time.Hour-time.Millisecond {
		t.Fatalf("last week spans %v", got)
	}
	dayBefore := this.Start.AddDate(0, 0, -1)
	if last.End.Year() != dayBefore.Year() || last.End.Month() != dayBefore.Month() || last.End.Day() != dayBefore.Day() {
		t.Fatalf("last week ends %v, want the day before %v", last.End, this.Start)
	}
	if last.Start.Weekday() != time.Monday {
		t.Fatalf("last week starts on %v", last.Start.Weekday())
	}
}

func TestResolveMonthUsesAnchorNotNow(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.Local)
	anchor := time.Date(2024, time.February, 20, 0, 0, 0, 0, time.Local)
	w := Resolve(KindMonth, now, anchor)

	if w.Start.Day() != 1 || w.Start.Month() != time.February {
		t.Fatalf("unexpected start: %v", w.Start)
	}
	if w.End.Day() != 29 || w.End.Month() != time.February {
		t.Fatalf("expected leap-year February end, got %v", w.End)
	}
	if w.Label != "February" {
		t.Fatalf("unexpected label: %q", w.Label)
	}
	if w.Sublabel != "" {
		t.Fatalf("month windows carry no sublabel, got %q", w.Sublabel)
	}
}

func TestResolveMonthDefaultsToNow(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.Local)
	w := Resolve(KindMonth, now, time.Time{})
	if w.Start.Month() != time.June || w.End.Day() != 30 {
		t.Fatalf("unexpected window: %v - %v", w.Start, w.End)
	}
}

func TestResolveAllTimeContainsEverything(t *testing.T) {
	w := Resolve(KindAllTime, time.Now(), time.Time{})
	for _, instant := range []time.Time{
		time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Now(),
		time.Date(3024, time.July, 1, 0, 0, 0, 0, time.UTC),
	} {
		if !w.Contains(instant) {
			t.Fatalf("all-time window excludes %v", instant)
		}
	}
	if w.Label != "All Time" {
		t.Fatalf("unexpected label: %q", w.Label)
	}
}

func TestWeekSublabelFormat(t *testing.T) {
	now := time.Date(2024, time.March, 6, 0, 0, 0, 0, time.Local)
	w := Resolve(KindWeek, now, time.Time{})
	if w.Sublabel != "(4/3 - 10/3)" {
		t.Fatalf("unexpected sublabel: %q", w.Sublabel)
	}
}

func TestDayWindowMatchesStrayClockTimes(t *testing.T) {
	k := record.DayKey{Year: 2024, Month: time.March, Day: 5}
	w := Day(k)
	if !w.Contains(time.Date(2024, time.March, 5, 18, 45, 0, 0, time.Local)) {
		t.Fatal("non-midnight instant on the day must match")
	}
	if w.Contains(time.Date(2024, time.March, 6, 0, 0, 0, 0, time.Local)) {
		t.Fatal("next day's midnight must not match")
	}
}

func TestParseKindAliases(t *testing.T) {
	cases := map[string]Kind{
		"":          KindWeek,
		"week":      KindWeek,
		"last-week": KindLastWeek,
		"last":      KindLastWeek,
		"month":     KindMonth,
		"all":       KindAllTime,
	}
	for in, want := range cases {
		got, err := ParseKind(in)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", in, err)
		}
		if got != want {
			t.Fatalf("%q: expected %v, got %v", in, want, got)
		}
	}
	if _, err := ParseKind("fortnight"); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}
