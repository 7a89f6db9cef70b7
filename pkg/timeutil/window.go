package timeutil

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/bakelog/pkg/record"
)

// Kind selects a reporting window.
type Kind string

const (
	KindWeek     Kind = "week"
	KindLastWeek Kind = "last-week"
	KindMonth    Kind = "month"
	KindAllTime  Kind = "all-time"

	// DefaultKind is the fallback window used when none is provided.
	DefaultKind = KindWeek
)

// ParseKind resolves user input to a window kind.
func ParseKind(input string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "", "week", "this-week":
		return KindWeek, nil
	case "last-week", "lastweek", "last":
		return KindLastWeek, nil
	case "month":
		return KindMonth, nil
	case "all-time", "alltime", "all":
		return KindAllTime, nil
	}
	return "", fmt.Errorf("timeutil: unknown window %q", input)
}

// Window is a resolved inclusive instant range with display labels. Windows
// are computed on demand and never persisted or cached across anchor changes.
type Window struct {
	Start    time.Time
	End      time.Time
	Label    string
	Sublabel string
}

// Contains reports whether t falls inside the window, inclusive on both ends.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// allTimeEnd stands in for +infinity; the zero time stands in for -infinity.
// The inclusive filter treats sentinel windows like any other.
var allTimeEnd = time.Date(9999, time.December, 31, 23, 59, 59, int(999*time.Millisecond), time.UTC)

// Resolve computes the window for kind around now. The anchor selects the
// month for KindMonth (the calendar currently in view, not necessarily the
// real current month); a zero anchor falls back to now's month.
func Resolve(kind Kind, now time.Time, anchor time.Time) Window {
	switch kind {
	case KindLastWeek:
		monday := mostRecentMonday(now)
		start := monday.AddDate(0, 0, -7)
		end := endOfDay(start.AddDate(0, 0, 6))
		return Window{Start: start, End: end, Label: "Last Week", Sublabel: spanSublabel(start, end)}
	case KindMonth:
		if anchor.IsZero() {
			anchor = now
		}
		start := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
		end := endOfDay(start.AddDate(0, 1, -1))
		return Window{Start: start, End: end, Label: start.Month().String()}
	case KindAllTime:
		return Window{End: allTimeEnd, Label: "All Time"}
	default:
		start := mostRecentMonday(now)
		end := endOfDay(start.AddDate(0, 0, 6))
		return Window{Start: start, End: end, Label: "This Week", Sublabel: spanSublabel(start, end)}
	}
}

// Day is the degenerate single-day window used for day-click filtering. It
// goes through the same inclusive-range filter as every other window, so a
// record carrying a stray time component still matches its day.
func Day(k record.DayKey) Window {
	start := k.Time(time.Local)
	return Window{Start: start, End: endOfDay(start), Label: k.String()}
}

// mostRecentMonday finds Monday 00:00:00.000 of the week containing t. Under
// the Sunday=0 weekday numbering the offset to this Monday is 1-day, except
// Sunday itself which belongs to the week that started six days earlier.
func mostRecentMonday(t time.Time) time.Time {
	day := int(t.Weekday())
	offset := 1 - day
	if day == 0 {
		offset = -6
	}
	return startOfDay(t).AddDate(0, 0, offset)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}

func spanSublabel(start, end time.Time) string {
	return fmt.Sprintf("(%d/%d - %d/%d)", start.Day(), int(start.Month()), end.Day(), int(end.Month()))
}
