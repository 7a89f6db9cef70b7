// Package calendar builds the day-presence index behind the month views and
// classifies what a click on a given day should do.
package calendar

import (
	"tableflip.dev/bakelog/pkg/record"
)

// Index holds day-granularity presence for completed and planned bakes.
// Multiple records on one day collapse to a single flag here; statistics
// still count them individually.
type Index struct {
	Completed map[record.DayKey]struct{}
	Planned   map[record.DayKey]struct{}
}

// BuildIndex is a pure function of its inputs; callers recompute it whenever
// either record stream changes.
func BuildIndex(completed []*record.Bake, planned []*record.Upcoming) Index {
	ix := Index{
		Completed: make(map[record.DayKey]struct{}, len(completed)),
		Planned:   make(map[record.DayKey]struct{}, len(planned)),
	}
	for _, b := range completed {
		if b == nil || b.On.IsZero() {
			continue
		}
		ix.Completed[b.On] = struct{}{}
	}
	for _, u := range planned {
		if u == nil || u.On.IsZero() {
			continue
		}
		ix.Planned[u.On] = struct{}{}
	}
	return ix
}

func (ix Index) HasCompleted(k record.DayKey) bool {
	_, ok := ix.Completed[k]
	return ok
}

func (ix Index) HasPlanned(k record.DayKey) bool {
	_, ok := ix.Planned[k]
	return ok
}

// ClickAction tells the presenter how to route a click on a day.
type ClickAction int

const (
	// ClickNothing: an empty day; surface a no-op signal, not a silent failure.
	ClickNothing ClickAction = iota
	// ClickOpenJournal: the day has completed bakes; open the journal
	// pre-filtered to that exact day.
	ClickOpenJournal
	// ClickPlannedInfo: only planned bakes; informational, no navigation.
	ClickPlannedInfo
)

// Click classifies a day click. Completed membership wins over planned.
func (ix Index) Click(k record.DayKey) ClickAction {
	if ix.HasCompleted(k) {
		return ClickOpenJournal
	}
	if ix.HasPlanned(k) {
		return ClickPlannedInfo
	}
	return ClickNothing
}
