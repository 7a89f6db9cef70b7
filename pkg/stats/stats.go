// Package stats reduces journal records over a resolved time window.
package stats

import (
	"time"

	"tableflip.dev/bakelog/pkg/record"
	"tableflip.dev/bakelog/pkg/timeutil"
)

// Summary is the displayed metric set for one window. TotalHours is the
// floored whole-hour sum; leftover minutes are intentionally dropped.
type Summary struct {
	Count      int
	TotalHours int
}

// Filter returns the records whose day falls within the window, inclusive on
// both ends. Day-click filtering goes through here too, with a single-day
// window, rather than through a separate equality check.
func Filter(bakes []*record.Bake, w timeutil.Window) []*record.Bake {
	matched := make([]*record.Bake, 0, len(bakes))
	for _, b := range bakes {
		if b == nil || b.On.IsZero() {
			continue
		}
		if w.Contains(b.On.Time(time.Local)) {
			matched = append(matched, b)
		}
	}
	return matched
}

// Aggregate counts the records inside the window and totals their durations.
// Records with missing hour/minute fields contribute zero rather than failing;
// historical entries are often partially filled.
func Aggregate(bakes []*record.Bake, w timeutil.Window) Summary {
	minutes := 0
	matched := Filter(bakes, w)
	for _, b := range matched {
		minutes += b.Hours*60 + b.Minutes
	}
	return Summary{
		Count:      len(matched),
		TotalHours: minutes / 60,
	}
}
