package stats

import (
	"testing"
	"time"

	"tableflip.dev/bakelog/pkg/record"
	"tableflip.dev/bakelog/pkg/timeutil"
)

func day(d int) record.DayKey {
	return record.DayKey{Year: 2024, Month: time.March, Day: d}
}

func TestAggregateFloorsTotalHours(t *testing.T) {
	// 40 + 35 + 20 = 95 minutes = 1h35m, reported as 1.
	bakes := []*record.Bake{
		{Title: "rolls", On: day(5), Minutes: 40},
		{Title: "scones", On: day(6), Minutes: 35},
		{Title: "shortbread", On: day(7), Minutes: 20},
	}
	w := timeutil.Resolve(timeutil.KindMonth, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local), time.Time{})

	got := Aggregate(bakes, w)
	if got.Count != 3 {
		t.Fatalf("expected count 3, got %d", got.Count)
	}
	if got.TotalHours != 1 {
		t.Fatalf("expected 1 whole hour, got %d", got.TotalHours)
	}
}

func TestAggregateEightyNineMinutesIsOneHour(t *testing.T) {
	bakes := []*record.Bake{{Title: "loaf", On: day(5), Hours: 1, Minutes: 29}}
	got := Aggregate(bakes, timeutil.Day(day(5)))
	if got.TotalHours != 1 {
		t.Fatalf("89 minutes must floor to 1 hour, got %d", got.TotalHours)
	}
}

func TestAggregateMissingDurationsAreZero(t *testing.T) {
	bakes := []*record.Bake{
		{Title: "no duration", On: day(5)},
		{Title: "timed", On: day(5), Hours: 2},
	}
	got := Aggregate(bakes, timeutil.Day(day(5)))
	if got.Count != 2 || got.TotalHours != 2 {
		t.Fatalf("unexpected summary: %+v", got)
	}
}

func TestAggregateAllTimeCountsEverything(t *testing.T) {
	bakes := []*record.Bake{
		{Title: "old", On: record.DayKey{Year: 1999, Month: time.January, Day: 1}},
		{Title: "new", On: day(5)},
		{Title: "future", On: record.DayKey{Year: 2030, Month: time.June, Day: 1}},
	}
	w := timeutil.Resolve(timeutil.KindAllTime, time.Now(), time.Time{})
	got := Aggregate(bakes, w)
	if got.Count != len(bakes) {
		t.Fatalf("all-time count %d, want %d", got.Count, len(bakes))
	}
}

func TestFilterInclusiveBounds(t *testing.T) {
	bakes := []*record.Bake{
		{Title: "before", On: day(3)},
		{Title: "start", On: day(4)},
		{Title: "end", On: day(10)},
		{Title: "after", On: day(11)},
	}
	// The week of Monday March 4 through Sunday March 10.
	w := timeutil.Resolve(timeutil.KindWeek, time.Date(2024, time.March, 6, 12, 0, 0, 0, time.Local), time.Time{})

	matched := Filter(bakes, w)
	if len(matched) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matched))
	}
	if matched[0].Title != "start" || matched[1].Title != "end" {
		t.Fatalf("wrong records matched: %s, %s", matched[0].Title, matched[1].Title)
	}
}

func TestFilterSkipsNilAndUndated(t *testing.T) {
	bakes := []*record.Bake{nil, {Title: "undated"}, {Title: "dated", On: day(5)}}
	matched := Filter(bakes, timeutil.Resolve(timeutil.KindAllTime, time.Now(), time.Time{}))
	if len(matched) != 1 || matched[0].Title != "dated" {
		t.Fatalf("unexpected matches: %v", matched)
	}
}
