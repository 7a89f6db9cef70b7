package record

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDayKeyDateOnly(t *testing.T) {
	k, err := ParseDayKey("2024-03-05")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := DayKey{Year: 2024, Month: time.March, Day: 5}
	if k != want {
		t.Fatalf("expected %v, got %v", want, k)
	}
}

func TestParseDayKeyIgnoresClockAndOffset(t *testing.T) {
	// An evening timestamp and an early-morning one on the next day must
	// stay on their written days, not collapse under a UTC reinterpretation.
	evening, err := ParseDayKey("2024-03-04T23:30:00+01:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	morning, err := ParseDayKey("2024-03-05T00:10:00Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if evening != (DayKey{Year: 2024, Month: time.March, Day: 4}) {
		t.Fatalf("evening mapped to %v", evening)
	}
	if morning != (DayKey{Year: 2024, Month: time.March, Day: 5}) {
		t.Fatalf("morning mapped to %v", morning)
	}
	if evening == morning {
		t.Fatal("distinct calendar days collapsed")
	}
}

func TestDayKeyOfUsesWrittenComponents(t *testing.T) {
	zones := []*time.Location{time.UTC, time.FixedZone("plus9", 9*3600), time.FixedZone("minus11", -11*3600)}
	for _, loc := range zones {
		k := DayKeyOf(time.Date(2024, time.March, 5, 23, 45, 0, 0, loc))
		if k != (DayKey{Year: 2024, Month: time.March, Day: 5}) {
			t.Fatalf("zone %v: got %v", loc, k)
		}
	}
}

func TestParseDayKeyMalformed(t *testing.T) {
	if _, err := ParseDayKey("not-a-date"); err == nil {
		t.Fatal("expected error")
	}
}

func TestDayKeyJSONRoundTrip(t *testing.T) {
	k := DayKey{Year: 2024, Month: time.December, Day: 31}
	data, err := json.Marshal(k)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"2024-12-31"` {
		t.Fatalf("unexpected encoding: %s", data)
	}
	var back DayKey
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != k {
		t.Fatalf("expected %v, got %v", k, back)
	}
}

func TestDayKeyAddDaysCrossesMonth(t *testing.T) {
	k := DayKey{Year: 2024, Month: time.February, Day: 28}
	if got := k.AddDays(2); got != (DayKey{Year: 2024, Month: time.March, Day: 1}) {
		t.Fatalf("leap february: got %v", got)
	}
}
