package record

import (
	"encoding/json"
	"fmt"
	"time"
)

const dayLayout = "2006-01-02"

// DayKey identifies a calendar day independent of clock time and timezone.
// Records whose stored dates name the same wall-clock day map to the same
// DayKey no matter what offset or time-of-day the raw value carries.
type DayKey struct {
	Year  int
	Month time.Month
	Day   int
}

// DayKeyOf takes the calendar components of t as written. The instant is not
// converted to another location first; a value entered as 2024-03-05 stays
// March 5 on every machine.
func DayKeyOf(t time.Time) DayKey {
	y, m, d := t.Date()
	return DayKey{Year: y, Month: m, Day: d}
}

// Today returns the viewer's local day.
func Today() DayKey {
	return DayKeyOf(time.Now())
}

// ParseDayKey reads a date-only value. Stored dates sometimes carry a trailing
// time component or offset (2024-03-04T23:30:00Z); only the leading calendar
// date decides the day.
func ParseDayKey(s string) (DayKey, error) {
	if len(s) > len(dayLayout) {
		s = s[:len(dayLayout)]
	}
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return DayKey{}, fmt.Errorf("record: parse day %q: %w", s, err)
	}
	return DayKeyOf(t), nil
}

func (k DayKey) IsZero() bool {
	return k.Year == 0 && k.Month == 0 && k.Day == 0
}

func (k DayKey) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", k.Year, int(k.Month), k.Day)
}

// Time returns midnight of the day in loc.
func (k DayKey) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(k.Year, k.Month, k.Day, 0, 0, 0, 0, loc)
}

// AddDays steps the key forward (or back) by whole days.
func (k DayKey) AddDays(n int) DayKey {
	return DayKeyOf(k.Time(time.UTC).AddDate(0, 0, n))
}

// Before reports calendar order.
func (k DayKey) Before(o DayKey) bool {
	if k.Year != o.Year {
		return k.Year < o.Year
	}
	if k.Month != o.Month {
		return k.Month < o.Month
	}
	return k.Day < o.Day
}

func (k DayKey) MarshalJSON() ([]byte, error) {
	if k.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(k.String())
}

func (k *DayKey) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*k = DayKey{}
		return nil
	}
	parsed, err := ParseDayKey(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
