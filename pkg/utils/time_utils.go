package utils

import (
	"fmt"
	"time"
)

const ISODateLayout = "2006-01-02"

// LoadLocationOrUTC resolves a journey's IANA zone name, falling back to UTC.
func LoadLocationOrUTC(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	if loc, err := time.LoadLocation(name); err == nil {
		return loc
	}
	return time.UTC
}

// FormatISODate renders t as YYYY-MM-DD in loc. Zero time gives "".
func FormatISODate(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	return t.In(loc).Format(ISODateLayout)
}

// MinuteOfDay is the number of minutes since local midnight of t in loc.
func MinuteOfDay(t time.Time, loc *time.Location) int {
	local := t.In(loc)
	return local.Hour()*60 + local.Minute()
}

// TimeOnDate builds the instant whose wall clock in loc reads minute-of-day
// on an ISO date. 1440 is midnight of the following day.
func TimeOnDate(date string, minute int, loc *time.Location) (time.Time, error) {
	day, err := time.Parse(ISODateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", date, err)
	}
	y, m, d := day.Date()
	return time.Date(y, m, d, minute/60, minute%60, 0, 0, loc), nil
}

func FormatRFC3339In(t *time.Time, loc *time.Location) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.In(loc).Format(time.RFC3339)
}

// DayNumber is the 1-based position of date counted from start, both
// YYYY-MM-DD. Malformed input gives 0.
func DayNumber(start, date string) int {
	from, err1 := time.Parse(ISODateLayout, start)
	to, err2 := time.Parse(ISODateLayout, date)
	if err1 != nil || err2 != nil {
		return 0
	}
	return int(to.Sub(from).Hours()/24) + 1
}
