package scheduling

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const (
	isoDateLayout  = "2006-01-02"
	minutesPerDay  = 24 * 60
	DefaultMaxDays = 60
)

var (
	clockPattern   = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?$`)
	isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ParseTimeToMinutes turns "H:MM", "HH:MM" or "HH:MM:SS" into minutes since
// midnight. Seconds are accepted but ignored.
func ParseTimeToMinutes(text string) (int, bool) {
	m := clockPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return 0, false
	}
	if m[3] != "" {
		if sec, _ := strconv.Atoi(m[3]); sec > 59 {
			return 0, false
		}
	}
	return hour*60 + minute, true
}

// FormatMinutesToHHmm renders minutes since midnight as "HH:MM".
func FormatMinutesToHHmm(minutes int) string {
	minutes = clamp(minutes, 0, minutesPerDay-1)
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func IsISODateString(s string) bool {
	if !isoDatePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(isoDateLayout, s)
	return err == nil
}

// DayOfWeekFromISODate returns 0 (Sunday) through 6 (Saturday). The date is
// read as UTC midnight so the local zone never shifts the weekday. Malformed
// input yields -1; callers are expected to check IsISODateString first.
func DayOfWeekFromISODate(date string) int {
	t, err := time.ParseInLocation(isoDateLayout, date, time.UTC)
	if err != nil {
		return -1
	}
	return int(t.Weekday())
}

// EnumerateISODates lists every date from..to inclusive, at most maxDays of
// them. Malformed bounds or to < from give an empty list.
func EnumerateISODates(from, to string, maxDays int) []string {
	if !IsISODateString(from) || !IsISODateString(to) {
		return []string{}
	}
	if maxDays <= 0 {
		maxDays = DefaultMaxDays
	}
	start, _ := time.ParseInLocation(isoDateLayout, from, time.UTC)
	end, _ := time.ParseInLocation(isoDateLayout, to, time.UTC)
	if end.Before(start) {
		return []string{}
	}

	dates := make([]string, 0, min(maxDays, int(end.Sub(start).Hours()/24)+1))
	for d := start; !d.After(end) && len(dates) < maxDays; d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(isoDateLayout))
	}
	return dates
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
