package scheduling

import "sort"

// OpenIntervalsForDay returns the merged open intervals of a venue for one
// weekday. Rows closing at or before their opening time are dropped, which
// also drops rows that span midnight.
func OpenIntervalsForDay(rows []OpenHoursRow, weekday int) []Interval {
	var out []Interval
	for _, r := range rows {
		if r.Day != weekday {
			continue
		}
		open, ok := rowMinute(r.OpenHour, r.OpenMinute)
		if !ok {
			continue
		}
		closing, ok := rowMinute(r.CloseHour, r.CloseMinute)
		if !ok || closing <= open {
			continue
		}
		out = append(out, Interval{StartMinute: open, EndMinute: closing})
	}
	return mergeIntervals(out)
}

// rowMinute accepts 00:00 through 24:00.
func rowMinute(hour, minute int) (int, bool) {
	if hour < 0 || hour > 24 || minute < 0 || minute > 59 {
		return 0, false
	}
	m := hour*60 + minute
	if m > minutesPerDay {
		return 0, false
	}
	return m, true
}

func IsOpenForWindow(intervals []Interval, start, end int) bool {
	for _, iv := range intervals {
		if iv.Contains(start, end) {
			return true
		}
	}
	return false
}

// AutoCorrectToNextOpenInterval shifts [start, end) so it fits an open
// interval. It prefers the earliest start at or after the requested one and
// falls back to the first interval long enough for the duration. It reports
// false when no interval can hold the duration at all.
func AutoCorrectToNextOpenInterval(intervals []Interval, start, end int) (Interval, bool) {
	duration := end - start
	if duration <= 0 {
		return Interval{}, false
	}
	if IsOpenForWindow(intervals, start, end) {
		return Interval{StartMinute: start, EndMinute: end}, true
	}
	for _, iv := range intervals {
		s := max(iv.StartMinute, start)
		if s+duration <= iv.EndMinute {
			return Interval{StartMinute: s, EndMinute: s + duration}, true
		}
	}
	for _, iv := range intervals {
		if iv.Length() >= duration {
			return Interval{StartMinute: iv.StartMinute, EndMinute: iv.StartMinute + duration}, true
		}
	}
	return Interval{}, false
}

// mergeIntervals sorts by start and coalesces overlapping or touching
// intervals. Empty intervals are discarded.
func mergeIntervals(in []Interval) []Interval {
	sorted := make([]Interval, 0, len(in))
	for _, iv := range in {
		if iv.EndMinute > iv.StartMinute {
			sorted = append(sorted, iv)
		}
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].StartMinute != sorted[j].StartMinute {
			return sorted[i].StartMinute < sorted[j].StartMinute
		}
		return sorted[i].EndMinute < sorted[j].EndMinute
	})

	merged := make([]Interval, 0, len(sorted))
	for _, iv := range sorted {
		if n := len(merged); n > 0 && iv.StartMinute <= merged[n-1].EndMinute {
			merged[n-1].EndMinute = max(merged[n-1].EndMinute, iv.EndMinute)
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}
