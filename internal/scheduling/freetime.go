package scheduling

// MinFreeWindowMinutes is the shortest gap worth keeping as a free window.
const MinFreeWindowMinutes = 10

// ComputeFreeWindows subtracts busy intervals from [dayStart, dayEnd] and
// returns the remaining gaps in order.
func ComputeFreeWindows(dayStart, dayEnd int, busy []Interval) []Interval {
	dayStart = clamp(dayStart, 0, minutesPerDay)
	dayEnd = clamp(dayEnd, 0, minutesPerDay)
	if dayEnd <= dayStart {
		return []Interval{}
	}

	clipped := make([]Interval, 0, len(busy))
	for _, b := range busy {
		s, e := max(b.StartMinute, dayStart), min(b.EndMinute, dayEnd)
		if e > s {
			clipped = append(clipped, Interval{StartMinute: s, EndMinute: e})
		}
	}

	free := []Interval{}
	cursor := dayStart
	emit := func(s, e int) {
		if e-s >= MinFreeWindowMinutes {
			free = append(free, Interval{StartMinute: s, EndMinute: e})
		}
	}
	for _, b := range mergeIntervals(clipped) {
		if b.StartMinute > cursor {
			emit(cursor, b.StartMinute)
		}
		cursor = max(cursor, b.EndMinute)
	}
	if cursor < dayEnd {
		emit(cursor, dayEnd)
	}
	return free
}

func totalMinutes(windows []Interval) int {
	total := 0
	for _, w := range windows {
		total += w.Length()
	}
	return total
}
