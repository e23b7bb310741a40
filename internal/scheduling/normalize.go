package scheduling

import (
	"sort"
	"strings"
)

const (
	MinDurationMinutes     = 15
	MaxDurationMinutes     = 480
	DefaultDurationMinutes = 60

	DefaultDayStart = "09:00"
	DefaultDayEnd   = "18:00"
)

// ResolvedPreferences are Preferences after defaults and clamping.
type ResolvedPreferences struct {
	DayStartMinute int
	DayEndMinute   int
	Pace           Pace
	TravelMode     TravelMode
	Interests      []string
	DailyItemCap   int
	BufferMinutes  int
}

// ResolvePreferences applies defaults. A window that does not parse, or that
// is not at least an hour long, becomes 09:00-18:00.
func ResolvePreferences(p Preferences) ResolvedPreferences {
	start, okStart := ParseTimeToMinutes(strings.TrimSpace(p.DayStart))
	end, okEnd := ParseTimeToMinutes(strings.TrimSpace(p.DayEnd))
	if !okStart || !okEnd || end <= start+60 {
		start, _ = ParseTimeToMinutes(DefaultDayStart)
		end, _ = ParseTimeToMinutes(DefaultDayEnd)
	}

	r := ResolvedPreferences{
		DayStartMinute: start,
		DayEndMinute:   end,
		Pace:           Pace(strings.ToLower(strings.TrimSpace(string(p.Pace)))),
		TravelMode:     TravelMode(strings.ToLower(strings.TrimSpace(string(p.TravelMode)))),
	}
	switch r.Pace {
	case PaceRelaxed:
		r.DailyItemCap = 3
	case PacePacked:
		r.DailyItemCap = 6
	default:
		r.Pace, r.DailyItemCap = PaceModerate, 4
	}
	switch r.TravelMode {
	case TravelBicycling, TravelDriving:
		r.BufferMinutes = 10
	case TravelTransit:
		r.BufferMinutes = 15
	default:
		r.TravelMode, r.BufferMinutes = TravelWalking, 15
	}
	for _, in := range p.Interests {
		if in = strings.TrimSpace(in); in != "" {
			r.Interests = append(r.Interests, in)
		}
	}
	return r
}

// NormalizeCandidates validates raw candidates once, at the engine boundary.
// Rows without an id, or repeating an earlier id, are rejected. Everything
// else is repaired: bad coordinates are dropped, durations clamped, bad
// dates cleared and malformed opening-hours rows removed.
func NormalizeCandidates(raw []Candidate) ([]Candidate, []Rejection) {
	out := make([]Candidate, 0, len(raw))
	rejected := []Rejection{}
	seen := make(map[string]bool, len(raw))

	for i, c := range raw {
		id := strings.TrimSpace(c.ID)
		if id == "" {
			rejected = append(rejected, Rejection{Index: i, Reason: "missing id"})
			continue
		}
		if seen[id] {
			rejected = append(rejected, Rejection{Index: i, ID: id, Reason: "duplicate id"})
			continue
		}
		seen[id] = true

		n := Candidate{ID: id, Name: strings.TrimSpace(c.Name)}
		if n.Name == "" {
			n.Name = "Activity " + id
		}
		if validLatLng(c.Coordinates) {
			p := *c.Coordinates
			n.Coordinates = &p
		}

		n.DurationMinutes = c.DurationMinutes
		if n.DurationMinutes <= 0 {
			n.DurationMinutes = DefaultDurationMinutes
		}
		n.DurationMinutes = clamp(n.DurationMinutes, MinDurationMinutes, MaxDurationMinutes)

		for _, t := range c.TypeTags {
			if t = strings.TrimSpace(t); t != "" {
				n.TypeTags = append(n.TypeTags, t)
			}
		}
		if d := strings.TrimSpace(c.LockedDate); IsISODateString(d) {
			n.LockedDate = d
		}
		if d := strings.TrimSpace(c.PreferredDate); IsISODateString(d) {
			n.PreferredDate = d
		}
		for _, r := range c.OpenHours {
			if r.Day >= 0 && r.Day <= 6 {
				n.OpenHours = append(n.OpenHours, r)
			}
		}
		out = append(out, n)
	}
	return out, rejected
}

// lockDate is the date a candidate must land on, if any.
func (c Candidate) lockDate() string {
	if c.LockedDate != "" {
		return c.LockedDate
	}
	return c.PreferredDate
}

func normalizeDates(dates []string, maxDays int) []string {
	if maxDays <= 0 {
		maxDays = DefaultMaxDays
	}
	seen := map[string]bool{}
	out := []string{}
	for _, d := range dates {
		d = strings.TrimSpace(d)
		if !IsISODateString(d) || seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	// ISO dates sort chronologically as strings.
	sort.Strings(out)
	if len(out) > maxDays {
		out = out[:maxDays]
	}
	return out
}

func groupFixedBlocks(blocks []FixedBlock) map[string][]FixedBlock {
	byDate := map[string][]FixedBlock{}
	for _, b := range blocks {
		date := strings.TrimSpace(b.Date)
		if !IsISODateString(date) {
			continue
		}
		s, e := clamp(b.StartMinute, 0, minutesPerDay), clamp(b.EndMinute, 0, minutesPerDay)
		if e <= s {
			continue
		}
		nb := FixedBlock{Date: date, StartMinute: s, EndMinute: e}
		if validLatLng(b.Coordinates) {
			p := *b.Coordinates
			nb.Coordinates = &p
		}
		byDate[date] = append(byDate[date], nb)
	}
	for d := range byDate {
		sort.SliceStable(byDate[d], func(i, j int) bool {
			return byDate[d][i].StartMinute < byDate[d][j].StartMinute
		})
	}
	return byDate
}
