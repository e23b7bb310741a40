package scheduling

import (
	"fmt"
	"strings"
)

const LockedMissedWarning = "Some items couldn't fit into this day."

type DayPlanItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type DayPlan struct {
	Date      string        `json:"date"`
	Rationale string        `json:"rationale"`
	Items     []DayPlanItem `json:"items"`
	Warnings  []string      `json:"warnings,omitempty"`
}

type SummaryOptions struct {
	Theme string
	Pace  Pace
	// LockedMissed marks dates where a locked item could not be scheduled.
	LockedMissed map[string]bool
}

// SummarizeDays builds one DayPlan per date that has at least one placement,
// in the order dates first appear in placements.
func SummarizeDays(placements []Placement, names map[string]string, opts SummaryOptions) []DayPlan {
	plans := []DayPlan{}
	index := map[string]int{}
	for _, p := range placements {
		i, ok := index[p.Date]
		if !ok {
			i = len(plans)
			index[p.Date] = i
			plans = append(plans, DayPlan{Date: p.Date, Items: []DayPlanItem{}})
		}
		name := names[p.ID]
		if name == "" {
			name = p.ID
		}
		plans[i].Items = append(plans[i].Items, DayPlanItem{
			ID:        p.ID,
			Name:      name,
			StartTime: p.StartTime,
			EndTime:   p.EndTime,
		})
	}

	for i := range plans {
		plans[i].Rationale = rationale(len(plans[i].Items), opts.Theme, opts.Pace)
		if opts.LockedMissed[plans[i].Date] {
			plans[i].Rationale += " " + LockedMissedWarning
			plans[i].Warnings = append(plans[i].Warnings, LockedMissedWarning)
		}
	}
	return plans
}

func rationale(count int, theme string, pace Pace) string {
	if pace == "" {
		pace = PaceModerate
	}
	noun := "activities"
	if count == 1 {
		noun = "activity"
	}
	theme = strings.TrimSpace(theme)
	if theme != "" {
		return fmt.Sprintf("Built around %s: %d nearby %s at a %s pace.", theme, count, noun, pace)
	}
	return fmt.Sprintf("Grouped %d nearby %s at a %s pace.", count, noun, pace)
}
