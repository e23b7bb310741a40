package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeDays(t *testing.T) {
	placements := []Placement{
		{ID: "a", Date: "2024-06-01", StartTime: "09:00", EndTime: "10:00"},
		{ID: "b", Date: "2024-06-01", StartTime: "10:30", EndTime: "11:00"},
		{ID: "c", Date: "2024-06-03", StartTime: "09:00", EndTime: "09:45"},
	}
	names := map[string]string{"a": "Louvre", "b": "Tuileries"}

	plans := SummarizeDays(placements, names, SummaryOptions{
		Theme:        "art",
		Pace:         PaceRelaxed,
		LockedMissed: map[string]bool{"2024-06-03": true, "2024-06-02": true},
	})

	require.Len(t, plans, 2)
	assert.Equal(t, "2024-06-01", plans[0].Date)
	assert.Equal(t, "Built around art: 2 nearby activities at a relaxed pace.", plans[0].Rationale)
	assert.Empty(t, plans[0].Warnings)
	assert.Equal(t, []DayPlanItem{
		{ID: "a", Name: "Louvre", StartTime: "09:00", EndTime: "10:00"},
		{ID: "b", Name: "Tuileries", StartTime: "10:30", EndTime: "11:00"},
	}, plans[0].Items)

	assert.Equal(t, "c", plans[1].Items[0].Name, "unknown names fall back to the id")
	assert.Equal(t, []string{LockedMissedWarning}, plans[1].Warnings)
	assert.Contains(t, plans[1].Rationale, "1 nearby activity")
}

func TestSummarizeDaysWithoutTheme(t *testing.T) {
	plans := SummarizeDays([]Placement{{ID: "a", Date: "2024-06-01"}}, nil, SummaryOptions{})
	require.Len(t, plans, 1)
	assert.Equal(t, "Grouped 1 nearby activity at a moderate pace.", plans[0].Rationale)

	assert.Empty(t, SummarizeDays(nil, nil, SummaryOptions{}))
}
