package response_models

import "yugen/internal/scheduling"

type ScheduleResponse struct {
	JourneyID string   `json:"journey_id,omitempty"`
	Dates     []string `json:"dates"`
	Applied   bool     `json:"applied"`

	*scheduling.Result
}
