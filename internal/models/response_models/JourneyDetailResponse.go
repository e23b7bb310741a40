package response_models

import (
	"github.com/google/uuid"
)

// Top-level payload returned to FE
type JourneyDetailResponse struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	StartDate    string    `json:"start_date"`    // YYYY-MM-DD in journey time zone
	EndDate      string    `json:"end_date"`      // YYYY-MM-DD in journey time zone
	TimeZone     string    `json:"time_zone"`
	DurationDays int       `json:"duration_days"` // inclusive
	IsShared     bool      `json:"is_shared"`
	IsCompleted  bool      `json:"is_completed"`

	// Quick stats
	TotalDays       int `json:"total_days"`
	TotalActivities int `json:"total_activities"`

	Days        []JourneyDayResponse    `json:"days"`
	Unscheduled []JourneyActivityDetail `json:"unscheduled"`
}

type JourneyDayResponse struct {
	ID         uuid.UUID               `json:"id"`
	DayNumber  int                     `json:"day_number"`
	Date       string                  `json:"date"`
	Activities []JourneyActivityDetail `json:"activities"`
}

type JourneyActivityDetail struct {
	ID              uuid.UUID   `json:"id"`
	Name            string      `json:"name"`
	StartTime       string      `json:"start_time,omitempty"` // RFC3339
	EndTime         string      `json:"end_time,omitempty"`   // RFC3339
	DurationMinutes int         `json:"duration_minutes"`
	ActivityType    string      `json:"activity_type"`
	Notes           string      `json:"notes,omitempty"`
	PreferredDate   string      `json:"preferred_date,omitempty"`
	LockedDate      string      `json:"locked_date,omitempty"`
	SelectedPOI     *POISummary `json:"selected_poi,omitempty"`
}

// Minimal POI info that's useful on UI
type POISummary struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	Status    string    `json:"status,omitempty"`
}
