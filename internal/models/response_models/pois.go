package response_models

type POI struct {
	ID                     string        `json:"id"`
	Name                   string        `json:"name"`
	Latitude               *float64      `json:"latitude,omitempty"`
	Longitude              *float64      `json:"longitude,omitempty"`
	Category               string        `json:"category"`
	ContactInfo            string        `json:"contact_info"`
	Address                string        `json:"address"`
	DefaultDurationMinutes int           `json:"default_duration_minutes"`
	Tags                   []string      `json:"tags"`
	OpeningHours           []OpeningHour `json:"opening_hours"`
}

type OpeningHour struct {
	Day   int    `json:"day"` // 0=Sunday
	Open  string `json:"open"`
	Close string `json:"close"`
}
