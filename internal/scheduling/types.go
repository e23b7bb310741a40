// Package scheduling places itinerary activities into concrete day slots.
//
// The engine is pure: a Request goes in, a Result comes out. It never does
// I/O and keeps no state between runs, so independent requests can be
// scheduled concurrently without coordination.
package scheduling

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// OpenHoursRow is one open/close record of a venue. Day is 0=Sunday..6=Saturday.
type OpenHoursRow struct {
	Day         int `json:"day"`
	OpenHour    int `json:"open_hour"`
	OpenMinute  int `json:"open_minute"`
	CloseHour   int `json:"close_hour"`
	CloseMinute int `json:"close_minute"`
}

// Candidate is an activity eligible for automatic time-slot assignment.
type Candidate struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Coordinates     *LatLng        `json:"coordinates,omitempty"`
	DurationMinutes int            `json:"duration_minutes"`
	TypeTags        []string       `json:"type_tags,omitempty"`
	PreferredDate   string         `json:"preferred_date,omitempty"`
	LockedDate      string         `json:"locked_date,omitempty"`
	OpenHours       []OpenHoursRow `json:"open_hours,omitempty"`
}

// FixedBlock is an already occupied range on a date that must not be overlapped.
type FixedBlock struct {
	Date        string  `json:"date"`
	StartMinute int     `json:"start_minute"`
	EndMinute   int     `json:"end_minute"`
	Coordinates *LatLng `json:"coordinates,omitempty"`
}

// Interval is a half-open [StartMinute, EndMinute) range in minutes since midnight.
type Interval struct {
	StartMinute int `json:"start_minute"`
	EndMinute   int `json:"end_minute"`
}

func (iv Interval) Length() int { return iv.EndMinute - iv.StartMinute }

func (iv Interval) Contains(start, end int) bool {
	return start >= iv.StartMinute && end <= iv.EndMinute
}

type Pace string

const (
	PaceRelaxed  Pace = "relaxed"
	PaceModerate Pace = "moderate"
	PacePacked   Pace = "packed"
)

type TravelMode string

const (
	TravelWalking   TravelMode = "walking"
	TravelBicycling TravelMode = "bicycling"
	TravelDriving   TravelMode = "driving"
	TravelTransit   TravelMode = "transit"
)

type Preferences struct {
	DayStart   string     `json:"day_start"`
	DayEnd     string     `json:"day_end"`
	Pace       Pace       `json:"pace"`
	TravelMode TravelMode `json:"travel_mode"`
	Interests  []string   `json:"interests,omitempty"`
}

type ClusterStrategy string

const (
	ClusterAuto   ClusterStrategy = "auto"
	ClusterGrid   ClusterStrategy = "grid"
	ClusterKMeans ClusterStrategy = "kmeans"
)

// Request is the full input of one scheduling run.
type Request struct {
	Candidates  []Candidate
	FixedBlocks []FixedBlock
	// Dates is the date pool. Order and duplicates do not matter.
	Dates       []string
	Preferences Preferences
	// Theme is an optional category the caller wants the days built around.
	Theme string

	MaxOperations   int
	MaxDays         int
	MetersPerMinute float64
	ClusterStrategy ClusterStrategy
	GridResolution  float64

	// TravelCache is owned by the caller; nil disables caching.
	TravelCache TravelCache
}

// Placement assigns a candidate to a concrete date and time range.
type Placement struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	StartMinute int    `json:"start_minute"`
	EndMinute   int    `json:"end_minute"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
}

type Unplaced struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// Rejection records an input row dropped during normalization.
type Rejection struct {
	Index  int    `json:"index"`
	ID     string `json:"id,omitempty"`
	Reason string `json:"reason"`
}

// Operation is a generic update a caller can apply to its own records.
type Operation struct {
	Type      string `json:"type"`
	ID        string `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

const OperationUpdateActivity = "update_itinerary_activity"

type ItemState string

const (
	StatePending       ItemState = "PENDING"
	StateAssignedToDay ItemState = "ASSIGNED_TO_DAY"
	StateOrdered       ItemState = "ORDERED"
	StatePlaced        ItemState = "PLACED"
	StateSpilled       ItemState = "SPILLED_TO_NEXT_DAY"
	StateUnplaced      ItemState = "UNPLACED"
)

type Result struct {
	Placements      []Placement          `json:"placements"`
	Unplaced        []Unplaced           `json:"unplaced"`
	Rejected        []Rejection          `json:"rejected"`
	DayPlans        []DayPlan            `json:"day_plans"`
	Operations      []Operation          `json:"operations"`
	States          map[string]ItemState `json:"states"`
	BudgetExhausted bool                 `json:"budget_exhausted"`
}

const (
	ReasonNoTime       = "Not enough time in the available day range."
	ReasonLockedNoTime = "Not enough time on the locked date."
	ReasonNoDates      = "No dates available in the selected range."
	ReasonBudget       = "Ran out of scheduling budget."
)
