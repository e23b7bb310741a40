package request_models

import "yugen/internal/scheduling"

// ScheduleCandidate is a candidate as sent by the client. When POIID is set,
// missing coordinates, duration, tags and opening hours are filled from the POI.
type ScheduleCandidate struct {
	scheduling.Candidate
	POIID string `json:"poi_id,omitempty" binding:"omitempty,uuid"`
}

type PreviewScheduleRequest struct {
	Candidates  []ScheduleCandidate     `json:"candidates" binding:"required,min=1,dive"`
	FixedBlocks []scheduling.FixedBlock `json:"fixed_blocks"`

	// Either an explicit date list or an inclusive StartDate..EndDate range.
	Dates     []string `json:"dates"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`

	Preferences     scheduling.Preferences `json:"preferences"`
	Theme           string                 `json:"theme"`
	ClusterStrategy string                 `json:"cluster_strategy" binding:"omitempty,oneof=auto grid kmeans"`
}

type AutoScheduleRequest struct {
	// Optional sub-range of the journey, inclusive.
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`

	Preferences     scheduling.Preferences `json:"preferences"`
	Theme           string                 `json:"theme"`
	ClusterStrategy string                 `json:"cluster_strategy" binding:"omitempty,oneof=auto grid kmeans"`
}
