package db_models

import (
	"github.com/google/uuid"
	"time"
)

type JourneyDay struct {
	BaseModel
	JourneyID uuid.UUID `gorm:"type:uuid;index"`
	Date      time.Time
	DayNumber int

	Activities []JourneyActivity
}

// JourneyActivity belongs to a journey and, once scheduled, to one of its days.
// An activity with a day and both StartAt/EndAt set occupies that slot.
type JourneyActivity struct {
	BaseModel
	JourneyID       uuid.UUID  `gorm:"type:uuid;index"`
	JourneyDayID    *uuid.UUID `gorm:"type:uuid;index"`
	SelectedPOIID   *uuid.UUID `gorm:"type:uuid"`
	ActivityType    string
	Name            string
	Notes           string
	DurationMinutes int
	StartAt         *time.Time
	EndAt           *time.Time
	PreferredDate   string // YYYY-MM-DD in journey time zone
	LockedDate      string // YYYY-MM-DD in journey time zone

	SelectedPOI *POI `gorm:"foreignKey:SelectedPOIID"`
}

func (a *JourneyActivity) IsScheduled() bool {
	return a.JourneyDayID != nil && a.StartAt != nil && a.EndAt != nil
}
