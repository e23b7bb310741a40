package db_models

import (
	"github.com/google/uuid"
	"time"
)

type Journey struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;index"`
	Title       string
	StartDate   time.Time
	EndDate     time.Time
	TimeZone    string // IANA name, empty means UTC
	IsShared    bool
	IsCompleted bool

	Days       []JourneyDay
	Activities []JourneyActivity
}
