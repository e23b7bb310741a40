package db_models

import "github.com/google/uuid"

type POI struct {
	BaseModel
	Name                   string
	Latitude               *float64
	Longitude              *float64
	Category               string
	Status                 string
	Address                string
	ContactInfo            string
	DefaultDurationMinutes int

	Tags         []Tag `gorm:"many2many:poi_tags"`
	OpeningHours []POIOpeningHour
}

// POIOpeningHour is one open range on a weekday (0=Sunday). CloseHour 24
// with CloseMinute 0 means open until midnight.
type POIOpeningHour struct {
	BaseModel
	POIID       uuid.UUID `gorm:"type:uuid;index"`
	Day         int
	OpenHour    int
	OpenMinute  int
	CloseHour   int
	CloseMinute int
}

func (p *POI) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil
}
