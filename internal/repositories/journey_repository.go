// internal/repositories/journey_repository.go
package repositories

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "yugen/internal/models/db_models"
	"yugen/pkg/utils"
)

// ActivitySlot is a scheduled time range to persist for one activity.
type ActivitySlot struct {
	ActivityID uuid.UUID
	Date       string // YYYY-MM-DD in journey time zone
	Start      time.Time
	End        time.Time
}

type JourneyRepository interface {
	CreateJourney(ctx context.Context, journey *dbm.Journey) (uuid.UUID, error)
	GetJourneyById(ctx context.Context, journeyId string) (*dbm.Journey, error)
	GetDetailsOfJourneyById(ctx context.Context, journeyId string) (*dbm.Journey, error)
	ListActivitiesByJourneyId(ctx context.Context, journeyId string) ([]dbm.JourneyActivity, error)
	ApplyPlacements(ctx context.Context, journey *dbm.Journey, slots []ActivitySlot) error
}

type journeyRepository struct {
	db *gorm.DB
}

func NewJourneyRepository(db *gorm.DB) JourneyRepository {
	return &journeyRepository{db: db}
}

func (r *journeyRepository) CreateJourney(ctx context.Context, journey *dbm.Journey) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(journey).Error; err != nil {
		return uuid.Nil, err
	}
	return journey.ID, nil
}

func (r *journeyRepository) GetJourneyById(ctx context.Context, journeyId string) (*dbm.Journey, error) {
	var journey dbm.Journey
	err := r.db.WithContext(ctx).First(&journey, "id = ?", journeyId).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &journey, nil
}

func (r *journeyRepository) GetDetailsOfJourneyById(ctx context.Context, journeyId string) (*dbm.Journey, error) {

	var journey dbm.Journey
	err := r.db.WithContext(ctx).
		Where("id = ?", journeyId).
		Preload("Days", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_number")
		}).
		Preload("Activities", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_at, created_at, id")
		}).
		Preload("Activities.SelectedPOI").
		First(&journey).Error

	if err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &journey, nil
}

// ListActivitiesByJourneyId returns every activity of the journey with the
// POI data the scheduler needs.
func (r *journeyRepository) ListActivitiesByJourneyId(ctx context.Context, journeyId string) ([]dbm.JourneyActivity, error) {
	var acts []dbm.JourneyActivity
	err := r.db.WithContext(ctx).
		Where("journey_id = ?", journeyId).
		Preload("SelectedPOI").
		Preload("SelectedPOI.Tags").
		Preload("SelectedPOI.OpeningHours").
		Order("created_at, id").
		Find(&acts).Error
	if err != nil {
		return nil, err
	}
	return acts, nil
}

// ApplyPlacements writes all slots in one transaction, creating journey days
// on demand. Any failure rolls the whole batch back.
func (r *journeyRepository) ApplyPlacements(ctx context.Context, journey *dbm.Journey, slots []ActivitySlot) error {
	if len(slots) == 0 {
		return nil
	}
	loc := utils.LoadLocationOrUTC(journey.TimeZone)
	base := utils.FormatISODate(journey.StartDate, loc)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var days []dbm.JourneyDay
		if err := tx.Where("journey_id = ?", journey.ID).Find(&days).Error; err != nil {
			return err
		}
		// dates are compared in journey time zone since backends store time differently
		byDate := make(map[string]uuid.UUID, len(days))
		for _, d := range days {
			byDate[utils.FormatISODate(d.Date, loc)] = d.ID
		}

		dates := make([]string, 0, len(slots))
		for _, s := range slots {
			if _, ok := byDate[s.Date]; !ok {
				dates = append(dates, s.Date)
				byDate[s.Date] = uuid.Nil
			}
		}
		sort.Strings(dates)

		for _, date := range dates {
			midnight, err := utils.TimeOnDate(date, 0, loc)
			if err != nil {
				return err
			}
			jd := dbm.JourneyDay{
				JourneyID: journey.ID,
				Date:      midnight,
				DayNumber: utils.DayNumber(base, date),
			}
			if err := tx.Create(&jd).Error; err != nil {
				return err
			}
			byDate[date] = jd.ID
		}

		for _, s := range slots {
			dayID := byDate[s.Date]
			start, end := s.Start, s.End
			res := tx.Model(&dbm.JourneyActivity{}).
				Where("id = ? AND journey_id = ?", s.ActivityID, journey.ID).
				Updates(map[string]any{
					"journey_day_id": dayID,
					"start_at":       start,
					"end_at":         end,
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("activity %s not in journey %s: %w", s.ActivityID, journey.ID, gorm.ErrRecordNotFound)
			}
		}
		return nil
	})
}
