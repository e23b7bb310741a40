package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	dbm "yugen/internal/models/db_models"
	"yugen/internal/models/response_models"
	"yugen/internal/repositories"
	"yugen/internal/scheduling"
	"yugen/pkg/utils"
)

type JourneyServiceInterface interface {
	GetDetailsInfoOfJourneyById(ctx context.Context, journeyId, date string) (*response_models.JourneyDetailResponse, error)
}

type JourneyService struct {
	journeyRepo repositories.JourneyRepository
}

func NewJourneyService(journeyRepo repositories.JourneyRepository) JourneyServiceInterface {
	return &JourneyService{journeyRepo: journeyRepo}
}

// GetDetailsInfoOfJourneyById returns the whole itinerary, or a single day of
// it when date is set.
func (j *JourneyService) GetDetailsInfoOfJourneyById(ctx context.Context, journeyId, date string) (*response_models.JourneyDetailResponse, error) {
	if _, err := uuid.Parse(journeyId); err != nil {
		return nil, fmt.Errorf("journey id %q: %w", journeyId, utils.ErrInvalidInput)
	}
	if date != "" && !scheduling.IsISODateString(date) {
		return nil, fmt.Errorf("date %q: %w", date, utils.ErrInvalidDateRange)
	}

	journey, err := j.journeyRepo.GetDetailsOfJourneyById(ctx, journeyId)
	if err != nil {
		return nil, fmt.Errorf("load journey %s: %v: %w", journeyId, err, utils.ErrDatabaseError)
	}
	if journey == nil {
		return nil, utils.ErrJourneyNotFound
	}
	resp := mapJourneyDetail(journey)
	if date != "" {
		onlyDate(resp, date)
	}
	return resp, nil
}

// onlyDate narrows a detail to one day. Totals keep describing the journey.
func onlyDate(resp *response_models.JourneyDetailResponse, date string) {
	days := resp.Days[:0]
	for _, d := range resp.Days {
		if d.Date == date {
			days = append(days, d)
		}
	}
	resp.Days = days

	waiting := resp.Unscheduled[:0]
	for _, a := range resp.Unscheduled {
		wanted := a.LockedDate
		if wanted == "" {
			wanted = a.PreferredDate
		}
		if wanted == "" || wanted == date {
			waiting = append(waiting, a)
		}
	}
	resp.Unscheduled = waiting
}

func mapJourneyDetail(j *dbm.Journey) *response_models.JourneyDetailResponse {
	loc := utils.LoadLocationOrUTC(j.TimeZone)

	resp := &response_models.JourneyDetailResponse{
		ID:              j.ID,
		Title:           j.Title,
		StartDate:       utils.FormatISODate(j.StartDate, loc),
		EndDate:         utils.FormatISODate(j.EndDate, loc),
		TimeZone:        loc.String(),
		IsShared:        j.IsShared,
		IsCompleted:     j.IsCompleted,
		TotalDays:       len(j.Days),
		TotalActivities: len(j.Activities),
		Days:            make([]response_models.JourneyDayResponse, 0, len(j.Days)),
		Unscheduled:     []response_models.JourneyActivityDetail{},
	}
	if !j.StartDate.IsZero() && !j.EndDate.IsZero() {
		resp.DurationDays = utils.DayNumber(resp.StartDate, resp.EndDate)
	}

	dayIndex := make(map[uuid.UUID]int, len(j.Days))
	for i, d := range j.Days {
		dayIndex[d.ID] = i
		resp.Days = append(resp.Days, response_models.JourneyDayResponse{
			ID:         d.ID,
			DayNumber:  d.DayNumber,
			Date:       utils.FormatISODate(d.Date, loc),
			Activities: []response_models.JourneyActivityDetail{},
		})
	}

	for i := range j.Activities {
		a := &j.Activities[i]
		detail := mapActivity(a, loc)
		if a.IsScheduled() {
			if idx, ok := dayIndex[*a.JourneyDayID]; ok {
				resp.Days[idx].Activities = append(resp.Days[idx].Activities, detail)
				continue
			}
		}
		resp.Unscheduled = append(resp.Unscheduled, detail)
	}
	return resp
}

func mapActivity(a *dbm.JourneyActivity, loc *time.Location) response_models.JourneyActivityDetail {
	d := response_models.JourneyActivityDetail{
		ID:              a.ID,
		Name:            a.Name,
		StartTime:       utils.FormatRFC3339In(a.StartAt, loc),
		EndTime:         utils.FormatRFC3339In(a.EndAt, loc),
		DurationMinutes: a.DurationMinutes,
		ActivityType:    a.ActivityType,
		Notes:           a.Notes,
		PreferredDate:   a.PreferredDate,
		LockedDate:      a.LockedDate,
	}
	if p := a.SelectedPOI; p != nil {
		d.SelectedPOI = &response_models.POISummary{
			ID:        p.ID,
			Name:      p.Name,
			Address:   p.Address,
			Latitude:  p.Latitude,
			Longitude: p.Longitude,
			Status:    p.Status,
		}
	}
	return d
}
