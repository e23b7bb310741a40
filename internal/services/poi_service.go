package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"yugen/internal/models/db_models"
	"yugen/internal/models/response_models"
	"yugen/internal/repositories"
	"yugen/internal/scheduling"
	"yugen/pkg/utils"
)

type POIServiceInterface interface {
	GetPOIById(id string, ctx context.Context) (response_models.POI, error)
}

type PoiService struct {
	poiRepository repositories.POIRepository
}

func NewPOIService(poiRepo repositories.POIRepository) POIServiceInterface {
	return &PoiService{poiRepository: poiRepo}
}

func (p *PoiService) GetPOIById(id string, ctx context.Context) (response_models.POI, error) {
	if _, err := uuid.Parse(id); err != nil {
		return response_models.POI{}, fmt.Errorf("poi id %q: %w", id, utils.ErrInvalidInput)
	}

	poi, err := p.poiRepository.GetByIDWithDetails(ctx, id)
	if err != nil {
		return response_models.POI{}, fmt.Errorf("load poi %s: %v: %w", id, err, utils.ErrDatabaseError)
	}
	if poi == nil {
		return response_models.POI{}, utils.ErrPOINotFound
	}
	return toPOIResponse(poi), nil
}

func toPOIResponse(poi *db_models.POI) response_models.POI {
	tags := make([]string, 0, len(poi.Tags))
	for _, t := range poi.Tags {
		tags = append(tags, t.EnName)
	}
	hours := make([]response_models.OpeningHour, 0, len(poi.OpeningHours))
	for _, h := range poi.OpeningHours {
		hours = append(hours, response_models.OpeningHour{
			Day:   h.Day,
			Open:  fmt.Sprintf("%02d:%02d", h.OpenHour, h.OpenMinute),
			Close: fmt.Sprintf("%02d:%02d", h.CloseHour, h.CloseMinute),
		})
	}
	return response_models.POI{
		ID:                     poi.ID.String(),
		Name:                   poi.Name,
		Latitude:               poi.Latitude,
		Longitude:              poi.Longitude,
		Category:               poi.Category,
		ContactInfo:            poi.ContactInfo,
		Address:                poi.Address,
		DefaultDurationMinutes: poi.DefaultDurationMinutes,
		Tags:                   tags,
		OpeningHours:           hours,
	}
}

// openHoursOf converts stored opening hours into engine rows.
func openHoursOf(poi *db_models.POI) []scheduling.OpenHoursRow {
	if poi == nil || len(poi.OpeningHours) == 0 {
		return nil
	}
	rows := make([]scheduling.OpenHoursRow, 0, len(poi.OpeningHours))
	for _, h := range poi.OpeningHours {
		rows = append(rows, scheduling.OpenHoursRow{
			Day:         h.Day,
			OpenHour:    h.OpenHour,
			OpenMinute:  h.OpenMinute,
			CloseHour:   h.CloseHour,
			CloseMinute: h.CloseMinute,
		})
	}
	return rows
}

// typeTagsOf is the POI category followed by its tag names.
func typeTagsOf(poi *db_models.POI) []string {
	if poi == nil {
		return nil
	}
	tags := make([]string, 0, len(poi.Tags)+1)
	if poi.Category != "" {
		tags = append(tags, poi.Category)
	}
	for _, t := range poi.Tags {
		tags = append(tags, t.EnName)
	}
	return tags
}

func coordinatesOf(poi *db_models.POI) *scheduling.LatLng {
	if poi == nil || !poi.HasCoordinates() {
		return nil
	}
	return &scheduling.LatLng{Lat: *poi.Latitude, Lng: *poi.Longitude}
}
