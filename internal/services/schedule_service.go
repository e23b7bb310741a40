package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	dbm "yugen/internal/models/db_models"
	"yugen/internal/models/request_models"
	"yugen/internal/models/response_models"
	"yugen/internal/metrics"
	"yugen/internal/repositories"
	"yugen/internal/scheduling"
	"yugen/pkg/utils"
)

const (
	sourcePreview = "preview"
	sourceJourney = "journey"
)

// ScheduleDefaults fill in whatever the caller leaves out of a request.
type ScheduleDefaults struct {
	MaxOperations int
	MaxDays       int
	DayStart      string
	DayEnd        string
}

type ScheduleServiceInterface interface {
	PreviewSchedule(ctx context.Context, req request_models.PreviewScheduleRequest) (*response_models.ScheduleResponse, error)
	AutoScheduleJourney(ctx context.Context, journeyId string, req request_models.AutoScheduleRequest, apply bool) (*response_models.ScheduleResponse, error)
}

type ScheduleService struct {
	journeyRepo repositories.JourneyRepository
	poiRepo     repositories.POIRepository
	cache       scheduling.TravelCache
	defaults    ScheduleDefaults
	logger      zerolog.Logger
}

func NewScheduleService(
	journeyRepo repositories.JourneyRepository,
	poiRepo repositories.POIRepository,
	cache scheduling.TravelCache,
	defaults ScheduleDefaults,
	logger zerolog.Logger,
) ScheduleServiceInterface {
	return &ScheduleService{
		journeyRepo: journeyRepo,
		poiRepo:     poiRepo,
		cache:       cache,
		defaults:    defaults,
		logger:      logger.With().Str("component", "schedule_service").Logger(),
	}
}

// PreviewSchedule runs the engine over ad-hoc candidates without touching
// any journey.
func (s *ScheduleService) PreviewSchedule(ctx context.Context, req request_models.PreviewScheduleRequest) (*response_models.ScheduleResponse, error) {
	dates, err := s.previewDates(req)
	if err != nil {
		return nil, err
	}

	candidates, err := s.enrichCandidates(ctx, req.Candidates)
	if err != nil {
		return nil, err
	}

	result := s.run(sourcePreview, scheduling.Request{
		Candidates:      candidates,
		FixedBlocks:     req.FixedBlocks,
		Dates:           dates,
		Preferences:     req.Preferences,
		Theme:           req.Theme,
		ClusterStrategy: scheduling.ClusterStrategy(req.ClusterStrategy),
	})

	return &response_models.ScheduleResponse{Dates: dates, Result: result}, nil
}

// AutoScheduleJourney places the journey's unscheduled activities around the
// ones already on the calendar. With apply set the placements are persisted
// in one transaction.
func (s *ScheduleService) AutoScheduleJourney(ctx context.Context, journeyId string, req request_models.AutoScheduleRequest, apply bool) (*response_models.ScheduleResponse, error) {
	if _, err := uuid.Parse(journeyId); err != nil {
		return nil, fmt.Errorf("journey id %q: %w", journeyId, utils.ErrInvalidInput)
	}

	journey, err := s.journeyRepo.GetJourneyById(ctx, journeyId)
	if err != nil {
		return nil, fmt.Errorf("load journey %s: %v: %w", journeyId, err, utils.ErrDatabaseError)
	}
	if journey == nil {
		return nil, utils.ErrJourneyNotFound
	}
	loc := utils.LoadLocationOrUTC(journey.TimeZone)

	dates, err := s.journeyDates(journey, loc, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	acts, err := s.journeyRepo.ListActivitiesByJourneyId(ctx, journeyId)
	if err != nil {
		return nil, fmt.Errorf("list activities of %s: %v: %w", journeyId, err, utils.ErrDatabaseError)
	}
	candidates, blocks := splitActivities(acts, loc)
	journeyDays, err := s.journeyDates(journey, loc, "", "")
	if err != nil {
		return nil, err
	}
	candidates, held := withinDates(candidates, dates, journeyDays)
	if held > 0 {
		s.logger.Debug().
			Str("journey_id", journeyId).
			Int("held", held).
			Msg("activities locked outside requested dates left untouched")
	}

	result := s.run(sourceJourney, scheduling.Request{
		Candidates:      candidates,
		FixedBlocks:     blocks,
		Dates:           dates,
		Preferences:     req.Preferences,
		Theme:           req.Theme,
		ClusterStrategy: scheduling.ClusterStrategy(req.ClusterStrategy),
	})

	resp := &response_models.ScheduleResponse{JourneyID: journeyId, Dates: dates, Result: result}
	if !apply || len(result.Placements) == 0 {
		return resp, nil
	}

	slots, err := slotsFor(result.Placements, loc)
	if err != nil {
		return nil, fmt.Errorf("build slots: %v: %w", err, utils.ErrInvalidInput)
	}
	if err := s.journeyRepo.ApplyPlacements(ctx, journey, slots); err != nil {
		return nil, fmt.Errorf("apply placements to %s: %v: %w", journeyId, err, utils.ErrDatabaseError)
	}
	resp.Applied = true
	s.logger.Info().
		Str("journey_id", journeyId).
		Int("applied", len(slots)).
		Msg("auto-schedule applied")
	return resp, nil
}

func (s *ScheduleService) run(source string, req scheduling.Request) *scheduling.Result {
	if req.Preferences.DayStart == "" {
		req.Preferences.DayStart = s.defaults.DayStart
	}
	if req.Preferences.DayEnd == "" {
		req.Preferences.DayEnd = s.defaults.DayEnd
	}
	req.MaxOperations = s.defaults.MaxOperations
	req.MaxDays = s.defaults.MaxDays
	req.TravelCache = s.cache

	started := time.Now()
	result := scheduling.Schedule(req)
	elapsed := time.Since(started)

	outcome := "complete"
	switch {
	case result.BudgetExhausted:
		outcome = "budget_exhausted"
	case len(result.Unplaced) > 0:
		outcome = "partial"
	}
	metrics.ScheduleRuns.WithLabelValues(source, outcome).Inc()
	metrics.ScheduleDuration.WithLabelValues(source).Observe(elapsed.Seconds())
	metrics.ScheduledPlacements.WithLabelValues(source).Add(float64(len(result.Placements)))
	for _, u := range result.Unplaced {
		metrics.ScheduledUnplaced.WithLabelValues(source, u.Reason).Inc()
	}

	s.logger.Debug().
		Str("source", source).
		Int("candidates", len(req.Candidates)).
		Int("dates", len(req.Dates)).
		Int("placed", len(result.Placements)).
		Int("unplaced", len(result.Unplaced)).
		Int("rejected", len(result.Rejected)).
		Bool("budget_exhausted", result.BudgetExhausted).
		Dur("elapsed", elapsed).
		Msg("schedule run")
	return result
}

func (s *ScheduleService) previewDates(req request_models.PreviewScheduleRequest) ([]string, error) {
	if len(req.Dates) > 0 {
		for _, d := range req.Dates {
			if !scheduling.IsISODateString(d) {
				return nil, fmt.Errorf("date %q: %w", d, utils.ErrInvalidDateRange)
			}
		}
		return req.Dates, nil
	}
	return s.enumerate(req.StartDate, req.EndDate)
}

// journeyDates is the journey range, optionally narrowed by from/to.
func (s *ScheduleService) journeyDates(j *dbm.Journey, loc *time.Location, from, to string) ([]string, error) {
	start := utils.FormatISODate(j.StartDate, loc)
	end := utils.FormatISODate(j.EndDate, loc)
	if end == "" {
		end = start
	}
	if from == "" {
		from = start
	}
	if to == "" {
		to = end
	}
	// ISO dates order lexically
	if from < start || to > end {
		return nil, fmt.Errorf("%s..%s outside journey %s..%s: %w", from, to, start, end, utils.ErrInvalidDateRange)
	}
	return s.enumerate(from, to)
}

func (s *ScheduleService) enumerate(from, to string) ([]string, error) {
	if !scheduling.IsISODateString(from) || !scheduling.IsISODateString(to) || to < from {
		return nil, fmt.Errorf("%q..%q: %w", from, to, utils.ErrInvalidDateRange)
	}
	return scheduling.EnumerateISODates(from, to, s.defaults.MaxDays), nil
}

// enrichCandidates fills gaps in client candidates from their referenced POIs.
func (s *ScheduleService) enrichCandidates(ctx context.Context, in []request_models.ScheduleCandidate) ([]scheduling.Candidate, error) {
	ids := make([]string, 0, len(in))
	for _, c := range in {
		if c.POIID != "" {
			ids = append(ids, c.POIID)
		}
	}
	pois, err := s.poiRepo.ListPoisByIds(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list pois: %v: %w", err, utils.ErrDatabaseError)
	}
	byID := make(map[string]*dbm.POI, len(pois))
	for i := range pois {
		byID[pois[i].ID.String()] = &pois[i]
	}

	out := make([]scheduling.Candidate, 0, len(in))
	for _, c := range in {
		cand := c.Candidate
		if c.POIID != "" {
			poi, ok := byID[c.POIID]
			if !ok {
				return nil, fmt.Errorf("candidate %q references poi %s: %w", c.ID, c.POIID, utils.ErrPOINotFound)
			}
			fillFromPOI(&cand, poi)
		}
		out = append(out, cand)
	}
	return out, nil
}

func fillFromPOI(c *scheduling.Candidate, poi *dbm.POI) {
	if c.Name == "" {
		c.Name = poi.Name
	}
	if c.Coordinates == nil {
		c.Coordinates = coordinatesOf(poi)
	}
	if c.DurationMinutes <= 0 {
		c.DurationMinutes = poi.DefaultDurationMinutes
	}
	if len(c.TypeTags) == 0 {
		c.TypeTags = typeTagsOf(poi)
	}
	if len(c.OpenHours) == 0 {
		c.OpenHours = openHoursOf(poi)
	}
}

// splitActivities turns scheduled activities into fixed blocks and the rest
// into candidates keyed by activity id.
func splitActivities(acts []dbm.JourneyActivity, loc *time.Location) ([]scheduling.Candidate, []scheduling.FixedBlock) {
	var (
		candidates []scheduling.Candidate
		blocks     []scheduling.FixedBlock
	)
	for i := range acts {
		a := &acts[i]
		if a.IsScheduled() {
			blocks = append(blocks, fixedBlockOf(a, loc))
			continue
		}
		c := scheduling.Candidate{
			ID:              a.ID.String(),
			Name:            a.Name,
			DurationMinutes: a.DurationMinutes,
			PreferredDate:   a.PreferredDate,
			LockedDate:      a.LockedDate,
		}
		if a.SelectedPOI != nil {
			fillFromPOI(&c, a.SelectedPOI)
		}
		candidates = append(candidates, c)
	}
	return candidates, blocks
}

// withinDates drops candidates locked to a journey date the run does not
// cover, so a narrowed range never moves them off their day. Locks outside
// the journey itself are left for the engine to ignore. It returns how many
// were dropped.
func withinDates(candidates []scheduling.Candidate, dates, journeyDates []string) ([]scheduling.Candidate, int) {
	inRun := toSet(dates)
	inJourney := toSet(journeyDates)
	kept := candidates[:0]
	for _, c := range candidates {
		locked := strings.TrimSpace(c.LockedDate)
		_, journeyDay := inJourney[locked]
		_, runDay := inRun[locked]
		if journeyDay && !runDay {
			continue
		}
		kept = append(kept, c)
	}
	return kept, len(candidates) - len(kept)
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// fixedBlockOf clips an activity to its start date; one running past
// midnight occupies the rest of that day.
func fixedBlockOf(a *dbm.JourneyActivity, loc *time.Location) scheduling.FixedBlock {
	date := utils.FormatISODate(*a.StartAt, loc)
	end := utils.MinuteOfDay(*a.EndAt, loc)
	if utils.FormatISODate(*a.EndAt, loc) != date {
		end = 24 * 60
	}
	return scheduling.FixedBlock{
		Date:        date,
		StartMinute: utils.MinuteOfDay(*a.StartAt, loc),
		EndMinute:   end,
		Coordinates: coordinatesOf(a.SelectedPOI),
	}
}

func slotsFor(placements []scheduling.Placement, loc *time.Location) ([]repositories.ActivitySlot, error) {
	slots := make([]repositories.ActivitySlot, 0, len(placements))
	for _, p := range placements {
		id, err := uuid.Parse(p.ID)
		if err != nil {
			return nil, fmt.Errorf("activity id %q: %w", p.ID, err)
		}
		start, err := utils.TimeOnDate(p.Date, p.StartMinute, loc)
		if err != nil {
			return nil, err
		}
		end, err := utils.TimeOnDate(p.Date, p.EndMinute, loc)
		if err != nil {
			return nil, err
		}
		slots = append(slots, repositories.ActivitySlot{ActivityID: id, Date: p.Date, Start: start, End: end})
	}
	return slots, nil
}
