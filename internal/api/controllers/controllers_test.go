package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yugen/internal/models/request_models"
	"yugen/internal/models/response_models"
	"yugen/internal/scheduling"
	"yugen/pkg/middleware"
	"yugen/pkg/utils"
)

type fakeScheduleService struct {
	preview   request_models.PreviewScheduleRequest
	auto      request_models.AutoScheduleRequest
	journeyID string
	apply     bool
	err       error
}

func (f *fakeScheduleService) PreviewSchedule(_ context.Context, req request_models.PreviewScheduleRequest) (*response_models.ScheduleResponse, error) {
	f.preview = req
	if f.err != nil {
		return nil, f.err
	}
	return &response_models.ScheduleResponse{
		Dates: req.Dates,
		Result: &scheduling.Result{
			Placements: []scheduling.Placement{{ID: "a", Date: "2024-06-01", StartMinute: 540, EndMinute: 600, StartTime: "09:00", EndTime: "10:00"}},
		},
	}, nil
}

func (f *fakeScheduleService) AutoScheduleJourney(_ context.Context, journeyId string, req request_models.AutoScheduleRequest, apply bool) (*response_models.ScheduleResponse, error) {
	f.journeyID, f.auto, f.apply = journeyId, req, apply
	if f.err != nil {
		return nil, f.err
	}
	return &response_models.ScheduleResponse{JourneyID: journeyId, Applied: apply, Result: &scheduling.Result{}}, nil
}

type fakePOIService struct{ err error }

func (f *fakePOIService) GetPOIById(id string, _ context.Context) (response_models.POI, error) {
	if f.err != nil {
		return response_models.POI{}, f.err
	}
	return response_models.POI{ID: id, Name: "Opera House"}, nil
}

type fakeTagService struct{ byUsage bool }

func (f *fakeTagService) GetAllTags(page, pageSize int, byUsage bool, _ context.Context) ([]response_models.TagResponse, error) {
	f.byUsage = byUsage
	return []response_models.TagResponse{{En: "museum", POICount: 3}}, nil
}

type fakeJourneyService struct {
	date string
	err  error
}

func (f *fakeJourneyService) GetDetailsInfoOfJourneyById(_ context.Context, id, date string) (*response_models.JourneyDetailResponse, error) {
	f.date = date
	if f.err != nil {
		return nil, f.err
	}
	return &response_models.JourneyDetailResponse{Title: "Hanoi"}, nil
}

func newTestRouter(sched *fakeScheduleService, pois *fakePOIService, journeys *fakeJourneyService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())

	sc := NewScheduleController(sched)
	jc := NewJourneyController(journeys)
	pc := NewPOIsController(pois)

	r.POST("/schedule/preview", sc.PreviewSchedule)
	r.POST("/journeys/:journeyId/auto-schedule", sc.AutoScheduleJourney)
	r.GET("/journeys/:journeyId", jc.GetDetailsInfoOfJourneyById)
	r.GET("/pois/:id", pc.GetPoiById)
	return r
}

type envelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	TraceID string          `json:"trace_id"`
	Data    json.RawMessage `json:"data"`
}

func do(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

func TestPreviewScheduleHandler(t *testing.T) {
	sched := &fakeScheduleService{}
	r := newTestRouter(sched, &fakePOIService{}, &fakeJourneyService{})

	body := `{
		"candidates": [{"id": "a", "name": "Museum", "duration_minutes": 60, "coordinates": {"lat": 21.03, "lng": 105.85}}],
		"dates": ["2024-06-01"],
		"preferences": {"pace": "relaxed", "travel_mode": "walking"},
		"cluster_strategy": "grid"
	}`
	w, env := do(t, r, http.MethodPost, "/schedule/preview", body)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", env.Status)
	assert.Equal(t, w.Header().Get("X-Trace-ID"), env.TraceID)

	require.Len(t, sched.preview.Candidates, 1)
	assert.Equal(t, "Museum", sched.preview.Candidates[0].Name)
	assert.Equal(t, 21.03, sched.preview.Candidates[0].Coordinates.Lat)
	assert.Equal(t, scheduling.PaceRelaxed, sched.preview.Preferences.Pace)

	var data response_models.ScheduleResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Placements, 1)
	assert.Equal(t, "09:00", data.Placements[0].StartTime)
}

func TestPreviewScheduleHandlerRejectsBadBody(t *testing.T) {
	r := newTestRouter(&fakeScheduleService{}, &fakePOIService{}, &fakeJourneyService{})

	cases := map[string]string{
		"not json":         `{`,
		"no candidates":    `{"candidates": [], "dates": ["2024-06-01"]}`,
		"unknown strategy": `{"candidates": [{"id": "a"}], "cluster_strategy": "random"}`,
		"bad poi id":       `{"candidates": [{"id": "a", "poi_id": "nope"}]}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			w, env := do(t, r, http.MethodPost, "/schedule/preview", body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "error", env.Status)
		})
	}
}

func TestServiceErrorsMapToStatus(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{fmt.Errorf("x: %w", utils.ErrInvalidDateRange), http.StatusBadRequest},
		{fmt.Errorf("x: %w", utils.ErrInvalidInput), http.StatusBadRequest},
		{fmt.Errorf("x: %w", utils.ErrPOINotFound), http.StatusNotFound},
		{fmt.Errorf("x: %w", utils.ErrDatabaseError), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		r := newTestRouter(&fakeScheduleService{err: tc.err}, &fakePOIService{}, &fakeJourneyService{})
		w, _ := do(t, r, http.MethodPost, "/schedule/preview", `{"candidates": [{"id": "a"}], "dates": ["2024-06-01"]}`)
		assert.Equal(t, tc.code, w.Code, tc.err.Error())
	}
}

func TestAutoScheduleHandler(t *testing.T) {
	sched := &fakeScheduleService{}
	r := newTestRouter(sched, &fakePOIService{}, &fakeJourneyService{})

	w, env := do(t, r, http.MethodPost, "/journeys/j-1/auto-schedule?apply=true", `{"start_date": "2024-06-02", "theme": "food"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Journey schedule applied successfully", env.Message)
	assert.Equal(t, "j-1", sched.journeyID)
	assert.True(t, sched.apply)
	assert.Equal(t, "2024-06-02", sched.auto.StartDate)
	assert.Equal(t, "food", sched.auto.Theme)

	// empty body is fine, apply defaults to false
	w, env = do(t, r, http.MethodPost, "/journeys/j-2/auto-schedule", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, sched.apply)
	assert.Equal(t, "Journey schedule previewed successfully", env.Message)

	w, _ = do(t, r, http.MethodPost, "/journeys/j-2/auto-schedule?apply=maybe", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAutoScheduleHandlerJourneyNotFound(t *testing.T) {
	r := newTestRouter(&fakeScheduleService{err: utils.ErrJourneyNotFound}, &fakePOIService{}, &fakeJourneyService{})

	w, env := do(t, r, http.MethodPost, "/journeys/j-1/auto-schedule", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Journey not found", env.Message)
}

func TestReadHandlers(t *testing.T) {
	r := newTestRouter(&fakeScheduleService{}, &fakePOIService{}, &fakeJourneyService{})

	w, env := do(t, r, http.MethodGet, "/pois/p-1", "")
	require.Equal(t, http.StatusOK, w.Code)
	var poi response_models.POI
	require.NoError(t, json.Unmarshal(env.Data, &poi))
	assert.Equal(t, "p-1", poi.ID)

	w, env = do(t, r, http.MethodGet, "/journeys/j-1", "")
	require.Equal(t, http.StatusOK, w.Code)
	var journey response_models.JourneyDetailResponse
	require.NoError(t, json.Unmarshal(env.Data, &journey))
	assert.Equal(t, "Hanoi", journey.Title)

	r = newTestRouter(&fakeScheduleService{}, &fakePOIService{err: utils.ErrPOINotFound}, &fakeJourneyService{err: utils.ErrJourneyNotFound})
	w, _ = do(t, r, http.MethodGet, "/pois/p-1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	w, _ = do(t, r, http.MethodGet, "/journeys/j-1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListTagsHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tags := &fakeTagService{}
	r := gin.New()
	r.GET("/tags", NewTagController(tags).ListAllTagsHandler)

	w, env := do(t, r, http.MethodGet, "/tags?sort=usage", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, tags.byUsage)
	var got []response_models.TagResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, int64(3), got[0].POICount)

	for _, q := range []string{"?sort=random", "?page=0", "?pageSize=500"} {
		w, _ = do(t, r, http.MethodGet, "/tags"+q, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
	}
}

func TestJourneyDayHandler(t *testing.T) {
	journeys := &fakeJourneyService{}
	r := newTestRouter(&fakeScheduleService{}, &fakePOIService{}, journeys)

	w, env := do(t, r, http.MethodGet, "/journeys/j-1?date=2024-06-02", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2024-06-02", journeys.date)
	assert.Equal(t, "Journey day fetched successfully", env.Message)

	w, env = do(t, r, http.MethodGet, "/journeys/j-1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, journeys.date)
	assert.Equal(t, "Journey details fetched successfully", env.Message)

	r = newTestRouter(&fakeScheduleService{}, &fakePOIService{}, &fakeJourneyService{err: utils.ErrInvalidDateRange})
	w, _ = do(t, r, http.MethodGet, "/journeys/j-1?date=june", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
