package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yugen/internal/api/controllers"
	"yugen/internal/config"
	"yugen/internal/infra"
	dbm "yugen/internal/models/db_models"
	"yugen/internal/metrics"
	"yugen/internal/repositories"
	"yugen/internal/services"
	mem "yugen/pkg/memcache"
)

func TestRouterEndToEnd(t *testing.T) {
	metrics.RegisterDefault()
	db := infra.NewTestDB(t)
	journeys := repositories.NewJourneyRepository(db)
	pois := repositories.NewPOIRepository(db)
	tags := repositories.NewTagRepository(db)
	sched := services.NewScheduleService(journeys, pois, mem.NewTravelTimes(time.Hour, 100), services.ScheduleDefaults{
		MaxOperations: 500, MaxDays: 60, DayStart: "09:00", DayEnd: "18:00",
	}, zerolog.Nop())

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	j := &dbm.Journey{
		Title: "Da Nang", StartDate: start, EndDate: start.AddDate(0, 0, 1),
		Activities: []dbm.JourneyActivity{{Name: "Marble Mountains", DurationMinutes: 120}},
	}
	_, err := journeys.CreateJourney(context.Background(), j)
	require.NoError(t, err)

	r := ProvideRouter(&config.Config{Environment: "development"}, zerolog.Nop(),
		controllers.NewPOIsController(services.NewPOIService(pois)),
		controllers.NewTagController(services.NewTagService(tags)),
		controllers.NewJourneyController(services.NewJourneyService(journeys)),
		controllers.NewScheduleController(sched),
	)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/journeys/"+j.ID.String()+"/auto-schedule?apply=true", bytes.NewReader(nil)))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var env struct {
		Data struct {
			Applied    bool `json:"applied"`
			Placements []struct {
				Date      string `json:"date"`
				StartTime string `json:"start_time"`
			} `json:"placements"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Data.Applied)
	require.Len(t, env.Data.Placements, 1)
	assert.Equal(t, "09:00", env.Data.Placements[0].StartTime)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/journeys/"+j.ID.String(), nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"day_number":1`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, "schedule_runs_total"))
	assert.True(t, strings.Contains(body, "http_requests_total"))
}
