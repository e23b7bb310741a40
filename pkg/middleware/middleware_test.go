package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yugen/internal/metrics"
)

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.GET("/journeys/:journeyId", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("trace_id"))
	})
	return r
}

func TestTraceIDMiddlewareSetsHeader(t *testing.T) {
	r := newRouter(TraceIDMiddleware())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/journeys/j1", nil))

	require.Equal(t, http.StatusOK, w.Code)
	traceID := w.Header().Get("X-Trace-ID")
	assert.NotEmpty(t, traceID)
	assert.Equal(t, traceID, w.Body.String())
}

func TestCORSMiddlewareShortCircuitsPreflight(t *testing.T) {
	r := newRouter(CORSMiddleware())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/journeys/j1", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestLoggerWritesStructuredLine(t *testing.T) {
	var buf bytes.Buffer
	r := newRouter(TraceIDMiddleware(), RequestLogger(zerolog.New(&buf)))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/journeys/j1?apply=true", nil))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "/journeys/j1?apply=true", line["path"])
	assert.Equal(t, float64(http.StatusOK), line["status"])
	assert.Equal(t, w.Header().Get("X-Trace-ID"), line["trace_id"])
}

func TestMetricsUsesRouteTemplate(t *testing.T) {
	r := newRouter(Metrics())
	counter := metrics.HTTPRequests.WithLabelValues(http.MethodGet, "/journeys/:journeyId", "200")
	before := testutil.ToFloat64(counter)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/journeys/abc", nil))

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
