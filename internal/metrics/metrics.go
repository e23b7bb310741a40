package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the API
	Registry = prometheus.NewRegistry()
	// HTTPRequests counts requests by method, route, and status
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	// HTTPDuration records request durations in seconds
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path", "status"},
	)

	// ScheduleRuns counts engine runs by entry point and outcome
	ScheduleRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "schedule_runs_total", Help: "Scheduling runs by source and outcome."},
		[]string{"source", "outcome"},
	)
	ScheduledPlacements = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "schedule_placements_total", Help: "Activities placed into a time slot."},
		[]string{"source"},
	)
	ScheduledUnplaced = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "schedule_unplaced_total", Help: "Activities left unplaced, by reason."},
		[]string{"source", "reason"},
	)
	// ScheduleDuration tracks engine wall time in seconds
	ScheduleDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "schedule_run_duration_seconds", Help: "Scheduling engine run duration in seconds.", Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1}},
		[]string{"source"},
	)
)

// RegisterDefault registers collectors to the dedicated registry.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(ScheduleRuns)
		Registry.MustRegister(ScheduledPlacements)
		Registry.MustRegister(ScheduledUnplaced)
		Registry.MustRegister(ScheduleDuration)
		// Go/process collectors on our registry
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

var regOnce sync.Once
