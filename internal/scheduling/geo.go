package scheduling

import (
	"fmt"
	"math"

	"github.com/golang/geo/s2"
)

const (
	EarthRadiusMeters = 6371000.0

	DefaultMetersPerMinute = 75.0 // ~4.5 km/h
	FallbackTravelMinutes  = 8
	MaxTravelMinutes       = 90
)

// TravelCache memoizes travel estimates between coordinate pairs. It is owned
// and sized by the caller of a scheduling run.
type TravelCache interface {
	Get(key string) (int, bool)
	Set(key string, minutes int)
}

// DistanceMeters is the great-circle (haversine) distance between a and b.
func DistanceMeters(a, b LatLng) float64 {
	p1 := s2.LatLngFromDegrees(a.Lat, a.Lng)
	p2 := s2.LatLngFromDegrees(b.Lat, b.Lng)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// EstimateTravelMinutes converts the straight-line distance into minutes at
// the given speed, clamped to [0, MaxTravelMinutes]. A missing endpoint gives
// FallbackTravelMinutes.
func EstimateTravelMinutes(from, to *LatLng, metersPerMinute float64) int {
	if from == nil || to == nil {
		return FallbackTravelMinutes
	}
	if metersPerMinute <= 0 || math.IsNaN(metersPerMinute) || math.IsInf(metersPerMinute, 0) {
		metersPerMinute = DefaultMetersPerMinute
	}
	minutes := math.Ceil(DistanceMeters(*from, *to) / metersPerMinute)
	if math.IsNaN(minutes) {
		return FallbackTravelMinutes
	}
	return clamp(int(minutes), 0, MaxTravelMinutes)
}

// MetersPerMinuteForMode is the assumed average speed of a travel mode.
func MetersPerMinuteForMode(mode TravelMode) float64 {
	switch mode {
	case TravelBicycling:
		return 250
	case TravelDriving:
		return 500
	case TravelTransit:
		return 350
	default:
		return DefaultMetersPerMinute
	}
}

func validLatLng(p *LatLng) bool {
	if p == nil {
		return false
	}
	if math.IsNaN(p.Lat) || math.IsInf(p.Lat, 0) || math.IsNaN(p.Lng) || math.IsInf(p.Lng, 0) {
		return false
	}
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// travelEstimator wraps EstimateTravelMinutes with the optional caller cache.
type travelEstimator struct {
	metersPerMinute float64
	cache           TravelCache
}

func (t travelEstimator) minutes(from, to *LatLng) int {
	if from == nil || to == nil || t.cache == nil {
		return EstimateTravelMinutes(from, to, t.metersPerMinute)
	}
	key := TravelCacheKey(*from, *to, t.metersPerMinute)
	if v, ok := t.cache.Get(key); ok {
		return v
	}
	v := EstimateTravelMinutes(from, to, t.metersPerMinute)
	t.cache.Set(key, v)
	return v
}

// TravelCacheKey identifies a directed coordinate pair at a given speed.
func TravelCacheKey(from, to LatLng, metersPerMinute float64) string {
	return fmt.Sprintf("%.6f,%.6f|%.6f,%.6f|%.1f", from.Lat, from.Lng, to.Lat, to.Lng, metersPerMinute)
}
