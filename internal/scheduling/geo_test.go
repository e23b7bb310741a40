package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMeters(t *testing.T) {
	paris := LatLng{Lat: 48.8566, Lng: 2.3522}
	london := LatLng{Lat: 51.5074, Lng: -0.1278}

	assert.Zero(t, DistanceMeters(paris, paris))
	assert.InDelta(t, 343_500, DistanceMeters(paris, london), 3_500)
	assert.InDelta(t, DistanceMeters(paris, london), DistanceMeters(london, paris), 1e-6)
}

func TestEstimateTravelMinutes(t *testing.T) {
	a := &LatLng{Lat: 10, Lng: 10}
	b := &LatLng{Lat: 10.0045, Lng: 10} // ~500 m

	assert.Equal(t, FallbackTravelMinutes, EstimateTravelMinutes(nil, b, 75))
	assert.Equal(t, FallbackTravelMinutes, EstimateTravelMinutes(a, nil, 75))
	assert.Equal(t, 0, EstimateTravelMinutes(a, a, 75))
	assert.Equal(t, 7, EstimateTravelMinutes(a, b, 75))
	assert.Equal(t, 7, EstimateTravelMinutes(a, b, 0), "non-positive speed uses the walking default")
	assert.Equal(t, 3, EstimateTravelMinutes(a, b, 250))
	assert.Equal(t, MaxTravelMinutes, EstimateTravelMinutes(a, &LatLng{Lat: 20, Lng: 20}, 75))
}

type mapCache struct {
	data map[string]int
	sets int
}

func (m *mapCache) Get(key string) (int, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *mapCache) Set(key string, minutes int) {
	m.data[key] = minutes
	m.sets++
}

func TestTravelEstimatorUsesCache(t *testing.T) {
	cache := &mapCache{data: map[string]int{}}
	est := travelEstimator{metersPerMinute: 75, cache: cache}
	a := &LatLng{Lat: 10, Lng: 10}
	b := &LatLng{Lat: 10.0045, Lng: 10}

	assert.Equal(t, 7, est.minutes(a, b))
	assert.Equal(t, 7, est.minutes(a, b))
	assert.Equal(t, 1, cache.sets)

	cache.data[TravelCacheKey(*b, *a, 75)] = 42
	assert.Equal(t, 42, est.minutes(b, a))
	assert.Equal(t, FallbackTravelMinutes, est.minutes(nil, a))
}
