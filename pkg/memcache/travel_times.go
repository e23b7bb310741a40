// pkg/memcache/travel_times.go
package mem

import (
	"sync"
	"time"
)

// TravelTimeStore caches estimated travel minutes between coordinate pairs.
// It satisfies scheduling.TravelCache.
type TravelTimeStore interface {
	Get(key string) (int, bool)
	Set(key string, minutes int)
	Len() int
}

type entry struct {
	minutes   int
	expiresAt time.Time
}

type TravelTimes struct {
	mu         sync.RWMutex
	data       map[string]entry
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

// NewTravelTimes builds a store. ttl <= 0 keeps entries forever;
// maxEntries <= 0 disables the size bound.
func NewTravelTimes(ttl time.Duration, maxEntries int) *TravelTimes {
	return &TravelTimes{
		data:       make(map[string]entry),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

func (s *TravelTimes) Get(key string) (int, bool) {
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return 0, false
	}
	if s.expired(e) {
		s.mu.Lock()
		delete(s.data, key) // cleanup expired
		s.mu.Unlock()
		return 0, false
	}
	return e.minutes, true
}

func (s *TravelTimes) Set(key string, minutes int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[key]; !exists && s.maxEntries > 0 && len(s.data) >= s.maxEntries {
		s.evictLocked()
	}
	e := entry{minutes: minutes}
	if s.ttl > 0 {
		e.expiresAt = s.now().Add(s.ttl)
	}
	s.data[key] = e
}

func (s *TravelTimes) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

func (s *TravelTimes) expired(e entry) bool {
	return !e.expiresAt.IsZero() && s.now().After(e.expiresAt)
}

// evictLocked drops expired entries first, then the entry closest to expiry.
// Caller holds mu.
func (s *TravelTimes) evictLocked() {
	var (
		victim string
		soon   time.Time
		found  bool
	)
	for k, e := range s.data {
		if s.expired(e) {
			delete(s.data, k)
			continue
		}
		if !found || e.expiresAt.Before(soon) || (e.expiresAt.Equal(soon) && k < victim) {
			victim, soon, found = k, e.expiresAt, true
		}
	}
	if len(s.data) < s.maxEntries {
		return
	}
	if found {
		delete(s.data, victim)
	}
}
