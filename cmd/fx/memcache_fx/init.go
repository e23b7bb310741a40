package memcache_fx

import (
	"go.uber.org/fx"
	"yugen/internal/config"
	"yugen/internal/scheduling"
	mem "yugen/pkg/memcache"
)

var Module = fx.Provide(provideTravelTimes, provideTravelCache)

func provideTravelTimes(cfg *config.Config) mem.TravelTimeStore {
	return mem.NewTravelTimes(cfg.TravelCacheTTL, cfg.TravelCacheMaxEntries)
}

func provideTravelCache(store mem.TravelTimeStore) scheduling.TravelCache {
	return store
}
