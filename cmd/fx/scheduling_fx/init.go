package scheduling_fx

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"yugen/internal/repositories"
	"yugen/internal/scheduling"
	"yugen/internal/services"
)

var Module = fx.Provide(provideScheduleService)

func provideScheduleService(
	journeyRepo repositories.JourneyRepository,
	poiRepo repositories.POIRepository,
	cache scheduling.TravelCache,
	defaults services.ScheduleDefaults,
	logger zerolog.Logger,
) services.ScheduleServiceInterface {
	return services.NewScheduleService(journeyRepo, poiRepo, cache, defaults, logger)
}
