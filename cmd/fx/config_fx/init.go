package config_fx

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"yugen/internal/config"
	"yugen/internal/logging"
	"yugen/internal/services"
)

var Module = fx.Provide(config.Load, provideLogger, provideScheduleDefaults)

func provideLogger(cfg *config.Config) zerolog.Logger {
	return logging.Setup(cfg.Environment, cfg.LogLevel)
}

func provideScheduleDefaults(cfg *config.Config) services.ScheduleDefaults {
	return services.ScheduleDefaults{
		MaxOperations: cfg.SchedulerMaxOperations,
		MaxDays:       cfg.SchedulerMaxDays,
		DayStart:      cfg.DefaultDayStart,
		DayEnd:        cfg.DefaultDayEnd,
	}
}
