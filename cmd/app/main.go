package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"yugen/cmd/fx/config_fx"
	"yugen/cmd/fx/controllers_fx"
	"yugen/cmd/fx/db_fx"
	"yugen/cmd/fx/journey_fx"
	"yugen/cmd/fx/memcache_fx"
	poisfx "yugen/cmd/fx/pois_fx"
	"yugen/cmd/fx/scheduling_fx"
	"yugen/cmd/fx/tagsfx"
	"yugen/internal/config"
	"yugen/internal/metrics"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		poisfx.Module,
		tagsfx.Module,
		journey_fx.Module,
		scheduling_fx.Module,
		controllers_fx.Module,

		fx.Invoke(metrics.RegisterDefault),
		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, logger zerolog.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info().Str("addr", srv.Addr).Msg("starting HTTP server")
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal().Err(err).Msg("HTTP server failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
