package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"yugen/internal/api/controllers"
	"yugen/internal/config"
	"yugen/internal/metrics"
	"yugen/pkg/middleware"
)

func ProvideRouter(
	cfg *config.Config,
	logger zerolog.Logger,
	poisController *controllers.POIsController,
	tagsController *controllers.TagController,
	journeyController *controllers.JourneyController,
	scheduleController *controllers.ScheduleController) *gin.Engine {

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, poisController, tagsController, journeyController, scheduleController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	poisController *controllers.POIsController,
	tagsController *controllers.TagController,
	journeyController *controllers.JourneyController,
	scheduleController *controllers.ScheduleController) {

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	poisgroup := r.Group("/pois")
	poisgroup.GET("/:id", poisController.GetPoiById)

	tagsGroup := r.Group("/tags")
	tagsGroup.GET("", tagsController.ListAllTagsHandler)

	journeyGroup := r.Group("/journeys")
	journeyGroup.GET("/:journeyId", journeyController.GetDetailsInfoOfJourneyById)
	journeyGroup.POST("/:journeyId/auto-schedule", scheduleController.AutoScheduleJourney)

	scheduleGroup := r.Group("/schedule")
	scheduleGroup.POST("/preview", scheduleController.PreviewSchedule)
}
