package controllers_fx

import (
	"go.uber.org/fx"
	"yugen/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewPOIsController),
	fx.Provide(controllers.NewTagController),
	fx.Provide(controllers.NewJourneyController),
	fx.Provide(controllers.NewScheduleController))
