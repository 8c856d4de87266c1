package controllers_fx

import (
	"go.uber.org/fx"

	"roamio/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewTripController),
	fx.Provide(controllers.NewDestinationController),
	fx.Provide(controllers.NewSuggestionController),
	fx.Provide(controllers.NewAdminController))
