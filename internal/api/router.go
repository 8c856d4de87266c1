package api

import (
	"github.com/gin-gonic/gin"

	"roamio/internal/api/controllers"
	"roamio/pkg/middleware"
	"roamio/pkg/utils"
)

// NewRouter assembles the gin engine with the full /api surface.
func NewRouter(
	authController *controllers.AuthController,
	tripController *controllers.TripController,
	destinationController *controllers.DestinationController,
	suggestionController *controllers.SuggestionController,
	adminController *controllers.AdminController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, authController, tripController, destinationController, suggestionController, adminController)

	return r
}

func RegisterRoutes(
	r *gin.Engine,
	authController *controllers.AuthController,
	tripController *controllers.TripController,
	destinationController *controllers.DestinationController,
	suggestionController *controllers.SuggestionController,
	adminController *controllers.AdminController,
) {
	apiGroup := r.Group("/api")

	apiGroup.GET("/health", func(c *gin.Context) {
		utils.RespondSuccess(c, nil, "ok")
	})

	authGroup := apiGroup.Group("/auth")
	authGroup.POST("/register", authController.Register)
	authGroup.POST("/login", authController.Login)
	authGroup.GET("/status", authController.Status)
	authGroup.POST("/logout", middleware.SessionAuthMiddleware(), authController.Logout)

	tripsGroup := apiGroup.Group("/trips", middleware.SessionAuthMiddleware())
	tripsGroup.GET("", tripController.ListTrips)
	tripsGroup.POST("", tripController.CreateTrip)
	tripsGroup.DELETE("/:id", tripController.DeleteTrip)
	tripsGroup.POST("/:id/destinations", destinationController.AddDestination)
	tripsGroup.POST("/:id/destinations/reorder", destinationController.ReorderDestinations)
	tripsGroup.GET("/:id/suggestions", suggestionController.GetSuggestions)

	destinationsGroup := apiGroup.Group("/destinations", middleware.SessionAuthMiddleware())
	destinationsGroup.PATCH("/:id", destinationController.UpdateDestination)
	destinationsGroup.DELETE("/:id", destinationController.DeleteDestination)

	adminGroup := apiGroup.Group("/admin", middleware.SessionAuthMiddleware(), middleware.AdminOnlyMiddleware())
	adminGroup.GET("/users", adminController.ListUsers)
}
