package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"roamio/cmd/fx/controllers_fx"
	"roamio/cmd/fx/db_fx"
	"roamio/cmd/fx/destination_fx"
	"roamio/cmd/fx/suggestion_fx"
	"roamio/cmd/fx/trip_fx"
	"roamio/cmd/fx/user_fx"
	"roamio/internal/api"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on the environment")
	}

	app := fx.New(
		db_fx.Module,
		user_fx.Module,
		trip_fx.Module,
		destination_fx.Module,
		suggestion_fx.Module,
		controllers_fx.Module,

		fx.Provide(api.NewRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}
