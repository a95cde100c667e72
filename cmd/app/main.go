package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"solace/cmd/fx/affirmation_fx"
	"solace/cmd/fx/badge_fx"
	"solace/cmd/fx/db_fx"
	"solace/cmd/fx/entry_fx"
	"solace/cmd/fx/insights_fx"
	"solace/cmd/fx/progress_fx"
	"solace/cmd/fx/reflection_fx"
	"solace/cmd/fx/subscription_fx"
	"solace/internal/api/controllers"
	"solace/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		entry_fx.Module,
		progress_fx.Module,
		badge_fx.Module,
		affirmation_fx.Module,
		subscription_fx.Module,
		reflection_fx.Module,
		insights_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
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

func ProvideRouter(
	entryController *controllers.EntryController,
	progressController *controllers.ProgressController,
	badgeController *controllers.BadgeController,
	affirmationController *controllers.AffirmationController,
	subscriptionController *controllers.SubscriptionController,
	insightsController *controllers.InsightsController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		entryController,
		progressController,
		badgeController,
		affirmationController,
		subscriptionController,
		insightsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	entryController *controllers.EntryController,
	progressController *controllers.ProgressController,
	badgeController *controllers.BadgeController,
	affirmationController *controllers.AffirmationController,
	subscriptionController *controllers.SubscriptionController,
	insightsController *controllers.InsightsController) {

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authed := r.Group("/")
	authed.Use(middleware.JWTAuthMiddleware())

	entries := authed.Group("/entries")
	entries.POST("", entryController.CreateEntry)
	entries.GET("", entryController.ListEntries)
	entries.GET("/:entryId", entryController.GetEntry)
	entries.DELETE("/:entryId", entryController.DeleteEntry)
	entries.GET("/:entryId/similar", entryController.GetSimilarEntries)

	progress := authed.Group("/progress")
	progress.GET("", progressController.GetProgress)
	progress.POST("/refresh", progressController.RefreshProgress)

	badges := authed.Group("/badges")
	badges.GET("", badgeController.ListBadges)
	badges.GET("/progress", badgeController.ListBadgeProgress)

	affirmations := authed.Group("/affirmations")
	affirmations.GET("/daily", affirmationController.GetDailyAffirmation)

	subscription := authed.Group("/subscription")
	subscription.GET("", subscriptionController.GetSubscription)
	subscription.POST("/status", subscriptionController.UpdateSubscriptionStatus)

	authed.GET("/insights", insightsController.GetInsights)
}
