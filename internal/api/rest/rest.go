package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/driftwave/release-radar/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes, all user-scoped and authenticated
	v1 := router.Group("/api/v1")
	v1.Use(middleware.Auth(authCfg))
	{
		// Tracked artist endpoints
		v1.POST("/artists", handler.CreateArtist)
		v1.GET("/artists", handler.ListArtists)
		v1.GET("/artists/:id", handler.GetArtist)
		v1.DELETE("/artists/:id", handler.DeleteArtist)
		v1.POST("/artists/:id/scan", handler.TriggerArtistScan)

		// Tracked game endpoints
		v1.POST("/games", handler.CreateGame)
		v1.GET("/games", handler.ListGames)
		v1.GET("/games/:id", handler.GetGame)
		v1.DELETE("/games/:id", handler.DeleteGame)
		v1.POST("/games/:id/scan", handler.TriggerGameScan)

		// Release feed endpoints
		v1.GET("/releases", handler.ListReleases)
		v1.DELETE("/releases/:id", handler.DismissRelease)

		// Notification settings endpoints
		v1.GET("/settings", handler.GetSettings)
		v1.PUT("/settings", handler.UpdateSettings)

		// Manual scan trigger (all of the caller's entities)
		v1.POST("/scan", handler.TriggerScan)
	}
}
