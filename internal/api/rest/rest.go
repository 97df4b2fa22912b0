package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/rives-io/rives-aggregator/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig, rateLimitCfg middleware.RateLimitConfig) {
	// Health check endpoint (no auth)
	router.GET("/health", handler.HealthCheck)

	// Read models (public read access, rate limited per client)
	agg := router.Group("/agg", middleware.RateLimit(rateLimitCfg))
	{
		agg.GET("/profile", handler.ListProfiles)
		agg.GET("/profile/:address", handler.GetProfileSummary)
		agg.GET("/profile/:address/console_achievements", handler.ListProfileAchievements)
		agg.GET("/profile/:address/console_achievements_summary", handler.ListProfileAchievementSummary)

		agg.GET("/cartridge/:id", handler.GetCartridge)
		agg.GET("/tape/:id", handler.GetTape)
		agg.GET("/rule/:id", handler.GetRule)
		agg.GET("/rule/:id/leaderboard", handler.ListRuleLeaderboard)
		agg.GET("/rule/:id/console_achievements", handler.ListRuleAchievements)

		agg.GET("/console_achievement", handler.ListConsoleAchievements)
		agg.GET("/console_achievement/:slug", handler.GetConsoleAchievement)
		agg.GET("/console_achievement/:slug/players", handler.ListAchievementPlayers)
		agg.GET("/console_achievement/:slug/image", handler.GetConsoleAchievementImage)

		agg.GET("/notifications/:address", handler.ListNotifications)
		agg.GET("/notifications/:address/:id", handler.FollowNotification)
	}

	// Writes (requires authentication when credentials are configured)
	aggRW := router.Group("/agg_rw", middleware.Auth(authCfg))
	{
		aggRW.PUT("/profile", handler.UpsertProfile)
		aggRW.PUT("/cartridge", handler.UpsertCartridge)
		aggRW.PUT("/collected_cartridge", handler.UpsertCollectedCartridge)
		aggRW.PUT("/tape", handler.UpsertTape)
		aggRW.PUT("/collected_tape", handler.UpsertCollectedTape)
		aggRW.PUT("/rule", handler.UpsertRule)
		aggRW.PUT("/rule/:id/console_achievement/:slug", handler.AssignConsoleAchievementToRule)
		aggRW.PUT("/console_achievement", handler.UpsertConsoleAchievement)
		aggRW.PUT("/console_achievement/:slug/image", handler.SetConsoleAchievementImage)
		aggRW.POST("/awarded_console_achievement", handler.AwardConsoleAchievement)
		aggRW.PUT("/notifications", handler.CreateNotification)
	}
}
