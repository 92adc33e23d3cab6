package api

import (
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/windcaddy/backend/internal/api/handlers"
	"github.com/windcaddy/backend/internal/config"
	"github.com/windcaddy/backend/internal/middleware"
	"github.com/windcaddy/backend/internal/ws"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, db *sqlx.DB, rdb *redis.Client, cfg *config.Config) {
	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.WebSocketCORSCheck(cfg))

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", handlers.HealthCheck)

		// Stateless formula endpoints
		calc := v1.Group("/calc")
		{
			calc.POST("/wind-effect", handlers.CalcWindEffect())
			calc.POST("/effective-wind", handlers.CalcEffectiveWind())
			calc.POST("/air-density", handlers.CalcAirDensity())
			calc.POST("/dew-point", handlers.CalcDewPoint())
			calc.POST("/compression", handlers.CalcCompression())
			calc.POST("/adjustments", handlers.CalcAdjustments(db))
		}

		// Club table (read-only)
		v1.GET("/clubs", handlers.ListClubs(db))
		v1.GET("/clubs/:name", handlers.GetClub(db))

		// Weather collaborator
		v1.GET("/weather", handlers.GetWeather())

		// Interactive shot sessions
		shot := v1.Group("/shot")
		{
			shot.POST("/session", handlers.CreateShotSession())
			shot.GET("/:token", handlers.GetShotSession())
			shot.GET("/:token/ws", ws.HandleWebSocket)
		}

		// Admin: club management behind JWT
		adminGroup := v1.Group("/admin")
		{
			adminGroup.POST("/login", handlers.AdminLogin(db, cfg))

			protected := adminGroup.Group("")
			protected.Use(handlers.AdminAuthMiddleware(cfg))
			{
				protected.PUT("/clubs/:name", handlers.UpsertClub(db))
				protected.GET("/audit", handlers.ListAdminAudit(db))
			}
		}
	}
}
