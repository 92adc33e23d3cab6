package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/windcaddy/backend/internal/api"
	"github.com/windcaddy/backend/internal/config"
	"github.com/windcaddy/backend/internal/database"
	"github.com/windcaddy/backend/internal/migrations"
	"github.com/windcaddy/backend/internal/redis"
	"github.com/windcaddy/backend/internal/session"
	"github.com/windcaddy/backend/internal/weather"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run migrations on start if requested
	if os.Getenv("MIGRATE_ON_START") == "true" {
		log.Println("↗ Running DB migrations on startup...")
		if err := migrations.RunMigrations(cfg.DatabaseURL); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	}

	// Initialize Redis
	rdb, err := redis.Connect(cfg.RedisURL)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer rdb.Close()

	// Initialize shot session manager with Redis and config
	session.InitializeManager(db, rdb, cfg)

	// Initialize weather provider client (if configured)
	if cfg.WeatherAPIBaseURL != "" && cfg.WeatherAPIKey != "" {
		weatherClient := weather.NewClient(cfg, rdb)
		if weatherClient != nil {
			weather.SetDefault(weatherClient)
			log.Printf("[WEATHER] Weather client initialized (base=%s)", cfg.WeatherAPIBaseURL)
		}
	} else {
		log.Printf("[WEATHER] Weather provider not configured (WEATHER_API_BASE_URL/WEATHER_API_KEY missing)")
	}

	// Set up Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Initialize API handlers
	api.SetupRoutes(router, db, rdb, cfg)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting WindCaddy server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
