package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Environment
	Environment string

	// Database
	DatabaseURL string

	// Redis
	RedisURL string

	// Server
	Port        string
	FrontendURL string

	// Weather provider (injected, never embedded in code)
	WeatherAPIBaseURL   string
	WeatherAPIKey       string
	WeatherCacheMinutes int
	WeatherTimeoutSecs  int

	// Shot sessions
	SessionExpiryMinutes int

	// Security
	JWTSecret string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	return &Config{
		// Environment
		Environment: getEnv("APP_ENV", "development"),

		// Database
		DatabaseURL: getEnv("DATABASE_URL", "postgres://localhost:5432/windcaddy?sslmode=disable"),

		// Redis
		RedisURL: getEnv("REDIS_URL", "redis://localhost:6379/0"),

		// Server
		Port:        getEnv("APP_PORT", "8080"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),

		// Weather provider
		WeatherAPIBaseURL:   getEnv("WEATHER_API_BASE_URL", ""),
		WeatherAPIKey:       getEnv("WEATHER_API_KEY", ""),
		WeatherCacheMinutes: getEnvInt("WEATHER_CACHE_MINUTES", 10),
		WeatherTimeoutSecs:  getEnvInt("WEATHER_TIMEOUT_SECONDS", 10),

		// Shot sessions
		SessionExpiryMinutes: getEnvInt("SESSION_EXPIRY_MINUTES", 60),

		// Security
		JWTSecret: getEnv("JWT_SECRET", "change-me-in-production"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
