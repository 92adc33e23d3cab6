package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/windcaddy/backend/internal/weather"
)

// GetWeather fetches live conditions for a location through the configured
// provider. Returns 503 when no provider is configured and 502 when the
// upstream fetch fails.
func GetWeather() gin.HandlerFunc {
	return func(c *gin.Context) {
		location := c.Query("location")
		if location == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "location query parameter is required"})
			return
		}

		client := weather.Default()
		if client == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Weather provider not configured"})
			return
		}

		conditions, err := client.FetchConditions(c.Request.Context(), location)
		if err != nil {
			log.Printf("[WEATHER] Fetch failed for %s: %v", location, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch weather conditions"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"location":   location,
			"conditions": conditions,
		})
	}
}
