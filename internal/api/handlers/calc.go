package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/windcaddy/backend/internal/clubs"
	"github.com/windcaddy/backend/internal/physics"
)

// Stateless formula endpoints. Each binds a typed JSON body, runs one physics
// calculation and returns the result; invalid inputs come back as 400.

// WindEffectRequest carries the inputs for a wind decomposition.
type WindEffectRequest struct {
	WindSpeed     float64 `json:"wind_speed"`
	WindDirection float64 `json:"wind_direction"`
	ShotDistance  float64 `json:"shot_distance"`
	ShotHeight    float64 `json:"shot_height"`
}

func CalcWindEffect() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req WindEffectRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		effect, err := physics.CalculateWindEffect(req.WindSpeed, req.WindDirection, req.ShotDistance, req.ShotHeight)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"distance_effect": effect.Distance,
			"lateral_effect":  effect.Lateral,
		})
	}
}

type EffectiveWindRequest struct {
	WindSpeed float64 `json:"wind_speed"`
	Altitude  float64 `json:"altitude"`
}

func CalcEffectiveWind() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req EffectiveWindRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"effective_wind_speed": physics.CalculateEffectiveWindSpeed(req.WindSpeed, req.Altitude),
		})
	}
}

type AirDensityRequest struct {
	Temperature float64 `json:"temperature"`
	Pressure    float64 `json:"pressure"`
}

func CalcAirDensity() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AirDensityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		density, err := physics.CalculateAirDensity(req.Temperature, req.Pressure)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"air_density": density})
	}
}

type DewPointRequest struct {
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
}

func CalcDewPoint() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req DewPointRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		dewPoint, err := physics.CalculateDewPoint(req.Temperature, req.Humidity)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"dew_point": dewPoint})
	}
}

type CompressionRequest struct {
	Temperature float64 `json:"temperature"`
}

func CalcCompression() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CompressionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"compression_factor": physics.CalculateBallCompression(req.Temperature),
		})
	}
}

// AdjustmentsRequest names a stored club and supplies the conditions. The
// ball record is optional; when omitted the club's nominal stock shot is used.
type AdjustmentsRequest struct {
	ClubName   string             `json:"club_name" binding:"required"`
	Conditions physics.Conditions `json:"conditions"`
	Ball       *physics.BallData  `json:"ball,omitempty"`
}

func CalcAdjustments(db *sqlx.DB) gin.HandlerFunc {
	repo := clubs.NewRepo(db)
	return func(c *gin.Context) {
		var req AdjustmentsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		club, err := repo.GetByName(req.ClubName)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Club not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load club"})
			return
		}

		ball := clubs.NominalBall(*club)
		if req.Ball != nil {
			ball = *req.Ball
		}

		adj, err := physics.CalculateBallFlightAdjustments(req.Conditions, ball, clubs.ToClubData(*club))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"club":        club.Name,
			"adjustments": adj,
		})
	}
}
