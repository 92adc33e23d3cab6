package handlers

import (
	"database/sql"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/windcaddy/backend/internal/admin"
	"github.com/windcaddy/backend/internal/clubs"
	"github.com/windcaddy/backend/internal/models"
)

// ListClubs returns the full club table, longest carry first.
func ListClubs(db *sqlx.DB) gin.HandlerFunc {
	repo := clubs.NewRepo(db)
	return func(c *gin.Context) {
		list, err := repo.List()
		if err != nil {
			log.Printf("[CLUBS] Failed to list clubs: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load clubs"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"clubs": list})
	}
}

// GetClub returns a single club profile by name.
func GetClub(db *sqlx.DB) gin.HandlerFunc {
	repo := clubs.NewRepo(db)
	return func(c *gin.Context) {
		club, err := repo.GetByName(c.Param("name"))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Club not found"})
				return
			}
			log.Printf("[CLUBS] Failed to load club %s: %v", c.Param("name"), err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load club"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"club": club})
	}
}

// UpsertClubRequest is the admin payload for creating or replacing a club
// profile. The URL name wins over any name in the body.
type UpsertClubRequest struct {
	BallSpeed     float64 `json:"ball_speed"`
	SpinRate      float64 `json:"spin_rate"`
	LaunchAngle   float64 `json:"launch_angle"`
	ApexHeight    float64 `json:"apex_height"`
	LandingAngle  float64 `json:"landing_angle"`
	CarryDistance float64 `json:"carry_distance"`
}

// UpsertClub creates or updates a club profile. JWT-guarded; every call is
// written to the admin audit log.
func UpsertClub(db *sqlx.DB) gin.HandlerFunc {
	repo := clubs.NewRepo(db)
	return func(c *gin.Context) {
		name := c.Param("name")
		adminUsername := c.GetString("admin_username")

		var req UpsertClubRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		club := models.Club{
			Name:          name,
			BallSpeed:     req.BallSpeed,
			SpinRate:      req.SpinRate,
			LaunchAngle:   req.LaunchAngle,
			ApexHeight:    req.ApexHeight,
			LandingAngle:  req.LandingAngle,
			CarryDistance: req.CarryDistance,
		}

		if err := repo.Upsert(club); err != nil {
			log.Printf("[CLUBS] Upsert failed for %s by %s: %v", name, adminUsername, err)
			admin.LogAdminAction(db, adminUsername, c.ClientIP(), c.FullPath(), "upsert_club", map[string]interface{}{
				"club":  name,
				"error": err.Error(),
			}, false)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		admin.LogAdminAction(db, adminUsername, c.ClientIP(), c.FullPath(), "upsert_club", map[string]interface{}{
			"club":           name,
			"carry_distance": req.CarryDistance,
		}, true)

		c.JSON(http.StatusOK, gin.H{
			"message": "Club saved",
			"club":    club,
		})
	}
}

// ListAdminAudit returns recent admin actions, newest first. JWT-guarded.
func ListAdminAudit(db *sqlx.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

		entries, err := admin.RecentAuditEntries(db, limit)
		if err != nil {
			log.Printf("[ADMIN] Failed to read audit log: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read audit log"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"audit": entries})
	}
}
