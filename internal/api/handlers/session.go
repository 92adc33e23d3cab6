package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/windcaddy/backend/internal/session"
)

// CreateShotSession mints a new shot session with default parameters and
// standard conditions, returning its token. The client connects to the
// session's websocket with the token to drive recomputes.
func CreateShotSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := generateSessionToken()
		s := session.Manager.Create(token)

		snapshot, err := s.Recompute(nil)
		if err != nil {
			log.Printf("[SESSION] Initial recompute failed for %s: %v", token, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
			return
		}

		if err := session.Manager.SaveToRedis(s); err != nil {
			log.Printf("[SESSION] Failed to persist session %s: %v", token, err)
		}

		c.JSON(http.StatusCreated, gin.H{
			"session_token": token,
			"snapshot":      snapshot,
		})
	}
}

// GetShotSession returns the current snapshot for an existing session.
func GetShotSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Param("token")

		s, err := session.Manager.GetByToken(token)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}

		club, err := session.Manager.ResolveClub(s)
		if err != nil {
			log.Printf("[SESSION] Club lookup failed for %s: %v", token, err)
			club = nil
		}

		snapshot, err := s.Recompute(club)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute snapshot"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"snapshot": snapshot})
	}
}
