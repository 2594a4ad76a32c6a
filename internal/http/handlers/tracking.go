package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bekeleandu024-ui/fleet-costing-web/internal/repositories"
)

// GetActiveTrips lists trips that are neither Completed nor Cancelled,
// each with its last known timeline event.
func GetActiveTrips(c *gin.Context) {
	repo := repositories.StatsRepository{}

	trips, err := repo.ActiveTrips()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "trips": trips})
}
