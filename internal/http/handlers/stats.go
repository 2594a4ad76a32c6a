package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bekeleandu024-ui/fleet-costing-web/internal/repositories"
)

// GetCostingStats returns latest-cost rollups grouped by driver type and
// by customer (top 20 by revenue).
func GetCostingStats(c *gin.Context) {
	repo := repositories.StatsRepository{}

	byDriverType, err := repo.AggregatesByDriverType()
	if err != nil {
		respondError(c, err)
		return
	}

	byCustomer, err := repo.AggregatesByCustomer()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":                     true,
		"aggregatesByDriverType": byDriverType,
		"aggregatesByCustomer":   byCustomer,
	})
}
