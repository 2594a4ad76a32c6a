package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bekeleandu024-ui/fleet-costing-web/internal/domain"
	"github.com/bekeleandu024-ui/fleet-costing-web/internal/repositories"
)

// GetDashboard returns the fleet-wide rollup plus the derived rate and
// margin figures.
func GetDashboard(c *gin.Context) {
	repo := repositories.StatsRepository{}

	metrics, err := repo.DashboardTotals()
	if err != nil {
		respondError(c, err)
		return
	}

	metrics.RPM = domain.RatePerMile(metrics.TotalRevenue, metrics.TotalMiles)
	metrics.CPM = domain.RatePerMile(metrics.TotalCost, metrics.TotalMiles)
	metrics.MarginPct = domain.MarginPct(metrics.TotalRevenue, metrics.TotalProfit)

	c.JSON(http.StatusOK, gin.H{"ok": true, "metrics": metrics})
}
