package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bekeleandu024-ui/fleet-costing-web/internal/repositories"
)

func GetDrivers(c *gin.Context) {
	repo := repositories.FleetRepository{}

	drivers, err := repo.ListDrivers()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":       true,
		"rowCount": len(drivers),
		"drivers":  drivers,
	})
}

func GetUnits(c *gin.Context) {
	repo := repositories.FleetRepository{}

	units, err := repo.ListUnits()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":       true,
		"rowCount": len(units),
		"units":    units,
	})
}
