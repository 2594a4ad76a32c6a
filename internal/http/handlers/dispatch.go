package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bekeleandu024-ui/fleet-costing-web/internal/repositories"
)

// AssignTrip writes driver and unit to the trip and forces it into
// Assigned status. Omitted (or zero) ids clear the assignment.
func AssignTrip(c *gin.Context) {
	var body struct {
		TripID   int64  `json:"tripId"`
		DriverID *int64 `json:"driverId"`
		UnitID   *int64 `json:"unitId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondInvalid(c, "invalid json: "+err.Error())
		return
	}
	if body.TripID <= 0 {
		respondInvalid(c, "tripId is required and must be a number")
		return
	}

	driverID := body.DriverID
	if driverID != nil && *driverID == 0 {
		driverID = nil
	}
	unitID := body.UnitID
	if unitID != nil && *unitID == 0 {
		unitID = nil
	}

	repo := repositories.TripRepository{}
	if err := repo.Assign(body.TripID, driverID, unitID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":       true,
		"tripId":   body.TripID,
		"driverId": driverID,
		"unitId":   unitID,
	})
}

func GetDispatchBoard(c *gin.Context) {
	repo := repositories.StatsRepository{}

	trips, err := repo.Board()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "trips": trips})
}
