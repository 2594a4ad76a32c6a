package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bekeleandu024-ui/fleet-costing-web/internal/repositories"
	"github.com/bekeleandu024-ui/fleet-costing-web/internal/services"
)

// GetTrips returns the latest 50 trips with joined reference data and the
// current cost snapshot.
func GetTrips(c *gin.Context) {
	repo := repositories.TripRepository{}

	trips, err := repo.List()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":       true,
		"rowCount": len(trips),
		"trips":    trips,
	})
}

func GetTripByID(c *gin.Context) {
	tripID, ok := tripIDParam(c)
	if !ok {
		return
	}

	repo := repositories.TripRepository{}
	trip, err := repo.GetByID(tripID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "trip": trip})
}

// UpdateTrip applies a sparse patch: only keys present in the body are
// written, and present-but-null driverId/unitId clears the reference.
func UpdateTrip(c *gin.Context) {
	tripID, ok := tripIDParam(c)
	if !ok {
		return
	}

	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respondInvalid(c, "unable to read body")
		return
	}

	patch, err := services.BuildTripPatch(raw)
	if err != nil {
		respondError(c, err)
		return
	}

	svc := services.TripService{}
	if err := svc.Update(tripID, patch); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "tripId": tripID})
}

func UpdateTripStatus(c *gin.Context) {
	tripID, ok := tripIDParam(c)
	if !ok {
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Status == "" {
		respondInvalid(c, "status is required")
		return
	}

	repo := repositories.TripRepository{}
	if err := repo.UpdateStatus(tripID, body.Status); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "tripId": tripID, "status": body.Status})
}

// CompleteTrip records a Completed event and then flips the trip status.
// The writes are independent; an error after the event insert still leaves
// the event recorded.
func CompleteTrip(c *gin.Context) {
	tripID, ok := tripIDParam(c)
	if !ok {
		return
	}

	svc := services.TripService{}
	event, err := svc.Complete(tripID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":     true,
		"tripId": tripID,
		"status": "Completed",
		"event":  event,
	})
}
