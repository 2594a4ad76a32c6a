package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bekeleandu024-ui/fleet-costing-web/internal/repositories"
)

func GetTripEvents(c *gin.Context) {
	tripID, ok := tripIDParam(c)
	if !ok {
		return
	}

	repo := repositories.TripEventRepository{}
	events, err := repo.ListByTripID(tripID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "events": events})
}

// CreateTripEvent appends a timeline entry. EventTime defaults to now.
func CreateTripEvent(c *gin.Context) {
	tripID, ok := tripIDParam(c)
	if !ok {
		return
	}

	var body struct {
		EventType string     `json:"eventType"`
		City      *string    `json:"city"`
		State     *string    `json:"state"`
		Note      *string    `json:"note"`
		EventTime *time.Time `json:"eventTime"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondInvalid(c, "invalid json: "+err.Error())
		return
	}
	if body.EventType == "" {
		respondInvalid(c, "eventType is required")
		return
	}

	eventTime := time.Now()
	if body.EventTime != nil {
		eventTime = *body.EventTime
	}

	repo := repositories.TripEventRepository{}
	event, err := repo.Insert(tripID, body.EventType, eventTime, body.City, body.State, body.Note)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "event": event})
}
