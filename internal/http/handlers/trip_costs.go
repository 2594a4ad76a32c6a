package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bekeleandu024-ui/fleet-costing-web/internal/services"
)

type recalcBody struct {
	TripID          int64    `json:"tripId"`
	IsManual        bool     `json:"isManual"`
	ManualTotalCost *float64 `json:"manualTotalCost"`
	ManualReason    *string  `json:"manualReason"`
}

// RecalculateTripCost triggers the costing procedure for the trip in the
// path and returns the fresh valuation. The body is optional; a missing or
// unparsable body means an automatic recalculation.
func RecalculateTripCost(c *gin.Context) {
	tripID, ok := tripIDParam(c)
	if !ok {
		return
	}

	var body recalcBody
	_ = c.ShouldBindJSON(&body)

	svc := services.CostingService{}
	latest, err := svc.Recalculate(services.RecalcInput{
		TripID:          tripID,
		IsManual:        body.IsManual,
		ManualTotalCost: body.ManualTotalCost,
		ManualReason:    body.ManualReason,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "tripId": tripID, "latestCost": latest})
}

// CreateTripCost is the body-addressed variant of the same operation,
// kept for clients still posting to /api/trip-cost.
func CreateTripCost(c *gin.Context) {
	var body recalcBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondInvalid(c, "invalid json: "+err.Error())
		return
	}

	svc := services.CostingService{}
	latest, err := svc.Recalculate(services.RecalcInput{
		TripID:          body.TripID,
		IsManual:        body.IsManual,
		ManualTotalCost: body.ManualTotalCost,
		ManualReason:    body.ManualReason,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "tripId": body.TripID, "cost": latest})
}
