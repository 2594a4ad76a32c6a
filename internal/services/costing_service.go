package services

import (
	"math"

	"github.com/bekeleandu024-ui/fleet-costing-web/internal/domain"
	"github.com/bekeleandu024-ui/fleet-costing-web/internal/repositories"
)

// CostingService triggers the external recalculation procedure and reads
// back the freshly persisted valuation. Two concurrent recalculations for
// the same trip may race; the resolver's (CreatedAt, CostID) ordering
// decides which one wins, which is the accepted behavior.
type CostingService struct {
	Costs repositories.TripCostRepository
}

type RecalcInput struct {
	TripID          int64
	IsManual        bool
	ManualTotalCost *float64
	ManualReason    *string
}

// Recalculate validates, invokes usp_RecalculateTripCost, then resolves the
// latest cost row for the trip. Validation failures happen before any
// database write. The returned cost may be nil when the procedure produced
// no row for an unknown trip.
func (s CostingService) Recalculate(in RecalcInput) (*domain.TripCost, error) {
	if in.TripID <= 0 {
		return nil, domain.ValidationError{Field: "tripId", Msg: "is required and must be a number"}
	}
	if in.IsManual {
		if in.ManualTotalCost == nil || math.IsNaN(*in.ManualTotalCost) || math.IsInf(*in.ManualTotalCost, 0) {
			return nil, domain.ValidationError{Field: "manualTotalCost", Msg: "is required when isManual = true"}
		}
	}

	var manualCost *float64
	if in.IsManual {
		manualCost = in.ManualTotalCost
	}

	if err := s.Costs.Recalculate(in.TripID, in.IsManual, manualCost, in.ManualReason); err != nil {
		return nil, err
	}
	return s.Costs.LatestByTripID(in.TripID)
}
