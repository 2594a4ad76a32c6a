package repositories

import (
	"database/sql"

	intconfig "github.com/bekeleandu024-ui/fleet-costing-web/internal/config"
	"github.com/bekeleandu024-ui/fleet-costing-web/internal/domain"
)

type TripCostRepository struct {
	DB *sql.DB
}

func (r TripCostRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// LatestByTripID resolves the current valuation for a trip: the cost row
// with the highest CreatedAt, CostID as tiebreak. A trip with no cost rows
// is a valid state and yields (nil, nil).
func (r TripCostRepository) LatestByTripID(tripID int64) (*domain.TripCost, error) {
	row := r.db().QueryRow(`
		SELECT CostID, TripID, Miles, TotalCPM, TotalCost, Revenue, Profit,
		       IsManual, ManualTotalCost, ManualReason, CreatedAt,
		       WageMultiplier, AccessorialCost
		FROM TripCosts
		WHERE TripID = ?
		ORDER BY CreatedAt DESC, CostID DESC
		LIMIT 1
	`, tripID)

	var c domain.TripCost
	err := row.Scan(
		&c.CostID,
		&c.TripID,
		&c.Miles,
		&c.TotalCPM,
		&c.TotalCost,
		&c.Revenue,
		&c.Profit,
		&c.IsManual,
		&c.ManualTotalCost,
		&c.ManualReason,
		&c.CreatedAt,
		&c.WageMultiplier,
		&c.AccessorialCost,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Recalculate invokes the external costing procedure. The procedure reads
// current trip/order state and appends a new TripCosts row; its formula is
// opaque to this application.
func (r TripCostRepository) Recalculate(tripID int64, isManual bool, manualTotalCost *float64, manualReason *string) error {
	_, err := r.db().Exec(
		`CALL usp_RecalculateTripCost(?, ?, ?, ?)`,
		tripID, isManual, manualTotalCost, manualReason,
	)
	return err
}
