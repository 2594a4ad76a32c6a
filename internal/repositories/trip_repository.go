package repositories

import (
	"database/sql"
	"fmt"
	"strings"

	intconfig "github.com/bekeleandu024-ui/fleet-costing-web/internal/config"
	"github.com/bekeleandu024-ui/fleet-costing-web/internal/domain"
)

type TripRepository struct {
	DB *sql.DB
}

func (r TripRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// TripPatch is a sparse set of trip fields. The Set flags distinguish
// "write NULL" from "leave untouched" for the nullable references.
type TripPatch struct {
	Status      *string
	DriverID    *int64
	DriverIDSet bool
	UnitID      *int64
	UnitIDSet   bool
}

func (p TripPatch) Empty() bool {
	return p.Status == nil && !p.DriverIDSet && !p.UnitIDSet
}

// List returns the latest 50 trips with driver, unit, order, order
// customer, and latest cost joined in. Trips without mileage are test rows
// and are skipped.
func (r TripRepository) List() ([]domain.TripRow, error) {
	rows, err := r.db().Query(`
		WITH LatestCost AS (
			SELECT tc.TripID, tc.CostID, tc.TotalCPM, tc.TotalCost, tc.Revenue,
			       tc.Profit, tc.IsManual, tc.ManualTotalCost, tc.ManualReason, tc.CreatedAt,
			       ROW_NUMBER() OVER (PARTITION BY tc.TripID ORDER BY tc.CreatedAt DESC, tc.CostID DESC) AS rn
			FROM TripCosts tc
		)
		SELECT
			t.TripID, t.RawTripId, t.Status, t.WeekStart, t.Miles,
			t.BorderCrossings, t.DropHookCount, t.PickupCount, t.DeliveryCount,
			t.MinimumRevenue, t.RequiredRevenue,
			d.DriverID, d.Name, d.Type,
			u.UnitID, u.UnitNumber,
			o.OrderID, o.Origin, o.Destination, o.Miles, o.Revenue, o.Status,
			c.CustomerID, c.CustomerCode, c.Name,
			lc.CostID, lc.TotalCPM, lc.TotalCost, lc.Revenue, lc.Profit,
			lc.IsManual, lc.ManualTotalCost, lc.ManualReason, lc.CreatedAt
		FROM Trips t
		LEFT JOIN Drivers d ON d.DriverID = t.DriverID
		LEFT JOIN Units u ON u.UnitID = t.UnitID
		LEFT JOIN Orders o ON o.OrderID = t.OrderID
		LEFT JOIN Customers c ON c.CustomerID = o.CustomerID
		LEFT JOIN LatestCost lc ON lc.TripID = t.TripID AND lc.rn = 1
		WHERE t.Miles IS NOT NULL
		ORDER BY t.TripID DESC
		LIMIT 50
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.TripRow{}
	for rows.Next() {
		var t domain.TripRow
		if err := rows.Scan(
			&t.TripID, &t.RawTripID, &t.TripStatus, &t.WeekStart, &t.Miles,
			&t.BorderCrossings, &t.DropHookCount, &t.PickupCount, &t.DeliveryCount,
			&t.MinimumRevenue, &t.RequiredRevenue,
			&t.DriverID, &t.DriverName, &t.DriverType,
			&t.UnitID, &t.UnitNumber,
			&t.OrderID, &t.Origin, &t.Destination, &t.OrderMiles, &t.OrderRevenue, &t.OrderStatus,
			&t.CustomerID, &t.CustomerCode, &t.CustomerName,
			&t.CostID, &t.TotalCPM, &t.TotalCost, &t.CostRevenue, &t.Profit,
			&t.IsManual, &t.ManualTotalCost, &t.ManualReason, &t.CostCreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// GetByID returns the trip detail joined with its primary order and latest
// cost. Unlike the listing, a NULL-mileage trip is still addressable here.
func (r TripRepository) GetByID(tripID int64) (*domain.TripDetail, error) {
	row := r.db().QueryRow(`
		WITH LatestCost AS (
			SELECT tc.TripID, tc.CostID, tc.TotalCPM, tc.TotalCost, tc.Revenue,
			       tc.Profit, tc.IsManual, tc.ManualTotalCost, tc.ManualReason, tc.CreatedAt,
			       tc.WageMultiplier, tc.AccessorialCost,
			       ROW_NUMBER() OVER (PARTITION BY tc.TripID ORDER BY tc.CreatedAt DESC, tc.CostID DESC) AS rn
			FROM TripCosts tc
		)
		SELECT
			t.TripID, t.RawTripId, t.WeekStart, t.Miles,
			t.BorderCrossings, t.DropHookCount, t.PickupCount, t.DeliveryCount,
			t.MinimumRevenue, t.RequiredRevenue, t.Status, t.PrimaryOrderID,
			d.DriverID, d.Name, d.Type,
			u.UnitID, u.UnitNumber,
			o.OrderID, o.Customer, o.Origin, o.Destination, o.Revenue,
			lc.CostID, lc.TotalCPM, lc.TotalCost, lc.Revenue, lc.Profit,
			lc.IsManual, lc.ManualTotalCost, lc.ManualReason, lc.CreatedAt,
			lc.WageMultiplier, lc.AccessorialCost
		FROM Trips t
		LEFT JOIN Drivers d ON d.DriverID = t.DriverID
		LEFT JOIN Units u ON u.UnitID = t.UnitID
		LEFT JOIN Orders o ON o.OrderID = t.PrimaryOrderID
		LEFT JOIN LatestCost lc ON lc.TripID = t.TripID AND lc.rn = 1
		WHERE t.TripID = ?
	`, tripID)

	var t domain.TripDetail
	err := row.Scan(
		&t.TripID, &t.RawTripID, &t.WeekStart, &t.Miles,
		&t.BorderCrossings, &t.DropHookCount, &t.PickupCount, &t.DeliveryCount,
		&t.MinimumRevenue, &t.RequiredRevenue, &t.Status, &t.PrimaryOrderID,
		&t.DriverID, &t.DriverName, &t.DriverType,
		&t.UnitID, &t.UnitNumber,
		&t.OrderID, &t.CustomerName, &t.Origin, &t.Destination, &t.OrderRevenue,
		&t.CostID, &t.TotalCPM, &t.TotalCost, &t.CostRevenue, &t.Profit,
		&t.IsManual, &t.ManualTotalCost, &t.ManualReason, &t.CostCreatedAt,
		&t.WageMultiplier, &t.AccessorialCost,
	)
	if err == sql.ErrNoRows {
		return nil, domain.NotFoundError{Resource: "trip"}
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateFields writes only the supplied fields in a single UPDATE.
func (r TripRepository) UpdateFields(tripID int64, patch TripPatch) error {
	if patch.Empty() {
		return domain.ValidationError{Msg: "no fields to update"}
	}

	sets := []string{}
	args := []any{}
	if patch.Status != nil {
		sets = append(sets, "Status = ?")
		args = append(args, *patch.Status)
	}
	if patch.DriverIDSet {
		sets = append(sets, "DriverID = ?")
		args = append(args, patch.DriverID)
	}
	if patch.UnitIDSet {
		sets = append(sets, "UnitID = ?")
		args = append(args, patch.UnitID)
	}
	args = append(args, tripID)

	query := fmt.Sprintf(`UPDATE Trips SET %s WHERE TripID = ?`, strings.Join(sets, ", "))
	_, err := r.db().Exec(query, args...)
	return err
}

// Assign writes driver and unit (NULL when omitted) and forces the trip
// into Assigned status, all in one statement.
func (r TripRepository) Assign(tripID int64, driverID, unitID *int64) error {
	_, err := r.db().Exec(
		`UPDATE Trips SET DriverID = ?, UnitID = ?, Status = ? WHERE TripID = ?`,
		driverID, unitID, "Assigned", tripID,
	)
	return err
}

func (r TripRepository) UpdateStatus(tripID int64, status string) error {
	_, err := r.db().Exec(
		`UPDATE Trips SET Status = ? WHERE TripID = ?`,
		status, tripID,
	)
	return err
}
