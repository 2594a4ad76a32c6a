package repositories

import (
	"database/sql"

	intconfig "github.com/bekeleandu024-ui/fleet-costing-web/internal/config"
	"github.com/bekeleandu024-ui/fleet-costing-web/internal/domain"
)

// StatsRepository holds the rollup and board/tracking/report queries. They
// all share the same latest-cost selection: ROW_NUMBER over (CreatedAt
// DESC, CostID DESC) per trip, keeping rn = 1.
type StatsRepository struct {
	DB *sql.DB
}

func (r StatsRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// DashboardTotals returns the fleet-wide sums. Derived figures (rpm, cpm,
// margin) are computed by the caller from these raw totals.
func (r StatsRepository) DashboardTotals() (domain.DashboardMetrics, error) {
	var m domain.DashboardMetrics
	row := r.db().QueryRow(`
		WITH LatestCost AS (
			SELECT tc.TripID, tc.Revenue, tc.TotalCost, tc.Profit,
			       ROW_NUMBER() OVER (PARTITION BY tc.TripID ORDER BY tc.CreatedAt DESC, tc.CostID DESC) AS rn
			FROM TripCosts tc
		)
		SELECT
			COUNT(DISTINCT t.TripID),
			COUNT(DISTINCT CASE WHEN lc.rn = 1 THEN t.TripID END),
			COALESCE(SUM(t.Miles), 0),
			COALESCE(SUM(t.RequiredRevenue), 0),
			COALESCE(SUM(t.MinimumRevenue), 0),
			COALESCE(SUM(CASE WHEN lc.rn = 1 THEN lc.Revenue ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN lc.rn = 1 THEN lc.TotalCost ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN lc.rn = 1 THEN lc.Profit ELSE 0 END), 0),
			COUNT(DISTINCT CASE WHEN lc.rn = 1 AND lc.Profit > 0 THEN t.TripID END),
			COUNT(DISTINCT CASE WHEN lc.rn = 1 AND lc.Profit < 0 THEN t.TripID END)
		FROM Trips t
		LEFT JOIN LatestCost lc ON lc.TripID = t.TripID AND lc.rn = 1
		WHERE t.Miles IS NOT NULL
	`)
	err := row.Scan(
		&m.TotalTrips,
		&m.TripsWithCost,
		&m.TotalMiles,
		&m.TotalRequiredRev,
		&m.TotalMinRev,
		&m.TotalRevenue,
		&m.TotalCost,
		&m.TotalProfit,
		&m.ProfitableTrips,
		&m.AtRiskTrips,
	)
	return m, err
}

// AggregatesByDriverType rolls up latest-cost figures per driver type,
// richest groups first. Trips without mileage or a typed driver are out.
func (r StatsRepository) AggregatesByDriverType() ([]domain.DriverTypeAggregate, error) {
	rows, err := r.db().Query(`
		WITH LatestCost AS (
			SELECT tc.TripID, tc.Revenue, tc.TotalCost, tc.Profit,
			       ROW_NUMBER() OVER (PARTITION BY tc.TripID ORDER BY tc.CreatedAt DESC, tc.CostID DESC) AS rn
			FROM TripCosts tc
		)
		SELECT
			d.Type,
			COUNT(DISTINCT t.TripID) AS Trips,
			COALESCE(SUM(t.Miles), 0) AS Miles,
			COALESCE(SUM(CASE WHEN lc.rn = 1 THEN lc.Revenue ELSE 0 END), 0) AS Revenue,
			COALESCE(SUM(CASE WHEN lc.rn = 1 THEN lc.TotalCost ELSE 0 END), 0) AS Cost,
			COALESCE(SUM(CASE WHEN lc.rn = 1 THEN lc.Profit ELSE 0 END), 0) AS Profit
		FROM Trips t
		LEFT JOIN Drivers d ON d.DriverID = t.DriverID
		LEFT JOIN LatestCost lc ON lc.TripID = t.TripID AND lc.rn = 1
		WHERE t.Miles IS NOT NULL
		  AND d.Type IS NOT NULL
		GROUP BY d.Type
		ORDER BY Revenue DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.DriverTypeAggregate{}
	for rows.Next() {
		var a domain.DriverTypeAggregate
		if err := rows.Scan(&a.DriverType, &a.Trips, &a.Miles, &a.Revenue, &a.Cost, &a.Profit); err != nil {
			return nil, err
		}
		a.MarginPct = domain.MarginPct(a.Revenue, a.Profit)
		out = append(out, a)
	}
	return out, rows.Err()
}

// AggregatesByCustomer mirrors the driver-type rollup keyed on the order
// customer, truncated to the 20 biggest by revenue.
func (r StatsRepository) AggregatesByCustomer() ([]domain.CustomerAggregate, error) {
	rows, err := r.db().Query(`
		WITH LatestCost AS (
			SELECT tc.TripID, tc.Revenue, tc.TotalCost, tc.Profit,
			       ROW_NUMBER() OVER (PARTITION BY tc.TripID ORDER BY tc.CreatedAt DESC, tc.CostID DESC) AS rn
			FROM TripCosts tc
		)
		SELECT
			o.Customer,
			COUNT(DISTINCT t.TripID) AS Trips,
			COALESCE(SUM(t.Miles), 0) AS Miles,
			COALESCE(SUM(CASE WHEN lc.rn = 1 THEN lc.Revenue ELSE 0 END), 0) AS Revenue,
			COALESCE(SUM(CASE WHEN lc.rn = 1 THEN lc.TotalCost ELSE 0 END), 0) AS Cost,
			COALESCE(SUM(CASE WHEN lc.rn = 1 THEN lc.Profit ELSE 0 END), 0) AS Profit
		FROM Trips t
		LEFT JOIN Orders o ON o.OrderID = t.PrimaryOrderID
		LEFT JOIN LatestCost lc ON lc.TripID = t.TripID AND lc.rn = 1
		WHERE t.Miles IS NOT NULL
		  AND o.Customer IS NOT NULL
		GROUP BY o.Customer
		ORDER BY Revenue DESC
		LIMIT 20
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.CustomerAggregate{}
	for rows.Next() {
		var a domain.CustomerAggregate
		if err := rows.Scan(&a.CustomerName, &a.Trips, &a.Miles, &a.Revenue, &a.Cost, &a.Profit); err != nil {
			return nil, err
		}
		a.MarginPct = domain.MarginPct(a.Revenue, a.Profit)
		out = append(out, a)
	}
	return out, rows.Err()
}

// Board returns every non-cancelled trip with latest cost figures for the
// dispatch board.
func (r StatsRepository) Board() ([]domain.BoardRow, error) {
	rows, err := r.db().Query(`
		WITH LatestCost AS (
			SELECT tc.TripID, tc.Revenue, tc.TotalCost, tc.Profit,
			       ROW_NUMBER() OVER (PARTITION BY tc.TripID ORDER BY tc.CreatedAt DESC, tc.CostID DESC) AS rn
			FROM TripCosts tc
		)
		SELECT
			t.TripID, t.Status, t.Miles,
			d.DriverID, d.Name, d.Type,
			u.UnitID, u.UnitNumber,
			o.Customer, o.Origin, o.Destination,
			lc.Revenue, lc.TotalCost, lc.Profit
		FROM Trips t
		LEFT JOIN Drivers d ON d.DriverID = t.DriverID
		LEFT JOIN Units u ON u.UnitID = t.UnitID
		LEFT JOIN Orders o ON o.OrderID = t.PrimaryOrderID
		LEFT JOIN LatestCost lc ON lc.TripID = t.TripID AND lc.rn = 1
		WHERE t.Miles IS NOT NULL
		  AND t.Status NOT IN ('Cancelled')
		ORDER BY t.TripID DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.BoardRow{}
	for rows.Next() {
		var b domain.BoardRow
		var status *string
		if err := rows.Scan(
			&b.TripID, &status, &b.Miles,
			&b.DriverID, &b.DriverName, &b.DriverType,
			&b.UnitID, &b.UnitNumber,
			&b.CustomerName, &b.Origin, &b.Destination,
			&b.Revenue, &b.TotalCost, &b.Profit,
		); err != nil {
			return nil, err
		}
		b.Status = "Unassigned"
		if status != nil {
			b.Status = *status
		}
		b.MarginPct = domain.MarginPctOrNil(b.Revenue, b.Profit)
		out = append(out, b)
	}
	return out, rows.Err()
}

// ActiveTrips returns trips still in flight with their last known event.
func (r StatsRepository) ActiveTrips() ([]domain.TrackingRow, error) {
	rows, err := r.db().Query(`
		WITH LatestCost AS (
			SELECT tc.TripID, tc.Revenue,
			       ROW_NUMBER() OVER (PARTITION BY tc.TripID ORDER BY tc.CreatedAt DESC, tc.CostID DESC) AS rn
			FROM TripCosts tc
		),
		LastEvent AS (
			SELECT te.TripID, te.EventType, te.EventTime,
			       ROW_NUMBER() OVER (PARTITION BY te.TripID ORDER BY te.EventTime DESC, te.TripEventID DESC) AS rn
			FROM TripEvents te
		)
		SELECT
			t.TripID, t.Status, t.Miles,
			d.Name, u.UnitNumber,
			o.Customer, o.Origin, o.Destination,
			lc.Revenue,
			le.EventType, le.EventTime
		FROM Trips t
		LEFT JOIN Drivers d ON d.DriverID = t.DriverID
		LEFT JOIN Units u ON u.UnitID = t.UnitID
		LEFT JOIN Orders o ON o.OrderID = t.PrimaryOrderID
		LEFT JOIN LatestCost lc ON lc.TripID = t.TripID AND lc.rn = 1
		LEFT JOIN LastEvent le ON le.TripID = t.TripID AND le.rn = 1
		WHERE t.Miles IS NOT NULL
		  AND t.Status NOT IN ('Completed', 'Cancelled')
		ORDER BY t.TripID DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.TrackingRow{}
	for rows.Next() {
		var tr domain.TrackingRow
		if err := rows.Scan(
			&tr.TripID, &tr.Status, &tr.Miles,
			&tr.DriverName, &tr.UnitNumber,
			&tr.CustomerName, &tr.Origin, &tr.Destination,
			&tr.Revenue,
			&tr.LastEventType, &tr.LastEventTime,
		); err != nil {
			return nil, err
		}
		out = append(out, tr)
	}
	return out, rows.Err()
}

// ReportTrips returns the latest 200 trips with cost figures for the
// profitability report. Money figures default to 0 when uncosted; the
// margin stays null without positive revenue.
func (r StatsRepository) ReportTrips() ([]domain.ReportRow, error) {
	rows, err := r.db().Query(`
		WITH LatestCost AS (
			SELECT tc.TripID, tc.Revenue, tc.TotalCost, tc.Profit, tc.TotalCPM,
			       ROW_NUMBER() OVER (PARTITION BY tc.TripID ORDER BY tc.CreatedAt DESC, tc.CostID DESC) AS rn
			FROM TripCosts tc
		)
		SELECT
			t.TripID, t.WeekStart, t.Status, t.Miles,
			d.Name, d.Type,
			u.UnitNumber,
			o.Customer, o.Origin, o.Destination,
			lc.Revenue, lc.TotalCost, lc.Profit, lc.TotalCPM
		FROM Trips t
		LEFT JOIN Drivers d ON d.DriverID = t.DriverID
		LEFT JOIN Units u ON u.UnitID = t.UnitID
		LEFT JOIN Orders o ON o.OrderID = t.PrimaryOrderID
		LEFT JOIN LatestCost lc ON lc.TripID = t.TripID AND lc.rn = 1
		WHERE t.Miles IS NOT NULL
		ORDER BY t.TripID DESC
		LIMIT 200
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.ReportRow{}
	for rows.Next() {
		var rep domain.ReportRow
		var revenue, totalCost, profit, totalCPM *float64
		if err := rows.Scan(
			&rep.TripID, &rep.WeekStart, &rep.Status, &rep.Miles,
			&rep.DriverName, &rep.DriverType,
			&rep.UnitNumber,
			&rep.CustomerName, &rep.Origin, &rep.Destination,
			&revenue, &totalCost, &profit, &totalCPM,
		); err != nil {
			return nil, err
		}
		rep.Revenue = deref(revenue)
		rep.TotalCost = deref(totalCost)
		rep.Profit = deref(profit)
		rep.TotalCPM = deref(totalCPM)
		rep.MarginPct = domain.MarginPctOrNil(revenue, profit)
		out = append(out, rep)
	}
	return out, rows.Err()
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
