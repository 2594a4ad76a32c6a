package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestDashboardTotalsScansRollup(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	cols := []string{
		"TotalTrips", "TripsWithCost", "TotalMiles", "TotalRequiredRev", "TotalMinRev",
		"TotalRevenue", "TotalCost", "TotalProfit", "ProfitableTrips", "AtRiskTrips",
	}
	mock.ExpectQuery(`WHERE t.Miles IS NOT NULL`).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(10, 7, 4400, 12000.0, 9000.0, 15000.0, 11000.0, 4000.0, 6, 1))

	repo := StatsRepository{DB: db}
	m, err := repo.DashboardTotals()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if m.TotalTrips != 10 || m.TripsWithCost != 7 {
		t.Fatalf("trip counts wrong: %+v", m)
	}
	if m.TotalMiles != 4400 {
		t.Fatalf("miles wrong: %d", m.TotalMiles)
	}
	if m.TotalRevenue != 15000.0 || m.TotalCost != 11000.0 || m.TotalProfit != 4000.0 {
		t.Fatalf("money totals wrong: %+v", m)
	}
	if m.ProfitableTrips != 6 || m.AtRiskTrips != 1 {
		t.Fatalf("profitability counts wrong: %+v", m)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAggregatesByDriverTypeDerivesMargin(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	cols := []string{"Type", "Trips", "Miles", "Revenue", "Cost", "Profit"}
	mock.ExpectQuery(`GROUP BY d.Type`).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("Company", 6, 2400, 8000.0, 6000.0, 2000.0).
			AddRow("Owner Operator", 4, 2000, 7000.0, 6300.0, 700.0).
			AddRow("Lease", 2, 500, 0.0, 0.0, 0.0))

	repo := StatsRepository{DB: db}
	groups, err := repo.AggregatesByDriverType()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}

	if groups[0].MarginPct != 25.0 {
		t.Fatalf("company margin: got %v want 25", groups[0].MarginPct)
	}
	if groups[1].MarginPct != 10.0 {
		t.Fatalf("owner-operator margin: got %v want 10", groups[1].MarginPct)
	}
	// uncosted group: zero revenue must produce a 0 margin, not NaN
	if groups[2].MarginPct != 0.0 {
		t.Fatalf("uncosted margin: got %v want 0", groups[2].MarginPct)
	}

	// reconciliation: group sums must equal the matching fleet totals
	var revenue, cost, profit float64
	var miles int64
	for _, g := range groups {
		revenue += g.Revenue
		cost += g.Cost
		profit += g.Profit
		miles += g.Miles
	}
	if revenue != 15000.0 || cost != 12300.0 || profit != 2700.0 || miles != 4900 {
		t.Fatalf("reconciliation failed: revenue=%v cost=%v profit=%v miles=%d", revenue, cost, profit, miles)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAggregatesByCustomerTruncatesToTop20(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`LIMIT 20`).
		WillReturnRows(sqlmock.NewRows([]string{"Customer", "Trips", "Miles", "Revenue", "Cost", "Profit"}).
			AddRow("Acme Freight", 3, 1200, 5000.0, 4000.0, 1000.0))

	repo := StatsRepository{DB: db}
	groups, err := repo.AggregatesByCustomer()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 1 || groups[0].CustomerName != "Acme Freight" {
		t.Fatalf("unexpected groups: %+v", groups)
	}
	if groups[0].MarginPct != 20.0 {
		t.Fatalf("customer margin: got %v want 20", groups[0].MarginPct)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBoardDefaultsStatusAndSkipsMarginWithoutRevenue(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	cols := []string{
		"TripID", "Status", "Miles",
		"DriverID", "Name", "Type",
		"UnitID", "UnitNumber",
		"Customer", "Origin", "Destination",
		"Revenue", "TotalCost", "Profit",
	}
	mock.ExpectQuery(`NOT IN \('Cancelled'\)`).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(2, "Assigned", 900, 4, "J. Doe", "Company", 7, "U-17", "Acme Freight", "Calgary", "Denver", 2000.0, 1500.0, 500.0).
			AddRow(1, nil, 400, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil))

	repo := StatsRepository{DB: db}
	rows, err := repo.Board()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	if rows[0].MarginPct == nil || *rows[0].MarginPct != 25.0 {
		t.Fatalf("costed trip margin wrong: %+v", rows[0].MarginPct)
	}
	if rows[1].Status != "Unassigned" {
		t.Fatalf("null status must default to Unassigned, got %q", rows[1].Status)
	}
	if rows[1].MarginPct != nil {
		t.Fatalf("uncosted trip must have nil margin, got %v", *rows[1].MarginPct)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReportTripsZeroDefaultsMoneyButNotMargin(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	cols := []string{
		"TripID", "WeekStart", "Status", "Miles",
		"Name", "Type", "UnitNumber",
		"Customer", "Origin", "Destination",
		"Revenue", "TotalCost", "Profit", "TotalCPM",
	}
	mock.ExpectQuery(`LIMIT 200`).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(501, nil, "Planned", 400, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil))

	repo := StatsRepository{DB: db}
	rows, err := repo.ReportTrips()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	r := rows[0]
	if r.Revenue != 0 || r.TotalCost != 0 || r.Profit != 0 || r.TotalCPM != 0 {
		t.Fatalf("uncosted report row must zero-default money: %+v", r)
	}
	if r.MarginPct != nil {
		t.Fatalf("uncosted report row must keep nil margin, got %v", *r.MarginPct)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
