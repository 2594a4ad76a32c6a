package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestRecalculateRejectsManualWithoutCost(t *testing.T) {
	r, mock := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/trips/5/recalculate-cost", `{"isManual":true}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d want 400, body: %s", w.Code, w.Body.String())
	}

	// rejected before the procedure was invoked
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected database traffic: %v", err)
	}
}

func TestTripCostRequiresTripID(t *testing.T) {
	r, mock := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/trip-cost", `{"isManual":false}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d want 400", w.Code)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected database traffic: %v", err)
	}
}

func TestRecalculateReturnsLatestCost(t *testing.T) {
	r, mock := newTestServer(t)

	mock.ExpectExec(`CALL usp_RecalculateTripCost`).
		WithArgs(int64(5), true, 1250.5, "spot rate").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`ORDER BY CreatedAt DESC, CostID DESC`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{
			"CostID", "TripID", "Miles", "TotalCPM", "TotalCost", "Revenue", "Profit",
			"IsManual", "ManualTotalCost", "ManualReason", "CreatedAt",
			"WageMultiplier", "AccessorialCost",
		}).AddRow(14, 5, 620, 2.02, 1250.5, 1400.0, 149.5, true, 1250.5, "spot rate",
			time.Date(2025, 7, 2, 9, 30, 0, 0, time.UTC), nil, nil))

	w := doJSON(t, r, http.MethodPost, "/api/trips/5/recalculate-cost",
		`{"isManual":true,"manualTotalCost":1250.5,"manualReason":"spot rate"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d want 200, body: %s", w.Code, w.Body.String())
	}

	var resp struct {
		OK         bool `json:"ok"`
		TripID     int  `json:"tripId"`
		LatestCost struct {
			CostID   int64 `json:"CostID"`
			IsManual bool  `json:"IsManual"`
		} `json:"latestCost"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if !resp.OK || resp.TripID != 5 || resp.LatestCost.CostID != 14 || !resp.LatestCost.IsManual {
		t.Fatalf("unexpected response: %s", w.Body.String())
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
