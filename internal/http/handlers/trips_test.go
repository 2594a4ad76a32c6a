package handlers_test

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestUpdateTripRejectsMalformedID(t *testing.T) {
	r, mock := newTestServer(t)

	w := doJSON(t, r, http.MethodPatch, "/api/trips/abc", `{"status":"Assigned"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d want 400", w.Code)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected database traffic: %v", err)
	}
}

func TestUpdateTripRejectsEmptyPatch(t *testing.T) {
	r, mock := newTestServer(t)

	w := doJSON(t, r, http.MethodPatch, "/api/trips/12", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d want 400, body: %s", w.Code, w.Body.String())
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected database traffic: %v", err)
	}
}

func TestUpdateTripWritesSparseFields(t *testing.T) {
	r, mock := newTestServer(t)

	mock.ExpectExec(`UPDATE Trips SET Status = \?, DriverID = \? WHERE TripID = \?`).
		WithArgs("Assigned", int64(4), int64(12)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := doJSON(t, r, http.MethodPatch, "/api/trips/12", `{"status":"Assigned","driverId":4}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d want 200, body: %s", w.Code, w.Body.String())
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateTripStatusRequiresStatus(t *testing.T) {
	r, mock := newTestServer(t)

	w := doJSON(t, r, http.MethodPatch, "/api/trips/12/status", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d want 400", w.Code)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected database traffic: %v", err)
	}
}

func TestGetTripByIDAnswers404WhenMissing(t *testing.T) {
	r, mock := newTestServer(t)

	mock.ExpectQuery(`WHERE t.TripID = \?`).
		WithArgs(int64(99999)).
		WillReturnRows(sqlmock.NewRows([]string{"TripID"}))

	w := doJSON(t, r, http.MethodGet, "/api/trips/99999", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status: got %d want 404, body: %s", w.Code, w.Body.String())
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateTripEventRequiresEventType(t *testing.T) {
	r, mock := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/trips/12/events", `{"note":"left yard"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d want 400", w.Code)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected database traffic: %v", err)
	}
}

func TestAssignClearsOmittedUnit(t *testing.T) {
	r, mock := newTestServer(t)

	mock.ExpectExec(`UPDATE Trips SET DriverID = \?, UnitID = \?, Status = \?`).
		WithArgs(int64(4), nil, "Assigned", int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := doJSON(t, r, http.MethodPost, "/api/dispatch/assign", `{"tripId":9,"driverId":4}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d want 200, body: %s", w.Code, w.Body.String())
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
