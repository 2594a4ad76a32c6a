package services

import (
	"encoding/json"
	"time"

	"github.com/bekeleandu024-ui/fleet-costing-web/internal/domain"
	"github.com/bekeleandu024-ui/fleet-costing-web/internal/repositories"
)

type TripService struct {
	Trips  repositories.TripRepository
	Events repositories.TripEventRepository
}

// BuildTripPatch turns a raw JSON body into a sparse patch. A key that is
// present with a null value clears the field; an absent key leaves it
// untouched.
func BuildTripPatch(raw []byte) (repositories.TripPatch, error) {
	var body struct {
		Status   *string `json:"status"`
		DriverID *int64  `json:"driverId"`
		UnitID   *int64  `json:"unitId"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return repositories.TripPatch{}, domain.ValidationError{Msg: "invalid json", Err: err}
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		return repositories.TripPatch{}, domain.ValidationError{Msg: "invalid json", Err: err}
	}

	_, driverSet := keys["driverId"]
	_, unitSet := keys["unitId"]

	return repositories.TripPatch{
		Status:      body.Status,
		DriverID:    body.DriverID,
		DriverIDSet: driverSet,
		UnitID:      body.UnitID,
		UnitIDSet:   unitSet,
	}, nil
}

// Update applies a sparse patch to one trip.
func (s TripService) Update(tripID int64, patch repositories.TripPatch) error {
	if tripID <= 0 {
		return domain.ValidationError{Field: "tripId", Msg: "must be a positive number"}
	}
	return s.Trips.UpdateFields(tripID, patch)
}

// Complete records a "Completed" timeline event and then moves the trip to
// Completed status. The two writes are deliberately independent: if the
// status update fails the event stays recorded.
func (s TripService) Complete(tripID int64) (*domain.TripEvent, error) {
	if tripID <= 0 {
		return nil, domain.ValidationError{Field: "tripId", Msg: "must be a positive number"}
	}

	event, err := s.Events.Insert(tripID, "Completed", time.Now(), nil, nil, nil)
	if err != nil {
		return nil, err
	}

	if err := s.Trips.UpdateStatus(tripID, "Completed"); err != nil {
		return event, err
	}
	return event, nil
}
