package repositories

import (
	"database/sql"
	"time"

	intconfig "github.com/bekeleandu024-ui/fleet-costing-web/internal/config"
	"github.com/bekeleandu024-ui/fleet-costing-web/internal/domain"
)

type TripEventRepository struct {
	DB *sql.DB
}

func (r TripEventRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// ListByTripID returns the trip timeline, newest first. TripEventID breaks
// ties between events stamped at the same instant.
func (r TripEventRepository) ListByTripID(tripID int64) ([]domain.TripEvent, error) {
	rows, err := r.db().Query(`
		SELECT TripEventID, TripID, EventType, EventTime, City, State, Note
		FROM TripEvents
		WHERE TripID = ?
		ORDER BY EventTime DESC, TripEventID DESC
	`, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.TripEvent{}
	for rows.Next() {
		var e domain.TripEvent
		if err := rows.Scan(
			&e.TripEventID, &e.TripID, &e.EventType, &e.EventTime,
			&e.City, &e.State, &e.Note,
		); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Insert appends a timeline entry and returns the persisted row including
// its generated identifier.
func (r TripEventRepository) Insert(tripID int64, eventType string, eventTime time.Time, city, state, note *string) (*domain.TripEvent, error) {
	res, err := r.db().Exec(`
		INSERT INTO TripEvents (TripID, EventType, EventTime, City, State, Note)
		VALUES (?, ?, ?, ?, ?, ?)
	`, tripID, eventType, eventTime, city, state, note)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	row := r.db().QueryRow(`
		SELECT TripEventID, TripID, EventType, EventTime, City, State, Note
		FROM TripEvents
		WHERE TripEventID = ?
	`, id)

	var e domain.TripEvent
	if err := row.Scan(
		&e.TripEventID, &e.TripID, &e.EventType, &e.EventTime,
		&e.City, &e.State, &e.Note,
	); err != nil {
		return nil, err
	}
	return &e, nil
}
