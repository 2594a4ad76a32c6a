package repositories

import (
	"database/sql"

	intconfig "github.com/bekeleandu024-ui/fleet-costing-web/internal/config"
	"github.com/bekeleandu024-ui/fleet-costing-web/internal/domain"
)

// FleetRepository serves the driver and unit reference lists.
type FleetRepository struct {
	DB *sql.DB
}

func (r FleetRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r FleetRepository) ListDrivers() ([]domain.Driver, error) {
	rows, err := r.db().Query(`
		SELECT DriverID, Name, Type
		FROM Drivers
		ORDER BY Name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Driver{}
	for rows.Next() {
		var d domain.Driver
		if err := rows.Scan(&d.DriverID, &d.Name, &d.Type); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r FleetRepository) ListUnits() ([]domain.Unit, error) {
	rows, err := r.db().Query(`
		SELECT UnitID, UnitNumber, DriverID
		FROM Units
		ORDER BY UnitNumber
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Unit{}
	for rows.Next() {
		var u domain.Unit
		if err := rows.Scan(&u.UnitID, &u.UnitNumber, &u.DriverID); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
