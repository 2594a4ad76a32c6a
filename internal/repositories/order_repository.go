package repositories

import (
	"database/sql"

	intconfig "github.com/bekeleandu024-ui/fleet-costing-web/internal/config"
	"github.com/bekeleandu024-ui/fleet-costing-web/internal/domain"
)

type OrderRepository struct {
	DB *sql.DB
}

func (r OrderRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// List returns the latest 100 orders.
func (r OrderRepository) List() ([]domain.Order, error) {
	rows, err := r.db().Query(`
		SELECT o.OrderID, o.CustomerID, o.Customer, o.Origin, o.Destination,
		       o.Miles, o.Revenue, o.Status
		FROM Orders o
		ORDER BY o.OrderID DESC
		LIMIT 100
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Order{}
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(
			&o.OrderID, &o.CustomerID, &o.Customer, &o.Origin, &o.Destination,
			&o.Miles, &o.Revenue, &o.Status,
		); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// Insert creates an order in Planned status and returns the persisted row.
func (r OrderRepository) Insert(customer *string, origin, destination string, miles int64, revenue float64) (*domain.Order, error) {
	res, err := r.db().Exec(`
		INSERT INTO Orders (Customer, Origin, Destination, Miles, Revenue, Status)
		VALUES (?, ?, ?, ?, ?, ?)
	`, customer, origin, destination, miles, revenue, "Planned")
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	row := r.db().QueryRow(`
		SELECT o.OrderID, o.CustomerID, o.Customer, o.Origin, o.Destination,
		       o.Miles, o.Revenue, o.Status
		FROM Orders o
		WHERE o.OrderID = ?
	`, id)

	var o domain.Order
	if err := row.Scan(
		&o.OrderID, &o.CustomerID, &o.Customer, &o.Origin, &o.Destination,
		&o.Miles, &o.Revenue, &o.Status,
	); err != nil {
		return nil, err
	}
	return &o, nil
}
