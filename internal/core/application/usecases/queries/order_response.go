// Package queries contains read-side operations. Handlers run raw SQL
// against the store and return plain response structs; they never load
// aggregates or open transactions.
package queries

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
)

// OrderResponse represents one order row on the read side.
type OrderResponse struct {
	ID         kernel.UUID
	UserID     kernel.UUID
	Number     string
	TotalValue decimal.NullDecimal
	Status     order.Status
	Notes      string
	PlacedAt   time.Time
}

// orderColumns is the select list every order query shares. Scan order
// must match scanOrderRows.
const orderColumns = `id, user_id, number, total_value, status, notes, placed_at`

func scanOrderRows(rows *sql.Rows) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)

	for rows.Next() {
		resp, err := scanOrderRow(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func scanOrderRow(rows *sql.Rows) (OrderResponse, error) {
	var (
		resp       OrderResponse
		id         uuid.UUID
		userID     uuid.UUID
		totalValue decimal.NullDecimal
		status     int
	)

	err := rows.Scan(
		&id,
		&userID,
		&resp.Number,
		&totalValue,
		&status,
		&resp.Notes,
		&resp.PlacedAt,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	ownerID, err := kernel.UUIDFromBytes(userID[:])
	if err != nil {
		return OrderResponse{}, err
	}

	resp.ID = orderID
	resp.UserID = ownerID
	resp.TotalValue = totalValue
	resp.Status = order.Status(status)

	return resp, nil
}
