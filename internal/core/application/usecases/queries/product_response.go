package queries

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"backoffice/internal/core/domain/model/kernel"
)

// ProductResponse represents one product row on the read side.
type ProductResponse struct {
	ID            kernel.UUID
	Name          string
	Description   string
	Price         decimal.Decimal
	StockQuantity int
	Category      string
	Active        bool
	RegisteredAt  time.Time
}

// productColumns is the select list every product query shares. Scan order
// must match scanProductRows.
const productColumns = `id, name, description, price, stock_quantity, category, active, registered_at`

func scanProductRows(rows *sql.Rows) ([]ProductResponse, error) {
	products := make([]ProductResponse, 0)

	for rows.Next() {
		resp, err := scanProductRow(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

func scanProductRow(rows *sql.Rows) (ProductResponse, error) {
	var (
		resp ProductResponse
		id   uuid.UUID
	)

	err := rows.Scan(
		&id,
		&resp.Name,
		&resp.Description,
		&resp.Price,
		&resp.StockQuantity,
		&resp.Category,
		&resp.Active,
		&resp.RegisteredAt,
	)
	if err != nil {
		return ProductResponse{}, err
	}

	productID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ProductResponse{}, err
	}
	resp.ID = productID

	return resp, nil
}
