package queries

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"backoffice/internal/pkg/errs"
)

// GetProductQueryHandler reads a single product row by ID.
type GetProductQueryHandler struct {
	db *gorm.DB
}

// NewGetProductQueryHandler creates a handler for single-product lookups.
func NewGetProductQueryHandler(db *gorm.DB) GetProductQueryHandler {
	return GetProductQueryHandler{db: db}
}

// Handle executes the lookup. Returns an ObjectNotFoundError when no
// product has the requested identifier.
func (h GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return ProductResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(fmt.Sprintf(`
		SELECT %s
		FROM products
		WHERE id = ?
	`, productColumns), query.ProductID().Bytes()).Rows()
	if err != nil {
		return ProductResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ProductResponse{}, err
		}
		return ProductResponse{}, errs.NewObjectNotFoundError("productID", query.ProductID())
	}

	resp, err := scanProductRow(rows)
	if err != nil {
		return ProductResponse{}, err
	}

	return resp, nil
}
