package queries

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// ListProductsQueryHandler retrieves product collections from the catalog.
// One handler serves every filter variant of ListProductsQuery.
type ListProductsQueryHandler struct {
	db *gorm.DB
}

// NewListProductsQueryHandler creates a handler for product list queries.
func NewListProductsQueryHandler(db *gorm.DB) ListProductsQueryHandler {
	return ListProductsQueryHandler{db: db}
}

// Handle executes the list query. An empty result is an empty slice.
func (h ListProductsQueryHandler) Handle(ctx context.Context, query ListProductsQuery) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where := ""
	orderBy := "ORDER BY name"
	args := make([]any, 0, 2)

	switch query.filter {
	case productFilterActive:
		where = "WHERE active"
	case productFilterCategory:
		where = "WHERE category = ?"
		args = append(args, query.category)
	case productFilterPriceRange:
		where = "WHERE price BETWEEN ? AND ?"
		args = append(args, query.minPrice, query.maxPrice)
	case productFilterSearch:
		where = "WHERE name ILIKE ?"
		args = append(args, "%"+query.term+"%")
	case productFilterLowStock:
		where = "WHERE stock_quantity < ?"
		orderBy = "ORDER BY stock_quantity"
		args = append(args, query.stockBelow)
	case productFilterNone:
	}

	rows, err := h.db.WithContext(ctx).Raw(fmt.Sprintf(`
		SELECT %s
		FROM products
		%s
		%s
	`, productColumns, where, orderBy), args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProductRows(rows)
}
