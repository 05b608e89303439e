package queries

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// ListRecentOrdersQueryHandler retrieves the latest orders for dashboard
// views, newest first.
type ListRecentOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListRecentOrdersQueryHandler creates a handler for recent-order queries.
func NewListRecentOrdersQueryHandler(db *gorm.DB) ListRecentOrdersQueryHandler {
	return ListRecentOrdersQueryHandler{db: db}
}

// Handle executes the query. The window threshold is computed against the
// wall clock at execution time.
func (h ListRecentOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListRecentOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	threshold := time.Now().UTC().Add(-query.Window())

	rows, err := h.db.WithContext(ctx).Raw(fmt.Sprintf(`
		SELECT %s
		FROM orders
		WHERE placed_at >= ?
		ORDER BY placed_at DESC
	`, orderColumns), threshold).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}
