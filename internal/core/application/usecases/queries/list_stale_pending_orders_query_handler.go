package queries

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"backoffice/internal/core/domain/model/order"
)

// ListStalePendingOrdersQueryHandler retrieves Pending orders that have
// sat untouched past the staleness threshold, oldest first so the longest
// waiting order is handled before the rest.
type ListStalePendingOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListStalePendingOrdersQueryHandler creates a handler for stale
// Pending order queries.
func NewListStalePendingOrdersQueryHandler(db *gorm.DB) ListStalePendingOrdersQueryHandler {
	return ListStalePendingOrdersQueryHandler{db: db}
}

// Handle executes the query. The threshold is computed against the wall
// clock at execution time.
func (h ListStalePendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListStalePendingOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	threshold := time.Now().UTC().Add(-query.OlderThan())

	rows, err := h.db.WithContext(ctx).Raw(fmt.Sprintf(`
		SELECT %s
		FROM orders
		WHERE status = ? AND placed_at < ?
		ORDER BY placed_at
	`, orderColumns), int(order.Pending), threshold).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}
