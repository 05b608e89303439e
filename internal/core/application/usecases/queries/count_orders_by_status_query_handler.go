package queries

import (
	"context"

	"gorm.io/gorm"
)

// CountOrdersByStatusQueryHandler counts orders in one status for
// dashboard tiles.
type CountOrdersByStatusQueryHandler struct {
	db *gorm.DB
}

// NewCountOrdersByStatusQueryHandler creates a handler for status counts.
func NewCountOrdersByStatusQueryHandler(db *gorm.DB) CountOrdersByStatusQueryHandler {
	return CountOrdersByStatusQueryHandler{db: db}
}

// Handle executes the count.
func (h CountOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query CountOrdersByStatusQuery,
) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM orders WHERE status = ?
	`, int(query.Status())).Scan(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
