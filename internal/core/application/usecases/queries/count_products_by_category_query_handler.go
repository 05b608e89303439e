package queries

import (
	"context"

	"gorm.io/gorm"
)

// CountProductsByCategoryQueryHandler counts catalog entries per category.
type CountProductsByCategoryQueryHandler struct {
	db *gorm.DB
}

// NewCountProductsByCategoryQueryHandler creates a handler for category
// counts.
func NewCountProductsByCategoryQueryHandler(db *gorm.DB) CountProductsByCategoryQueryHandler {
	return CountProductsByCategoryQueryHandler{db: db}
}

// Handle executes the count.
func (h CountProductsByCategoryQueryHandler) Handle(
	ctx context.Context,
	query CountProductsByCategoryQuery,
) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM products WHERE category = ?
	`, query.Category()).Scan(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
