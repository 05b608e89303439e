package queries

import (
	"context"

	"gorm.io/gorm"
)

// CountActiveUsersQueryHandler counts active accounts.
type CountActiveUsersQueryHandler struct {
	db *gorm.DB
}

// NewCountActiveUsersQueryHandler creates a handler for active-account
// counts.
func NewCountActiveUsersQueryHandler(db *gorm.DB) CountActiveUsersQueryHandler {
	return CountActiveUsersQueryHandler{db: db}
}

// Handle executes the count.
func (h CountActiveUsersQueryHandler) Handle(ctx context.Context, query CountActiveUsersQuery) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM users WHERE active
	`).Scan(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
