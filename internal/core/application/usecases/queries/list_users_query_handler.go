package queries

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// ListUsersQueryHandler retrieves user collections from the directory.
type ListUsersQueryHandler struct {
	db *gorm.DB
}

// NewListUsersQueryHandler creates a handler for user list queries.
func NewListUsersQueryHandler(db *gorm.DB) ListUsersQueryHandler {
	return ListUsersQueryHandler{db: db}
}

// Handle executes the list query. An empty result is an empty slice.
func (h ListUsersQueryHandler) Handle(ctx context.Context, query ListUsersQuery) ([]UserResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where := ""
	args := make([]any, 0, 1)

	switch query.filter {
	case userFilterActive:
		where = "WHERE active"
	case userFilterSearch:
		where = "WHERE name ILIKE ?"
		args = append(args, "%"+query.term+"%")
	case userFilterNone:
	}

	rows, err := h.db.WithContext(ctx).Raw(fmt.Sprintf(`
		SELECT %s
		FROM users
		%s
		ORDER BY name
	`, userColumns, where), args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanUserRows(rows)
}
