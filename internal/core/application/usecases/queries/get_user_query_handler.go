package queries

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"backoffice/internal/pkg/errs"
)

// GetUserQueryHandler reads a single user row by ID.
type GetUserQueryHandler struct {
	db *gorm.DB
}

// NewGetUserQueryHandler creates a handler for single-user lookups.
func NewGetUserQueryHandler(db *gorm.DB) GetUserQueryHandler {
	return GetUserQueryHandler{db: db}
}

// Handle executes the lookup. Returns an ObjectNotFoundError when no user
// has the requested identifier.
func (h GetUserQueryHandler) Handle(ctx context.Context, query GetUserQuery) (UserResponse, error) {
	if err := query.Validate(); err != nil {
		return UserResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(fmt.Sprintf(`
		SELECT %s
		FROM users
		WHERE id = ?
	`, userColumns), query.UserID().Bytes()).Rows()
	if err != nil {
		return UserResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return UserResponse{}, err
		}
		return UserResponse{}, errs.NewObjectNotFoundError("userID", query.UserID())
	}

	resp, err := scanUserRow(rows)
	if err != nil {
		return UserResponse{}, err
	}

	return resp, nil
}
