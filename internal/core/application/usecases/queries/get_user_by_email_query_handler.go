package queries

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"backoffice/internal/pkg/errs"
)

// GetUserByEmailQueryHandler reads a single user row by email.
type GetUserByEmailQueryHandler struct {
	db *gorm.DB
}

// NewGetUserByEmailQueryHandler creates a handler for user lookups by
// email.
func NewGetUserByEmailQueryHandler(db *gorm.DB) GetUserByEmailQueryHandler {
	return GetUserByEmailQueryHandler{db: db}
}

// Handle executes the lookup. Returns an ObjectNotFoundError when no user
// is registered under the requested email.
func (h GetUserByEmailQueryHandler) Handle(
	ctx context.Context,
	query GetUserByEmailQuery,
) (UserResponse, error) {
	if err := query.Validate(); err != nil {
		return UserResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(fmt.Sprintf(`
		SELECT %s
		FROM users
		WHERE email = ?
	`, userColumns), query.Email()).Rows()
	if err != nil {
		return UserResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return UserResponse{}, err
		}
		return UserResponse{}, errs.NewObjectNotFoundError("email", query.Email())
	}

	resp, err := scanUserRow(rows)
	if err != nil {
		return UserResponse{}, err
	}

	return resp, nil
}
