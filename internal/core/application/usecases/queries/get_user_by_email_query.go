package queries

import (
	"errors"

	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var (
	ErrGetUserByEmailQueryIsNotConstructed = errors.New(
		"GetUserByEmailQuery must be created via NewGetUserByEmailQuery constructor",
	)
)

// GetUserByEmailQuery retrieves a single user by its unique email address.
type GetUserByEmailQuery struct {
	email string

	guard guard.ConstructorGuard
}

// NewGetUserByEmailQuery creates a query for a user lookup by email.
func NewGetUserByEmailQuery(email string) (GetUserByEmailQuery, error) {
	if email == "" {
		return GetUserByEmailQuery{}, errs.NewValueIsRequiredError("email")
	}

	return GetUserByEmailQuery{
		email: email,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserByEmailQuery) Validate() error {
	return q.guard.Validate(ErrGetUserByEmailQueryIsNotConstructed)
}

// Email returns the email address to look up.
func (q GetUserByEmailQuery) Email() string {
	return q.email
}
