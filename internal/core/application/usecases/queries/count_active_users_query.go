package queries

import (
	"errors"

	"backoffice/internal/pkg/guard"
)

var (
	ErrCountActiveUsersQueryIsNotConstructed = errors.New(
		"CountActiveUsersQuery must be created via NewCountActiveUsersQuery constructor",
	)
)

// CountActiveUsersQuery counts active accounts in the directory.
type CountActiveUsersQuery struct {
	guard guard.ConstructorGuard
}

// NewCountActiveUsersQuery creates a parameterless active-account count.
func NewCountActiveUsersQuery() CountActiveUsersQuery {
	return CountActiveUsersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q CountActiveUsersQuery) Validate() error {
	return q.guard.Validate(ErrCountActiveUsersQueryIsNotConstructed)
}
