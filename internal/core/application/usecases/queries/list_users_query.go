package queries

import (
	"errors"

	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var (
	ErrListUsersQueryIsNotConstructed = errors.New(
		"ListUsersQuery must be created via a NewListUsersQuery constructor",
	)
)

// userFilter selects which WHERE clause the list handler builds.
type userFilter int

const (
	userFilterNone userFilter = iota
	userFilterActive
	userFilterSearch
)

// ListUsersQuery retrieves user collections: the whole directory, active
// accounts only, or a case-insensitive name search. Results are sorted by
// name.
type ListUsersQuery struct {
	filter userFilter
	term   string

	guard guard.ConstructorGuard
}

// NewListUsersQuery creates an unfiltered query over the whole directory.
func NewListUsersQuery() ListUsersQuery {
	return ListUsersQuery{
		filter: userFilterNone,
		guard:  guard.NewConstructorGuard(),
	}
}

// NewListActiveUsersQuery creates a query for active accounts only.
func NewListActiveUsersQuery() ListUsersQuery {
	return ListUsersQuery{
		filter: userFilterActive,
		guard:  guard.NewConstructorGuard(),
	}
}

// NewSearchUsersQuery creates a case-insensitive substring search over
// user names. The term must not be empty.
func NewSearchUsersQuery(term string) (ListUsersQuery, error) {
	if term == "" {
		return ListUsersQuery{}, errs.NewValueIsRequiredError("term")
	}

	return ListUsersQuery{
		filter: userFilterSearch,
		term:   term,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q ListUsersQuery) Validate() error {
	return q.guard.Validate(ErrListUsersQueryIsNotConstructed)
}
