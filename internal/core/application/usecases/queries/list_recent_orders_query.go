package queries

import (
	"errors"
	"time"

	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var (
	ErrListRecentOrdersQueryIsNotConstructed = errors.New(
		"ListRecentOrdersQuery must be created via NewListRecentOrdersQuery constructor",
	)
)

// ListRecentOrdersQuery retrieves orders placed within a trailing window,
// for example everything from the last 24 hours. Results come back newest
// first.
type ListRecentOrdersQuery struct {
	window time.Duration

	guard guard.ConstructorGuard
}

// NewListRecentOrdersQuery creates a query over the trailing window ending
// now. The window must be positive.
func NewListRecentOrdersQuery(window time.Duration) (ListRecentOrdersQuery, error) {
	if window <= 0 {
		return ListRecentOrdersQuery{}, errs.NewValueIsInvalidError("window")
	}

	return ListRecentOrdersQuery{
		window: window,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListRecentOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListRecentOrdersQueryIsNotConstructed)
}

// Window returns the trailing duration to cover.
func (q ListRecentOrdersQuery) Window() time.Duration {
	return q.window
}
