package queries

import (
	"errors"
	"time"

	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var (
	ErrListStalePendingOrdersQueryIsNotConstructed = errors.New(
		"ListStalePendingOrdersQuery must be created via NewListStalePendingOrdersQuery constructor",
	)
)

// ListStalePendingOrdersQuery retrieves Pending orders older than a
// threshold. These are orders nobody has touched since placement and are
// the input for operational follow-up.
type ListStalePendingOrdersQuery struct {
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewListStalePendingOrdersQuery creates a query for Pending orders placed
// more than olderThan ago. The duration must be positive.
func NewListStalePendingOrdersQuery(olderThan time.Duration) (ListStalePendingOrdersQuery, error) {
	if olderThan <= 0 {
		return ListStalePendingOrdersQuery{}, errs.NewValueIsInvalidError("olderThan")
	}

	return ListStalePendingOrdersQuery{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListStalePendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListStalePendingOrdersQueryIsNotConstructed)
}

// OlderThan returns the staleness threshold duration.
func (q ListStalePendingOrdersQuery) OlderThan() time.Duration {
	return q.olderThan
}
