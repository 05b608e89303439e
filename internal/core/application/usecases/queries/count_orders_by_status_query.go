package queries

import (
	"errors"

	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/guard"
)

var (
	ErrCountOrdersByStatusQueryIsNotConstructed = errors.New(
		"CountOrdersByStatusQuery must be created via NewCountOrdersByStatusQuery constructor",
	)
)

// CountOrdersByStatusQuery counts orders in one lifecycle status.
type CountOrdersByStatusQuery struct {
	status order.Status

	guard guard.ConstructorGuard
}

// NewCountOrdersByStatusQuery creates a count query for one status.
func NewCountOrdersByStatusQuery(status order.Status) (CountOrdersByStatusQuery, error) {
	if err := status.Validate(); err != nil {
		return CountOrdersByStatusQuery{}, err
	}

	return CountOrdersByStatusQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CountOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrCountOrdersByStatusQueryIsNotConstructed)
}

// Status returns the status being counted.
func (q CountOrdersByStatusQuery) Status() order.Status {
	return q.status
}
