package queries

import (
	"errors"

	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var (
	ErrGetOrderByNumberQueryIsNotConstructed = errors.New(
		"GetOrderByNumberQuery must be created via NewGetOrderByNumberQuery constructor",
	)
)

// GetOrderByNumberQuery retrieves a single order by its business number,
// the "ORD" prefixed value printed on receipts and quoted by customers.
type GetOrderByNumberQuery struct {
	number string

	guard guard.ConstructorGuard
}

// NewGetOrderByNumberQuery creates a query to fetch one order by number.
func NewGetOrderByNumberQuery(number string) (GetOrderByNumberQuery, error) {
	if number == "" {
		return GetOrderByNumberQuery{}, errs.NewValueIsRequiredError("number")
	}

	return GetOrderByNumberQuery{
		number: number,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByNumberQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByNumberQueryIsNotConstructed)
}

// Number returns the order number to look up.
func (q GetOrderByNumberQuery) Number() string {
	return q.number
}
