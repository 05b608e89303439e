package queries

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via a NewListOrdersQuery constructor",
	)
)

// orderFilter selects which WHERE clause the list handler builds.
type orderFilter int

const (
	filterNone orderFilter = iota
	filterByUser
	filterByStatus
	filterByValueRange
	filterByDateRange
)

// ListOrdersQuery retrieves order collections. The constructor used decides
// the filter: all orders, one user's orders, one status, a value range, or
// a placement date range. Results are always sorted by placement time,
// newest first.
//
// Example:
//
//	query, err := NewListOrdersQueryByStatus(order.Pending)
//	if err != nil {
//	    return err
//	}
//	handler := NewListOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	filter   orderFilter
	userID   kernel.UUID
	status   order.Status
	minValue decimal.Decimal
	maxValue decimal.Decimal
	start    time.Time
	end      time.Time

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates an unfiltered query over all orders.
func NewListOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{
		filter: filterNone,
		guard:  guard.NewConstructorGuard(),
	}
}

// NewListOrdersQueryByUser creates a query for one user's orders. The
// handler verifies the user exists and fails with an ObjectNotFoundError
// otherwise.
func NewListOrdersQueryByUser(userID kernel.UUID) (ListOrdersQuery, error) {
	if err := userID.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		filter: filterByUser,
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// NewListOrdersQueryByStatus creates a query for all orders in one status.
func NewListOrdersQueryByStatus(status order.Status) (ListOrdersQuery, error) {
	if err := status.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		filter: filterByStatus,
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// NewListOrdersQueryByValueRange creates a query for orders whose total
// value lies in [minValue, maxValue], both bounds inclusive. Orders with
// no value set never match.
func NewListOrdersQueryByValueRange(minValue, maxValue decimal.Decimal) (ListOrdersQuery, error) {
	if minValue.GreaterThan(maxValue) {
		return ListOrdersQuery{}, errs.NewValueIsInvalidError("minValue")
	}

	return ListOrdersQuery{
		filter:   filterByValueRange,
		minValue: minValue,
		maxValue: maxValue,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// NewListOrdersQueryByDateRange creates a query for orders placed in
// [start, end], both bounds inclusive.
func NewListOrdersQueryByDateRange(start, end time.Time) (ListOrdersQuery, error) {
	if start.After(end) {
		return ListOrdersQuery{}, errs.NewValueIsInvalidError("start")
	}

	return ListOrdersQuery{
		filter: filterByDateRange,
		start:  start,
		end:    end,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}
