// Package ports defines repository interfaces for the back-office domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderRepository defines the persistence contract for order aggregates:
// keyed storage plus the filtered lookups and aggregate computations the
// read side needs. Every query that matches no rows returns an empty slice,
// not an error; only single-record lookups report absence.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// Fails if the generated order number already exists.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier.
	// Returns an ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByNumber retrieves an order by its unique order number.
	GetByNumber(ctx context.Context, number string) (*order.Order, error)

	// GetAll retrieves every order. Ordering is unspecified.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllByUser retrieves the orders owned by the given user.
	GetAllByUser(ctx context.Context, userID kernel.UUID) ([]*order.Order, error)

	// GetAllByStatus retrieves all orders in the given lifecycle state.
	GetAllByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// GetAllByValueRange retrieves orders whose total value lies in
	// [minValue, maxValue], inclusive. Orders without a value never match.
	GetAllByValueRange(ctx context.Context, minValue, maxValue decimal.Decimal) ([]*order.Order, error)

	// GetAllByDateRange retrieves orders placed in [start, end], inclusive.
	GetAllByDateRange(ctx context.Context, start, end time.Time) ([]*order.Order, error)

	// GetRecentSince retrieves orders placed at or after the threshold,
	// newest first.
	GetRecentSince(ctx context.Context, threshold time.Time) ([]*order.Order, error)

	// GetStalePending retrieves orders still in Pending status that were
	// placed before the threshold.
	GetStalePending(ctx context.Context, threshold time.Time) ([]*order.Order, error)

	// SumValueByUser computes, store-side, the sum of total values over the
	// user's orders whose status is not Cancelled. The result is invalid
	// (Valid == false) when no qualifying order carries a value; callers
	// normalize that to zero.
	SumValueByUser(ctx context.Context, userID kernel.UUID) (decimal.NullDecimal, error)

	// CountByStatus counts orders in the given lifecycle state.
	CountByStatus(ctx context.Context, status order.Status) (int64, error)

	// Exists reports whether an order with the given identifier exists.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)

	// Delete permanently removes the order. Returns an ObjectNotFoundError
	// when no such order exists. No cascading or soft delete.
	Delete(ctx context.Context, id kernel.UUID) error
}
