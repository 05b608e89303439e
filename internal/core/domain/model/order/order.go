package order

import (
	"errors"
	"fmt"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// NumberPrefix is the fixed prefix of every generated order number.
const NumberPrefix = "ORD"

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order is the aggregate root for a purchase record owned by exactly one
// user and tracked through a status lifecycle.
//
// Order maintains these invariants:
//   - Must have a valid unique identifier and a valid owning user
//   - The order number is generated once at creation and never changes
//   - The placement timestamp is set once at creation and never changes
//   - A delivered order cannot be cancelled through Cancel
//
// The struct uses private fields so state can only change through the
// validated methods below. Total value is nullable: it may stay unset until
// the caller computes it.
type Order struct {
	// id is the unique identifier, issued when the aggregate is created
	id kernel.UUID

	// userID references the owning user in the user directory
	userID kernel.UUID

	// number is the generated human-readable order token
	number string

	// totalValue is the order amount; Valid is false until a value is set
	totalValue decimal.NullDecimal

	// status is the current lifecycle state
	status Status

	// notes is optional free text
	notes string

	// placedAt is the creation timestamp
	placedAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order owned by the given user.
//
// The caller supplies the identity and the (already resolved) owning user
// reference; the aggregate generates the rest: order number, Pending
// status, and the placement timestamp.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), userID,
//	    decimal.NewNullDecimal(decimal.RequireFromString("200.00")), "leave at door")
//	if err != nil {
//	    // handle validation error
//	}
//
// Returns an error if either identifier is invalid.
func NewOrder(id kernel.UUID, userID kernel.UUID, totalValue decimal.NullDecimal, notes string) (*Order, error) {
	o := &Order{
		number:        generateNumber(time.Now()),
		totalValue:    totalValue,
		status:        Pending,
		notes:         notes,
		placedAt:      time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persisted state. All fields come
// from the store as-is; only structural validity is re-checked, no
// lifecycle rules are re-applied.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	number string,
	totalValue decimal.NullDecimal,
	status Status,
	notes string,
	placedAt time.Time,
) (*Order, error) {
	o := &Order{
		totalValue:    totalValue,
		notes:         notes,
		placedAt:      placedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setNumber(number),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// generateNumber derives the order number from wall-clock time at
// millisecond granularity. Uniqueness is probabilistic; the store carries a
// unique index on the column, so a collision surfaces as a storage error.
func generateNumber(now time.Time) string {
	return fmt.Sprintf("%s%d", NumberPrefix, now.UnixMilli())
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed otherwise.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the identifier of the owning user.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// Number returns the generated order number.
func (o *Order) Number() string {
	return o.number
}

// TotalValue returns the order amount. Valid is false while unset.
func (o *Order) TotalValue() decimal.NullDecimal {
	return o.totalValue
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// Notes returns the free-text notes.
func (o *Order) Notes() string {
	return o.notes
}

// PlacedAt returns the creation timestamp.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// UpdateDetails overwrites exactly three fields: total value, status, and
// notes. The owning user, the order number, and the placement timestamp are
// never touched by this path, whatever the caller sends.
//
// Returns an error if the new status is not a valid lifecycle state.
func (o *Order) UpdateDetails(totalValue decimal.NullDecimal, status Status, notes string) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.totalValue = totalValue
	o.status = status
	o.notes = notes
	return nil
}

// SetStatus unconditionally sets the lifecycle state.
//
// There is no transition guard here: this path can move a Delivered order
// to any status, Cancelled included. Cancel is the guarded path; the two
// are intentionally asymmetric.
//
// Returns an error only if the new status is not a valid lifecycle state.
func (o *Order) SetStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	return nil
}

// Cancel moves the order to Cancelled.
//
// Fails with an InvalidStateTransitionError when the order is Delivered,
// leaving the state unchanged. Cancelling an already cancelled order
// succeeds and keeps the status at Cancelled.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userID", err)
	}
	o.userID = userID
	return nil
}

func (o *Order) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("number")
	}
	o.number = number
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
