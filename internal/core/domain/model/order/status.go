package order

import (
	"errors"
	"fmt"

	"backoffice/internal/pkg/errs"
)

// ErrCannotCancelDelivered states the single guarded transition rule of the
// order lifecycle.
var ErrCannotCancelDelivered = errors.New("cannot cancel a delivered order")

// Status represents the lifecycle state of an order.
//
// The lifecycle is deliberately permissive: a direct status update may set
// any valid status over any other. The one guarded path is cancellation,
// which is rejected once an order has been delivered:
//
//	Pending ──> Processing ──> Shipped ──> Delivered
//	   │            │             │            x
//	   └────────────┴─────────────┴──> Cancelled (via Cancel only)
//
// Delivered and Cancelled are terminal for the Cancel path only; a direct
// status update can still move an order out of either of them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every newly created order.
	Pending

	// Processing indicates the order is being prepared.
	Processing

	// Shipped indicates the order has left the warehouse.
	Shipped

	// Delivered indicates the order reached the customer.
	// A delivered order can no longer be cancelled.
	Delivered

	// Cancelled indicates the order was called off.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Processing: "Processing",
		Shipped:    "Shipped",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		Processing: "Processing",
		Shipped:    "Shipped",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

// StatusFromString parses the human-readable status name used on the wire.
// Returns an error for unknown names, including "Unknown" itself.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status value is one of the five defined
// lifecycle states. Unknown (0) and any other values are invalid.
// Used to reject payloads and database rows carrying an undefined status.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status, or "Unknown" for
// invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending, Processing, Shipped -> Cancelled
//   - Cancelled -> Cancelled (cancelling twice is a no-op)
//
// Invalid transitions:
//   - Delivered -> Cancelled (delivered orders are final for this path)
//
// Returns (Cancelled, nil), or (0, InvalidStateTransitionError) when the
// order has already been delivered.
func (s Status) Cancel() (Status, error) {
	if s == Delivered {
		return 0, errs.NewInvalidStateTransitionErrorWithCause(
			"status",
			Delivered.String(),
			Cancelled.String(),
			ErrCannotCancelDelivered,
		)
	}

	return Cancelled, nil
}
