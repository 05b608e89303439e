package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
)

// UpdateOrderCommand represents a full update of an order's mutable fields:
// total value, status, and notes. The owning user and the order number stay
// untouched even if the transport payload carried them; those fields are
// simply not part of this command.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	totalValue decimal.NullDecimal
	status     order.Status
	notes      string

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to overwrite an order's value,
// status, and notes. Validates the identifier and the status value.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	totalValue decimal.NullDecimal,
	status order.Status,
	notes string,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		totalValue: totalValue,
		notes:      notes,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TotalValue returns the new order amount.
func (c UpdateOrderCommand) TotalValue() decimal.NullDecimal {
	return c.totalValue
}

// Status returns the new lifecycle state.
func (c UpdateOrderCommand) Status() order.Status {
	return c.status
}

// Notes returns the new notes.
func (c UpdateOrderCommand) Notes() string {
	return c.notes
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
