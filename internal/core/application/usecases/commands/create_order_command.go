package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to create a new order for an
// existing user. The total value is optional; it may stay unset until the
// caller computes it. Order number, status, and timestamp are generated by
// the aggregate, not supplied here.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(userID,
//	    decimal.NewNullDecimal(decimal.RequireFromString("200.00")), "gift wrap")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	userID     kernel.UUID
	totalValue decimal.NullDecimal
	notes      string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the user reference is present.
func NewCreateOrderCommand(
	userID kernel.UUID,
	totalValue decimal.NullDecimal,
	notes string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		totalValue: totalValue,
		notes:      notes,
		guard:      guard.NewConstructorGuard(),
	}

	if err := cmd.setUserID(userID); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// UserID returns the identifier of the owning user.
func (c CreateOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// TotalValue returns the optional order amount.
func (c CreateOrderCommand) TotalValue() decimal.NullDecimal {
	return c.totalValue
}

// Notes returns the optional free-text notes.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

func (c *CreateOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}
