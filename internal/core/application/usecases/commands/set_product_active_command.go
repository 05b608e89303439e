package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var (
	ErrSetProductActiveCommandIsNotConstructed = errors.New(
		"SetProductActiveCommand must be created via NewSetProductActiveCommand constructor",
	)
)

// SetProductActiveCommand toggles a product's catalog visibility.
type SetProductActiveCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	active    bool

	guard guard.ConstructorGuard
}

// NewSetProductActiveCommand creates a command to activate or deactivate a product.
func NewSetProductActiveCommand(productID kernel.UUID, active bool) (SetProductActiveCommand, error) {
	cmd := SetProductActiveCommand{
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := cmd.setProductID(productID); err != nil {
		return SetProductActiveCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetProductActiveCommand) Validate() error {
	return c.guard.Validate(ErrSetProductActiveCommandIsNotConstructed)
}

// ProductID returns the identifier of the product.
func (c SetProductActiveCommand) ProductID() kernel.UUID {
	return c.productID
}

// Active returns the desired active flag.
func (c SetProductActiveCommand) Active() bool {
	return c.active
}

func (c *SetProductActiveCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}
