package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var (
	ErrChangeProductStockCommandIsNotConstructed = errors.New(
		"ChangeProductStockCommand must be created via NewChangeProductStockCommand constructor",
	)
)

// ChangeProductStockCommand sets a product's stock counter to an absolute
// quantity.
type ChangeProductStockCommand struct { //nolint:recvcheck //using for validation
	productID     kernel.UUID
	stockQuantity int

	guard guard.ConstructorGuard
}

// NewChangeProductStockCommand creates a command to set a product's stock.
// Negative quantities are rejected at construction time.
func NewChangeProductStockCommand(productID kernel.UUID, stockQuantity int) (ChangeProductStockCommand, error) {
	cmd := ChangeProductStockCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setStockQuantity(stockQuantity),
	); err != nil {
		return ChangeProductStockCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeProductStockCommand) Validate() error {
	return c.guard.Validate(ErrChangeProductStockCommandIsNotConstructed)
}

// ProductID returns the identifier of the product.
func (c ChangeProductStockCommand) ProductID() kernel.UUID {
	return c.productID
}

// StockQuantity returns the new absolute stock level.
func (c ChangeProductStockCommand) StockQuantity() int {
	return c.stockQuantity
}

func (c *ChangeProductStockCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *ChangeProductStockCommand) setStockQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsOutOfRangeError("stockQuantity", quantity, 0, "unbounded")
	}

	c.stockQuantity = quantity
	return nil
}
