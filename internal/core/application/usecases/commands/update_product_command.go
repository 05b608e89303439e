package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var (
	ErrUpdateProductCommandIsNotConstructed = errors.New(
		"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
	)
)

// UpdateProductCommand represents a full update of a product's catalog fields.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID     kernel.UUID
	name          string
	description   string
	price         decimal.Decimal
	stockQuantity int
	category      string
	active        bool

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a command to overwrite a product's name,
// description, price, stock, category, and active flag.
func NewUpdateProductCommand(
	productID kernel.UUID,
	name string,
	description string,
	price decimal.Decimal,
	stockQuantity int,
	category string,
	active bool,
) (UpdateProductCommand, error) {
	cmd := UpdateProductCommand{
		description: description,
		category:    category,
		active:      active,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setStockQuantity(stockQuantity),
	); err != nil {
		return UpdateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to update.
func (c UpdateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the new product name.
func (c UpdateProductCommand) Name() string {
	return c.name
}

// Description returns the new description.
func (c UpdateProductCommand) Description() string {
	return c.description
}

// Price returns the new unit price.
func (c UpdateProductCommand) Price() decimal.Decimal {
	return c.price
}

// StockQuantity returns the new stock level.
func (c UpdateProductCommand) StockQuantity() int {
	return c.stockQuantity
}

// Category returns the new category.
func (c UpdateProductCommand) Category() string {
	return c.category
}

// Active returns the new active flag.
func (c UpdateProductCommand) Active() bool {
	return c.active
}

func (c *UpdateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *UpdateProductCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *UpdateProductCommand) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidError("price")
	}

	c.price = price
	return nil
}

func (c *UpdateProductCommand) setStockQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsOutOfRangeError("stockQuantity", quantity, 0, "unbounded")
	}

	c.stockQuantity = quantity
	return nil
}
