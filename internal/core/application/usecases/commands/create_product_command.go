package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
)

// CreateProductCommand adds a new product to the catalog.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	name          string
	description   string
	price         decimal.Decimal
	stockQuantity int
	category      string

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to register a product.
// Name is required, price must not be negative.
func NewCreateProductCommand(
	name string,
	description string,
	price decimal.Decimal,
	stockQuantity int,
	category string,
) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		description: description,
		category:    category,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setStockQuantity(stockQuantity),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// Name returns the product name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Description returns the product description.
func (c CreateProductCommand) Description() string {
	return c.description
}

// Price returns the unit price.
func (c CreateProductCommand) Price() decimal.Decimal {
	return c.price
}

// StockQuantity returns the initial stock level.
func (c CreateProductCommand) StockQuantity() int {
	return c.stockQuantity
}

// Category returns the product category.
func (c CreateProductCommand) Category() string {
	return c.category
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidError("price")
	}

	c.price = price
	return nil
}

func (c *CreateProductCommand) setStockQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsOutOfRangeError("stockQuantity", quantity, 0, "unbounded")
	}

	c.stockQuantity = quantity
	return nil
}
