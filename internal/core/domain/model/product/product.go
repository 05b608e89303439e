package product

import (
	"errors"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

// Product is a catalog item with a price, a stock counter, and an active
// flag. Stock can never go negative.
type Product struct {
	id            kernel.UUID
	name          string
	description   string
	price         decimal.Decimal
	stockQuantity int
	category      string
	active        bool
	registeredAt  time.Time

	isConstructed bool
}

// NewProduct creates an active product with the registration timestamp set
// to now. Name is required, price must not be negative.
func NewProduct(
	id kernel.UUID,
	name string,
	description string,
	price decimal.Decimal,
	stockQuantity int,
	category string,
) (*Product, error) {
	p := &Product{
		description:   description,
		category:      category,
		active:        true,
		registeredAt:  time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
		p.setStockQuantity(stockQuantity),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a Product from persisted state.
func RestoreProduct(
	id kernel.UUID,
	name string,
	description string,
	price decimal.Decimal,
	stockQuantity int,
	category string,
	active bool,
	registeredAt time.Time,
) (*Product, error) {
	p := &Product{
		description:   description,
		category:      category,
		active:        active,
		registeredAt:  registeredAt,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
		p.setStockQuantity(stockQuantity),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}

	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the product description, possibly empty.
func (p *Product) Description() string {
	return p.description
}

// Price returns the unit price.
func (p *Product) Price() decimal.Decimal {
	return p.price
}

// StockQuantity returns the units currently in stock.
func (p *Product) StockQuantity() int {
	return p.stockQuantity
}

// Category returns the product category, possibly empty.
func (p *Product) Category() string {
	return p.category
}

// IsActive reports whether the product is listed.
func (p *Product) IsActive() bool {
	return p.active
}

// RegisteredAt returns the registration timestamp.
func (p *Product) RegisteredAt() time.Time {
	return p.registeredAt
}

// UpdateDetails overwrites the mutable catalog fields. The identifier and
// registration timestamp never change.
func (p *Product) UpdateDetails(
	name string,
	description string,
	price decimal.Decimal,
	stockQuantity int,
	category string,
	active bool,
) error {
	if err := errors.Join(
		p.setName(name),
		p.setPrice(price),
		p.setStockQuantity(stockQuantity),
	); err != nil {
		return err
	}

	p.description = description
	p.category = category
	p.active = active
	return nil
}

// ChangeStock sets the stock counter to a new absolute quantity.
// Negative quantities are rejected and leave the state unchanged.
func (p *Product) ChangeStock(quantity int) error {
	return p.setStockQuantity(quantity)
}

// SetActive toggles the active flag.
func (p *Product) SetActive(active bool) {
	p.active = active
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price", errors.New("price cannot be negative"))
	}
	p.price = price
	return nil
}

func (p *Product) setStockQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsOutOfRangeError("stockQuantity", quantity, 0, "unbounded")
	}
	p.stockQuantity = quantity
	return nil
}
