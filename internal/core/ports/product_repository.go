package ports

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

// ProductRepository defines the persistence contract for the catalog.
type ProductRepository interface {
	// Add persists a new product.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its unique identifier.
	// Returns an ObjectNotFoundError when no such product exists.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetAll retrieves every product.
	GetAll(ctx context.Context) ([]*product.Product, error)

	// GetAllActive retrieves products with the active flag set.
	GetAllActive(ctx context.Context) ([]*product.Product, error)

	// GetAllByCategory retrieves products in the given category.
	GetAllByCategory(ctx context.Context, category string) ([]*product.Product, error)

	// GetAllByPriceRange retrieves products priced in [minPrice, maxPrice].
	GetAllByPriceRange(ctx context.Context, minPrice, maxPrice decimal.Decimal) ([]*product.Product, error)

	// GetLowStock retrieves active products whose stock is at or below the
	// limit.
	GetLowStock(ctx context.Context, limit int) ([]*product.Product, error)

	// Search retrieves products whose name or description contains the
	// term, case-insensitively.
	Search(ctx context.Context, term string) ([]*product.Product, error)

	// CountByCategory counts active products in the given category.
	CountByCategory(ctx context.Context, category string) (int64, error)

	// Exists reports whether a product with the given identifier exists.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)

	// Delete permanently removes the product. Returns an
	// ObjectNotFoundError when no such product exists.
	Delete(ctx context.Context, id kernel.UUID) error
}
