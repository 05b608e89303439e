// Package productrepo provides data transfer objects and mapping
// functions for product persistence.
package productrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/product"
)

// ProductDTO represents the database structure for persisting product
// aggregates.
type ProductDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"index"`
	Description   string
	Price         decimal.Decimal `gorm:"type:numeric(10,2)"`
	StockQuantity int
	Category      string `gorm:"index"`
	Active        bool
	RegisteredAt  time.Time
}

// TableName overrides GORM's default naming to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:            aggregate.ID().Bytes(),
		Name:          aggregate.Name(),
		Description:   aggregate.Description(),
		Price:         aggregate.Price(),
		StockQuantity: aggregate.StockQuantity(),
		Category:      aggregate.Category(),
		Active:        aggregate.IsActive(),
		RegisteredAt:  aggregate.RegisteredAt(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		id,
		dto.Name,
		dto.Description,
		dto.Price,
		dto.StockQuantity,
		dto.Category,
		dto.Active,
		dto.RegisteredAt,
	)
}
