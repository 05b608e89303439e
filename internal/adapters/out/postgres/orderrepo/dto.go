// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. It implements the repository pattern for the
// order aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order
// aggregates. The number column carries a unique index because the
// millisecond-clock number generator can collide under concurrency; the
// index turns a silent duplicate into a storage error.
type OrderDTO struct {
	ID         uuid.UUID           `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID           `gorm:"type:uuid;index"`
	Number     string              `gorm:"uniqueIndex"`
	TotalValue decimal.NullDecimal `gorm:"type:numeric(10,2)"`
	Status     int
	Notes      string
	PlacedAt   time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		UserID:     aggregate.UserID().Bytes(),
		Number:     aggregate.Number(),
		TotalValue: aggregate.TotalValue(),
		Status:     int(aggregate.Status()),
		Notes:      aggregate.Notes(),
		PlacedAt:   aggregate.PlacedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		userID,
		dto.Number,
		dto.TotalValue,
		order.Status(dto.Status),
		dto.Notes,
		dto.PlacedAt,
	)
}
