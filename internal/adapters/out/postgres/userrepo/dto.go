// Package userrepo provides data transfer objects and mapping functions
// for user persistence.
package userrepo

import (
	"time"

	"github.com/google/uuid"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/user"
)

// UserDTO represents the database structure for persisting user
// aggregates. The email column carries a unique index backing the
// application-level uniqueness check.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"index"`
	Email        string    `gorm:"uniqueIndex"`
	Phone        string
	Active       bool
	RegisteredAt time.Time
}

// TableName overrides GORM's default naming to use "users".
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Email:        aggregate.Email(),
		Phone:        aggregate.Phone(),
		Active:       aggregate.IsActive(),
		RegisteredAt: aggregate.RegisteredAt(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(
		id,
		dto.Name,
		dto.Email,
		dto.Phone,
		dto.Active,
		dto.RegisteredAt,
	)
}
