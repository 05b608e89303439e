package ports

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for the user directory.
// It serves both the directory's own CRUD and the existence checks the
// order lifecycle performs before writing.
type UserRepository interface {
	// Add persists a new user. Fails if the email is already registered.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by its unique identifier.
	// Returns an ObjectNotFoundError when no such user exists.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves a user by its unique email address.
	GetByEmail(ctx context.Context, email string) (*user.User, error)

	// GetAll retrieves every user.
	GetAll(ctx context.Context) ([]*user.User, error)

	// GetAllActive retrieves users with the active flag set.
	GetAllActive(ctx context.Context) ([]*user.User, error)

	// Search retrieves users whose name or email contains the term,
	// case-insensitively.
	Search(ctx context.Context, term string) ([]*user.User, error)

	// Exists reports whether a user with the given identifier exists.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)

	// ExistsByEmail reports whether the email is already registered.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// CountActive counts users with the active flag set.
	CountActive(ctx context.Context) (int64, error)

	// Delete permanently removes the user. Returns an ObjectNotFoundError
	// when no such user exists.
	Delete(ctx context.Context, id kernel.UUID) error
}
