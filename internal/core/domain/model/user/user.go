package user

import (
	"errors"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

// User is an entry in the user directory. Orders reference users by id;
// the directory owns name, contact data, and the active flag.
//
// Email addresses are unique across the directory; the application layer
// checks this before writes and the store enforces it with a unique index.
type User struct {
	id           kernel.UUID
	name         string
	email        string
	phone        string
	active       bool
	registeredAt time.Time

	isConstructed bool
}

// NewUser creates an active user with the registration timestamp set to
// now. Name and email are required; phone is optional.
func NewUser(id kernel.UUID, name string, email string, phone string) (*User, error) {
	u := &User{
		phone:         phone,
		active:        true,
		registeredAt:  time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a User from persisted state.
func RestoreUser(
	id kernel.UUID,
	name string,
	email string,
	phone string,
	active bool,
	registeredAt time.Time,
) (*User, error) {
	u := &User{
		phone:         phone,
		active:        active,
		registeredAt:  registeredAt,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}

	return nil
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Name returns the user's display name.
func (u *User) Name() string {
	return u.name
}

// Email returns the user's unique email address.
func (u *User) Email() string {
	return u.email
}

// Phone returns the user's phone number, possibly empty.
func (u *User) Phone() string {
	return u.phone
}

// IsActive reports whether the user is active.
func (u *User) IsActive() bool {
	return u.active
}

// RegisteredAt returns the registration timestamp.
func (u *User) RegisteredAt() time.Time {
	return u.registeredAt
}

// UpdateDetails overwrites name, email, phone, and the active flag.
// The identifier and registration timestamp never change.
func (u *User) UpdateDetails(name string, email string, phone string, active bool) error {
	if err := errors.Join(
		u.setName(name),
		u.setEmail(email),
	); err != nil {
		return err
	}

	u.phone = phone
	u.active = active
	return nil
}

// SetActive toggles the active flag.
func (u *User) SetActive(active bool) {
	u.active = active
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	u.email = email
	return nil
}
