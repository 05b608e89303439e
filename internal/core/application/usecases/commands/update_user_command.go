package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var (
	ErrUpdateUserCommandIsNotConstructed = errors.New(
		"UpdateUserCommand must be created via NewUpdateUserCommand constructor",
	)
)

// UpdateUserCommand represents a full update of a user's mutable fields.
type UpdateUserCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	name   string
	email  string
	phone  string
	active bool

	guard guard.ConstructorGuard
}

// NewUpdateUserCommand creates a command to overwrite a user's name, email,
// phone, and active flag.
func NewUpdateUserCommand(
	userID kernel.UUID,
	name string,
	email string,
	phone string,
	active bool,
) (UpdateUserCommand, error) {
	cmd := UpdateUserCommand{
		phone:  phone,
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setName(name),
		cmd.setEmail(email),
	); err != nil {
		return UpdateUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateUserCommand) Validate() error {
	return c.guard.Validate(ErrUpdateUserCommandIsNotConstructed)
}

// UserID returns the identifier of the user to update.
func (c UpdateUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Name returns the new display name.
func (c UpdateUserCommand) Name() string {
	return c.name
}

// Email returns the new email address.
func (c UpdateUserCommand) Email() string {
	return c.email
}

// Phone returns the new phone number.
func (c UpdateUserCommand) Phone() string {
	return c.phone
}

// Active returns the new active flag.
func (c UpdateUserCommand) Active() bool {
	return c.active
}

func (c *UpdateUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *UpdateUserCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *UpdateUserCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}
