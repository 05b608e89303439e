package commands

import (
	"errors"

	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var (
	ErrCreateUserCommandIsNotConstructed = errors.New(
		"CreateUserCommand must be created via NewCreateUserCommand constructor",
	)
)

// CreateUserCommand represents a request to register a new user in the
// directory. Email must be unique; the handler checks before writing and
// the store's unique index backs it up.
type CreateUserCommand struct { //nolint:recvcheck //using for validation
	name  string
	email string
	phone string

	guard guard.ConstructorGuard
}

// NewCreateUserCommand creates a command to register a user.
// Name and email are required; phone is optional.
func NewCreateUserCommand(name string, email string, phone string) (CreateUserCommand, error) {
	cmd := CreateUserCommand{
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setEmail(email),
	); err != nil {
		return CreateUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

// Name returns the user's display name.
func (c CreateUserCommand) Name() string {
	return c.name
}

// Email returns the user's email address.
func (c CreateUserCommand) Email() string {
	return c.email
}

// Phone returns the optional phone number.
func (c CreateUserCommand) Phone() string {
	return c.phone
}

func (c *CreateUserCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateUserCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}
