package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var (
	ErrSetUserActiveCommandIsNotConstructed = errors.New(
		"SetUserActiveCommand must be created via NewSetUserActiveCommand constructor",
	)
)

// SetUserActiveCommand toggles a user account on or off.
type SetUserActiveCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	active bool

	guard guard.ConstructorGuard
}

// NewSetUserActiveCommand creates a command to activate or deactivate a user.
func NewSetUserActiveCommand(userID kernel.UUID, active bool) (SetUserActiveCommand, error) {
	cmd := SetUserActiveCommand{
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := cmd.setUserID(userID); err != nil {
		return SetUserActiveCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetUserActiveCommand) Validate() error {
	return c.guard.Validate(ErrSetUserActiveCommandIsNotConstructed)
}

// UserID returns the identifier of the user.
func (c SetUserActiveCommand) UserID() kernel.UUID {
	return c.userID
}

// Active returns the desired active flag.
func (c SetUserActiveCommand) Active() bool {
	return c.active
}

func (c *SetUserActiveCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}
