package commands

import (
	"context"

	"backoffice/internal/core/domain/model/user"
)

// SetUserActiveCommandHandler activates or deactivates a user account.
type SetUserActiveCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewSetUserActiveCommandHandler creates a handler for SetUserActiveCommand.
func NewSetUserActiveCommandHandler(uowFactory UserUoWFactory) SetUserActiveCommandHandler {
	return SetUserActiveCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle flips the user's active flag and persists the change.
func (h *SetUserActiveCommandHandler) Handle(ctx context.Context, cmd SetUserActiveCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	existing, err := uow.UserRepository().Get(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}

	existing.SetActive(cmd.Active())

	if err := uow.UserRepository().Update(ctx, existing); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}
