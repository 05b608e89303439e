package commands

import (
	"context"
	"fmt"

	"backoffice/internal/core/domain/model/user"
	"backoffice/internal/pkg/errs"
)

// UpdateUserCommandHandler overwrites a user's mutable fields.
type UpdateUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewUpdateUserCommandHandler creates a handler for UpdateUserCommand.
func NewUpdateUserCommandHandler(uowFactory UserUoWFactory) UpdateUserCommandHandler {
	return UpdateUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the user, verifies the new email is not taken by another user,
// applies the update, and persists it.
func (h *UpdateUserCommandHandler) Handle(ctx context.Context, cmd UpdateUserCommand) (*user.User, error) {
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

	if cmd.Email() != existing.Email() {
		taken, err := uow.UserRepository().ExistsByEmail(ctx, cmd.Email())
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, errs.NewValueIsInvalidErrorWithCause("email",
				fmt.Errorf("email %q is already registered", cmd.Email()))
		}
	}

	if err := existing.UpdateDetails(cmd.Name(), cmd.Email(), cmd.Phone(), cmd.Active()); err != nil {
		return nil, err
	}

	if err := uow.UserRepository().Update(ctx, existing); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}
