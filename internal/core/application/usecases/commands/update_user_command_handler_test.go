package commands_test

import (
	"testing"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/user"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func existingUser(t *testing.T) *user.User {
	t.Helper()
	u, err := user.NewUser(kernel.NewUUID(), "Alice", "alice@example.com", "+15550100")
	require.NoError(t, err)
	return u
}

func TestUpdateUserCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	existing := existingUser(t)
	cmd, err := commands.NewUpdateUserCommand(
		existing.ID(), "Alice Smith", "alice.smith@example.com", "", false)
	require.NoError(t, err)

	repo := new(MockUserRepository)
	uow := new(MockUserUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("ExistsByEmail", mock.Anything, "alice.smith@example.com").Return(false, nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("Update", mock.Anything, mock.AnythingOfType("*user.User")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateUserCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, "Alice Smith", updated.Name())
	require.Equal(t, "alice.smith@example.com", updated.Email())
	require.Empty(t, updated.Phone())
	require.False(t, updated.IsActive())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateUserCommandHandler_Handle_EmailTakenByAnotherUser(t *testing.T) {
	ctx := t.Context()
	existing := existingUser(t)
	cmd, err := commands.NewUpdateUserCommand(
		existing.ID(), "Alice", "bob@example.com", "", true)
	require.NoError(t, err)

	repo := new(MockUserRepository)
	uow := new(MockUserUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("ExistsByEmail", mock.Anything, "bob@example.com").Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateUserCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateUserCommandHandler_Handle_SameEmailSkipsUniquenessCheck(t *testing.T) {
	ctx := t.Context()
	existing := existingUser(t)
	cmd, err := commands.NewUpdateUserCommand(
		existing.ID(), "Alice", "alice@example.com", "+15550199", true)
	require.NoError(t, err)

	repo := new(MockUserRepository)
	uow := new(MockUserUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("Update", mock.Anything, mock.AnythingOfType("*user.User")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateUserCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, "+15550199", updated.Phone())
	repo.AssertNotCalled(t, "ExistsByEmail", mock.Anything, mock.Anything)
}

func TestUpdateUserCommandHandler_Handle_UserNotFound(t *testing.T) {
	ctx := t.Context()
	unknownID := kernel.NewUUID()
	cmd, err := commands.NewUpdateUserCommand(unknownID, "Ghost", "ghost@example.com", "", true)
	require.NoError(t, err)

	repo := new(MockUserRepository)
	uow := new(MockUserUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, unknownID).
			Return(nil, errs.NewObjectNotFoundError("userID", unknownID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateUserCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
