package commands_test

import (
	"testing"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestNewChangeProductStockCommand_Success(t *testing.T) {
	productID := kernel.NewUUID()
	cmd, err := commands.NewChangeProductStockCommand(productID, 40)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	require.True(t, cmd.ProductID().IsEqual(productID))
	require.Equal(t, 40, cmd.StockQuantity())
}

func TestNewChangeProductStockCommand_ZeroIsAllowed(t *testing.T) {
	cmd, err := commands.NewChangeProductStockCommand(kernel.NewUUID(), 0)
	require.NoError(t, err)
	require.Equal(t, 0, cmd.StockQuantity())
}

func TestNewChangeProductStockCommand_NegativeQuantity(t *testing.T) {
	_, err := commands.NewChangeProductStockCommand(kernel.NewUUID(), -1)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestChangeProductStockCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.ChangeProductStockCommand
	require.Error(t, cmd.Validate())
}
