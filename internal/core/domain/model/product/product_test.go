package product_test

import (
	"testing"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/product"
	"backoffice/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProduct(t *testing.T) *product.Product {
	t.Helper()

	p, err := product.NewProduct(
		kernel.NewUUID(),
		"Mechanical Keyboard",
		"tenkeyless, brown switches",
		decimal.RequireFromString("349.90"),
		12,
		"peripherals",
	)
	require.NoError(t, err)
	return p
}

func TestNewProduct(t *testing.T) {
	t.Run("should create an active product", func(t *testing.T) {
		p := newTestProduct(t)

		require.NoError(t, p.Validate())
		assert.True(t, p.IsActive())
		assert.Equal(t, 12, p.StockQuantity())
		assert.False(t, p.RegisteredAt().IsZero())
	})

	t.Run("should reject negative price", func(t *testing.T) {
		_, err := product.NewProduct(
			kernel.NewUUID(), "Keyboard", "", decimal.RequireFromString("-1"), 0, "",
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject negative stock", func(t *testing.T) {
		_, err := product.NewProduct(
			kernel.NewUUID(), "Keyboard", "", decimal.Zero, -5, "",
		)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestProduct_ChangeStock(t *testing.T) {
	t.Run("should set the new quantity", func(t *testing.T) {
		p := newTestProduct(t)

		require.NoError(t, p.ChangeStock(0))
		assert.Equal(t, 0, p.StockQuantity())
	})

	t.Run("should reject negative quantity and keep state", func(t *testing.T) {
		p := newTestProduct(t)

		err := p.ChangeStock(-1)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Equal(t, 12, p.StockQuantity())
	})
}

func TestProduct_UpdateDetails(t *testing.T) {
	t.Run("should overwrite mutable fields only", func(t *testing.T) {
		p := newTestProduct(t)
		id := p.ID()
		registeredAt := p.RegisteredAt()

		err := p.UpdateDetails("Keyboard v2", "new", decimal.RequireFromString("299.00"), 5, "sale", false)

		require.NoError(t, err)
		assert.Equal(t, "Keyboard v2", p.Name())
		assert.False(t, p.IsActive())
		assert.True(t, p.ID().IsEqual(id))
		assert.Equal(t, registeredAt, p.RegisteredAt())
	})
}
