package commands

import (
	"context"

	"backoffice/internal/core/domain/model/product"
)

// ChangeProductStockCommandHandler sets a product's stock counter.
type ChangeProductStockCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewChangeProductStockCommandHandler creates a handler for ChangeProductStockCommand.
func NewChangeProductStockCommandHandler(uowFactory ProductUoWFactory) ChangeProductStockCommandHandler {
	return ChangeProductStockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the product, applies the new stock level, and persists it.
func (h *ChangeProductStockCommandHandler) Handle(
	ctx context.Context, cmd ChangeProductStockCommand,
) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	existing, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	if err := existing.ChangeStock(cmd.StockQuantity()); err != nil {
		return nil, err
	}

	if err := uow.ProductRepository().Update(ctx, existing); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}
