package commands

import (
	"context"

	"backoffice/internal/core/domain/model/product"
)

// SetProductActiveCommandHandler toggles a product's catalog visibility.
type SetProductActiveCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewSetProductActiveCommandHandler creates a handler for SetProductActiveCommand.
func NewSetProductActiveCommandHandler(uowFactory ProductUoWFactory) SetProductActiveCommandHandler {
	return SetProductActiveCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle flips the product's active flag and persists the change.
func (h *SetProductActiveCommandHandler) Handle(
	ctx context.Context, cmd SetProductActiveCommand,
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

	existing.SetActive(cmd.Active())

	if err := uow.ProductRepository().Update(ctx, existing); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}
