package commands

import (
	"context"
)

// ChangeCartLineQuantityCommandHandler handles quantity updates on existing
// cart lines. The unit price snapshot of the line stays untouched; only the
// multiplier changes.
type ChangeCartLineQuantityCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewChangeCartLineQuantityCommandHandler creates a handler for quantity changes.
func NewChangeCartLineQuantityCommandHandler(uowFactory CartUoWFactory) ChangeCartLineQuantityCommandHandler {
	return ChangeCartLineQuantityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the quantity change. Fails with an ObjectNotFoundError
// when the cart or line does not exist.
func (h *ChangeCartLineQuantityCommandHandler) Handle(ctx context.Context, cmd ChangeCartLineQuantityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	aggregate, err := cartRepo.Get(ctx, cmd.CartID())
	if err != nil {
		return err
	}

	if err = aggregate.ChangeLineQuantity(cmd.LineID(), cmd.Quantity()); err != nil {
		return err
	}

	if err = cartRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
