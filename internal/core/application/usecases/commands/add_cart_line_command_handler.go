package commands

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/cart"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"
)

// AddCartLineCommandHandler handles the business logic for adding a line to
// a cart. Resolves the menu item and its customization groups from the
// catalog, prices the configuration through the pricing engine and persists
// the updated cart. A cart that does not exist yet is created on first add.
type AddCartLineCommandHandler struct {
	uowFactory    CartUoWFactory
	pricingEngine services.PricingEngine
}

// NewAddCartLineCommandHandler creates a handler for cart line additions.
func NewAddCartLineCommandHandler(
	uowFactory CartUoWFactory,
	pricingEngine services.PricingEngine,
) AddCartLineCommandHandler {
	return AddCartLineCommandHandler{
		uowFactory:    uowFactory,
		pricingEngine: pricingEngine,
	}
}

// Handle processes the add command. The line's unit price is snapshotted at
// add time from the catalog base price plus selected option deltas; an
// invalid selection fails the whole command, nothing is persisted.
func (h *AddCartLineCommandHandler) Handle(ctx context.Context, cmd AddCartLineCommand) error {
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

	catalogRepo := uow.CatalogRepository()
	item, err := catalogRepo.GetMenuItem(ctx, cmd.MenuItemID())
	if err != nil {
		return err
	}

	groups, err := catalogRepo.GetCustomizationGroups(ctx, item.ID())
	if err != nil {
		return err
	}

	unitPrice, _, err := h.pricingEngine.PriceLine(item, groups, cmd.Quantity(), cmd.Selections())
	if err != nil {
		return err
	}

	cartRepo := uow.CartRepository()
	aggregate, err := cartRepo.Get(ctx, cmd.CartID())
	isNewCart := false
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}

		aggregate, err = cart.NewCart(cmd.CartID())
		if err != nil {
			return err
		}
		isNewCart = true
	}

	line, err := cart.NewCartLine(
		kernel.NewUUID(),
		item.ID(),
		item.Name(),
		unitPrice,
		cmd.Quantity(),
		cmd.Selections(),
		cmd.SpecialInstructions(),
	)
	if err != nil {
		return err
	}

	if err = aggregate.AddLine(line); err != nil {
		return err
	}

	if isNewCart {
		err = cartRepo.Add(ctx, aggregate)
	} else {
		err = cartRepo.Update(ctx, aggregate)
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
