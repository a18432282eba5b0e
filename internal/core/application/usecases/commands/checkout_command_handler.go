package commands

import (
	"context"
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"

	"github.com/shopspring/decimal"
)

// ErrCartIsEmpty is returned when checkout is requested for a cart without
// lines. An empty cart still prices to delivery fee alone, but it cannot be
// turned into an order.
var ErrCartIsEmpty = errors.New("cannot checkout an empty cart")

// CheckoutCommandHandler handles the business logic for checkout: it prices
// the cart one final time, freezes the result into an immutable order
// snapshot and clears the cart. Order creation and cart deletion commit in
// the same transaction.
//
// The delivery fee and tax rate are pricing policy fixed at composition time,
// not part of the request.
type CheckoutCommandHandler struct {
	uowFactory    UoWFactory
	pricingEngine services.PricingEngine
	deliveryFee   kernel.Money
	taxRate       decimal.Decimal
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
func NewCheckoutCommandHandler(
	uowFactory UoWFactory,
	pricingEngine services.PricingEngine,
	deliveryFee kernel.Money,
	taxRate decimal.Decimal,
) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory:    uowFactory,
		pricingEngine: pricingEngine,
		deliveryFee:   deliveryFee,
		taxRate:       taxRate,
	}
}

// Handle processes the checkout command. The stored totals are exactly the
// engine's output for the cart's current lines; nothing is recomputed or
// adjusted afterwards.
func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) error {
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

	if aggregate.IsEmpty() {
		return ErrCartIsEmpty
	}

	lines := aggregate.Lines()
	totals, err := h.pricingEngine.ComputeTotals(lines, h.deliveryFee, h.taxRate)
	if err != nil {
		return err
	}

	items := make([]order.Item, 0, len(lines))
	for _, line := range lines {
		lineTotal, totalErr := line.LineTotal()
		if totalErr != nil {
			return totalErr
		}

		item, itemErr := order.NewItem(
			line.MenuItemID(),
			line.MenuItemName(),
			line.UnitPrice(),
			line.Quantity(),
			lineTotal,
		)
		if itemErr != nil {
			return itemErr
		}
		items = append(items, item)
	}

	placed, err := order.NewOrder(
		cmd.OrderID(),
		items,
		totals.Subtotal,
		totals.DeliveryFee,
		totals.Tax,
		totals.Total,
		cmd.DeliveryAddress(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return err
	}

	if err = cartRepo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
