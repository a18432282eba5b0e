package services

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/cart"
	"ordering/internal/core/domain/model/catalog"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrInvalidSelection is returned when a customization selection references a
// group that does not belong to the menu item, an option that does not belong
// to its group, or a second option for an already-selected group. A selection
// like this should never come out of a catalog-driven UI, but the engine
// rejects it rather than compute a wrong total.
var ErrInvalidSelection = errors.New("selection does not match the item's customization groups")

// Totals is the derived pricing breakdown for a set of cart lines. It is a
// plain value ready for display formatting; it is never stored and always
// recomputed from the current lines.
type Totals struct {
	Subtotal    kernel.Money
	DeliveryFee kernel.Money
	Tax         kernel.Money
	Total       kernel.Money
}

// PricingEngine is a stateless domain service implementing the order pricing
// arithmetic over immutable catalog data.
//
// Guarantees:
//   - All monetary arithmetic runs in integer cents; rounding happens exactly
//     once, when the tax rate is applied to the aggregate subtotal
//   - Computation is deterministic and side-effect free: the same lines
//     always produce the same totals
//   - Invalid input is rejected, never silently corrected
type PricingEngine struct{}

// NewPricingEngine creates a new PricingEngine instance.
func NewPricingEngine() PricingEngine {
	return PricingEngine{}
}

// PriceLine prices one configured line: unit price is the item's base price
// plus the price deltas of the selected options, line total is unit price
// times quantity.
//
// The groups are the customization groups available for the item, as resolved
// from the catalog. Every selection is validated for membership against them.
//
// Errors:
//   - cart.ErrInvalidQuantity for a quantity below 1 (never clamped)
//   - ErrInvalidSelection for a selection outside the item's groups
func (e PricingEngine) PriceLine(
	item *catalog.MenuItem,
	groups []*catalog.CustomizationGroup,
	quantity int,
	selections []cart.Selection,
) (kernel.Money, kernel.Money, error) {
	if err := item.Validate(); err != nil {
		return kernel.Money{}, kernel.Money{}, err
	}

	if quantity < 1 {
		return kernel.Money{}, kernel.Money{}, fmt.Errorf("%w: got %d", cart.ErrInvalidQuantity, quantity)
	}

	groupsByID := make(map[kernel.UUID]*catalog.CustomizationGroup, len(groups))
	for _, group := range groups {
		if err := group.Validate(); err != nil {
			return kernel.Money{}, kernel.Money{}, err
		}
		if !group.MenuItemID().IsEqual(item.ID()) {
			return kernel.Money{}, kernel.Money{}, errs.NewValueIsInvalidErrorWithCause(
				"groups",
				fmt.Errorf("group %s belongs to item %s, not %s", group.ID(), group.MenuItemID(), item.ID()),
			)
		}
		groupsByID[group.ID()] = group
	}

	unitPrice := item.BasePrice()
	selectedGroups := make(map[kernel.UUID]struct{}, len(selections))

	for _, selection := range selections {
		if err := selection.Validate(); err != nil {
			return kernel.Money{}, kernel.Money{}, err
		}

		group, ok := groupsByID[selection.GroupID()]
		if !ok {
			return kernel.Money{}, kernel.Money{}, fmt.Errorf(
				"%w: group %s is not available for item %s",
				ErrInvalidSelection, selection.GroupID(), item.ID(),
			)
		}

		if _, already := selectedGroups[selection.GroupID()]; already {
			return kernel.Money{}, kernel.Money{}, fmt.Errorf(
				"%w: more than one option selected for group %s",
				ErrInvalidSelection, selection.GroupID(),
			)
		}
		selectedGroups[selection.GroupID()] = struct{}{}

		option, err := group.OptionByID(selection.OptionID())
		if err != nil {
			return kernel.Money{}, kernel.Money{}, fmt.Errorf(
				"%w: option %s is not part of group %s",
				ErrInvalidSelection, selection.OptionID(), selection.GroupID(),
			)
		}

		unitPrice, err = unitPrice.Add(option.PriceDelta())
		if err != nil {
			return kernel.Money{}, kernel.Money{}, err
		}
	}

	lineTotal, err := unitPrice.MulInt(quantity)
	if err != nil {
		return kernel.Money{}, kernel.Money{}, err
	}

	return unitPrice, lineTotal, nil
}

// ComputeTotals folds priced cart lines into an order summary.
//
// subtotal is the exact sum of line totals; tax is the tax rate applied once
// to the aggregate subtotal and rounded half-up to the cent (never per line,
// which would produce a different, non-reproducible total); total is
// subtotal + delivery fee + tax.
//
// An empty line set yields subtotal 0, tax 0 and total equal to the delivery
// fee. Blocking checkout on an empty cart is the caller's responsibility.
func (e PricingEngine) ComputeTotals(
	lines []*cart.CartLine,
	deliveryFee kernel.Money,
	taxRate decimal.Decimal,
) (Totals, error) {
	if err := deliveryFee.Validate(); err != nil {
		return Totals{}, err
	}
	if taxRate.IsNegative() {
		return Totals{}, errs.NewValueIsInvalidErrorWithCause(
			"taxRate",
			fmt.Errorf("%s is negative", taxRate),
		)
	}

	subtotal := kernel.ZeroMoney()
	for _, line := range lines {
		lineTotal, err := line.LineTotal()
		if err != nil {
			return Totals{}, err
		}

		subtotal, err = subtotal.Add(lineTotal)
		if err != nil {
			return Totals{}, err
		}
	}

	tax, err := subtotal.ApplyRate(taxRate)
	if err != nil {
		return Totals{}, err
	}

	total, err := subtotal.Add(deliveryFee)
	if err != nil {
		return Totals{}, err
	}
	total, err = total.Add(tax)
	if err != nil {
		return Totals{}, err
	}

	return Totals{
		Subtotal:    subtotal,
		DeliveryFee: deliveryFee,
		Tax:         tax,
		Total:       total,
	}, nil
}
