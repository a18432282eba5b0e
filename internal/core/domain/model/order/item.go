package order

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// the NewItem constructor.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is the frozen snapshot of one cart line at checkout: the priced
// configuration as it was when the customer placed the order. Later catalog
// edits never change a placed order.
type Item struct { //nolint:recvcheck //using for validation
	menuItemID kernel.UUID
	name       string
	unitPrice  kernel.Money
	quantity   int
	lineTotal  kernel.Money

	guard guard.ConstructorGuard
}

// NewItem creates an order item with validation. The line total must equal
// unit price times quantity; a mismatch means the snapshot was tampered with
// upstream and is rejected.
func NewItem(
	menuItemID kernel.UUID,
	name string,
	unitPrice kernel.Money,
	quantity int,
	lineTotal kernel.Money,
) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setMenuItemID(menuItemID),
		item.setName(name),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	if err := item.setLineTotal(lineTotal); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item was created through the constructor.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// MenuItemID returns the identifier of the ordered menu item.
func (i Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Name returns the menu item name as it was at checkout.
func (i Item) Name() string {
	return i.name
}

// UnitPrice returns the per-unit price including selected options.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// LineTotal returns unit price times quantity.
func (i Item) LineTotal() kernel.Money {
	return i.lineTotal
}

func (i *Item) setMenuItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("menuItemID", err)
	}
	i.menuItemID = id
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	i.unitPrice = unitPrice
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setLineTotal(lineTotal kernel.Money) error {
	if err := lineTotal.Validate(); err != nil {
		return err
	}

	expected, err := i.unitPrice.MulInt(i.quantity)
	if err != nil {
		return err
	}

	equal, err := lineTotal.IsEqual(expected)
	if err != nil {
		return err
	}
	if !equal {
		return errs.NewValueIsInvalidErrorWithCause(
			"lineTotal",
			fmt.Errorf("%s does not equal %s x %d", lineTotal, i.unitPrice, i.quantity),
		)
	}

	i.lineTotal = lineTotal
	return nil
}
