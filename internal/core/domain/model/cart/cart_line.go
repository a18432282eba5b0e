package cart

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var (
	// ErrCartLineIsNotConstructed is returned when a CartLine was not created
	// through the NewCartLine factory method.
	ErrCartLineIsNotConstructed = errors.New("CartLine must be created via NewCartLine constructor")

	// ErrInvalidQuantity is returned when a quantity below 1 is requested.
	// The domain never clamps: whether to remove the line instead is the
	// caller's decision.
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
)

// CartLine is one configured, quantified purchase intent for a single menu
// item: the item reference, the chosen customizations, a quantity and an
// optional free-text special instruction.
//
// The unit price is a snapshot resolved by the pricing engine when the line
// is created (base price plus selected option deltas). The line total is
// always derived from unit price and quantity, never stored.
type CartLine struct {
	id                  kernel.UUID
	menuItemID          kernel.UUID
	menuItemName        string
	unitPrice           kernel.Money
	quantity            int
	selections          []Selection
	specialInstructions string
	isConstructed       bool
}

// NewCartLine creates a CartLine with validation.
//
// The selections must be constructed and reference distinct customization
// groups (at most one option per group). Special instructions are optional
// free text passed through untouched.
func NewCartLine(
	id kernel.UUID,
	menuItemID kernel.UUID,
	menuItemName string,
	unitPrice kernel.Money,
	quantity int,
	selections []Selection,
	specialInstructions string,
) (*CartLine, error) {
	line := &CartLine{
		specialInstructions: specialInstructions,
		isConstructed:       true,
	}

	if err := errors.Join(
		line.setID(id),
		line.setMenuItemID(menuItemID),
		line.setMenuItemName(menuItemName),
		line.setUnitPrice(unitPrice),
		line.setQuantity(quantity),
		line.setSelections(selections),
	); err != nil {
		return nil, err
	}

	return line, nil
}

// Validate ensures the CartLine was constructed through NewCartLine.
func (l *CartLine) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrCartLineIsNotConstructed
	}
	return nil
}

// IsEqual compares two cart lines by identifier.
func (l *CartLine) IsEqual(other *CartLine) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// ID returns the cart line's unique identifier.
func (l *CartLine) ID() kernel.UUID {
	return l.id
}

// MenuItemID returns the identifier of the referenced menu item.
func (l *CartLine) MenuItemID() kernel.UUID {
	return l.menuItemID
}

// MenuItemName returns the name snapshot taken when the line was created.
func (l *CartLine) MenuItemName() string {
	return l.menuItemName
}

// UnitPrice returns the priced-per-unit snapshot for this configuration.
func (l *CartLine) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Quantity returns the number of units, always at least 1.
func (l *CartLine) Quantity() int {
	return l.quantity
}

// Selections returns the chosen (group, option) pairs. The returned slice is
// a copy.
func (l *CartLine) Selections() []Selection {
	selections := make([]Selection, len(l.selections))
	copy(selections, l.selections)
	return selections
}

// SpecialInstructions returns the optional free-text instruction.
func (l *CartLine) SpecialInstructions() string {
	return l.specialInstructions
}

// LineTotal returns unit price multiplied by quantity.
func (l *CartLine) LineTotal() (kernel.Money, error) {
	if err := l.Validate(); err != nil {
		return kernel.Money{}, err
	}
	return l.unitPrice.MulInt(l.quantity)
}

// ChangeQuantity updates the quantity. A requested quantity below 1 fails
// with ErrInvalidQuantity; removing the line instead is caller policy.
func (l *CartLine) ChangeQuantity(quantity int) error {
	if err := l.Validate(); err != nil {
		return err
	}
	return l.setQuantity(quantity)
}

func (l *CartLine) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *CartLine) setMenuItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("menuItemID", err)
	}
	l.menuItemID = id
	return nil
}

func (l *CartLine) setMenuItemName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("menuItemName")
	}
	l.menuItemName = name
	return nil
}

func (l *CartLine) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	l.unitPrice = unitPrice
	return nil
}

func (l *CartLine) setQuantity(quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}
	l.quantity = quantity
	return nil
}

func (l *CartLine) setSelections(selections []Selection) error {
	seen := make(map[kernel.UUID]struct{}, len(selections))
	for _, selection := range selections {
		if err := selection.Validate(); err != nil {
			return err
		}
		if _, ok := seen[selection.GroupID()]; ok {
			return errs.NewValueIsInvalidErrorWithCause(
				"selections",
				fmt.Errorf("more than one option selected for group %s", selection.GroupID()),
			)
		}
		seen[selection.GroupID()] = struct{}{}
	}

	l.selections = make([]Selection, len(selections))
	copy(l.selections, selections)
	return nil
}
