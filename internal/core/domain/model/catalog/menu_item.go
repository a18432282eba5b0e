package catalog

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// ErrMenuItemIsNotConstructed is returned when a MenuItem instance was not
// created through the NewMenuItem factory method.
var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")

// MenuItem represents one orderable dish in a restaurant's menu.
//
// Invariants:
//   - Must have a valid unique identifier and owning restaurant identifier
//   - Name and category label are required
//   - Base price is a constructed, non-negative Money
//   - Can only be created through NewMenuItem
//
// MenuItem is reference data: immutable once loaded, shared by every cart
// that orders it.
type MenuItem struct {
	id            kernel.UUID
	restaurantID  kernel.UUID
	name          string
	description   string
	category      string
	basePrice     kernel.Money
	isConstructed bool
}

// NewMenuItem creates a MenuItem with validation. The description is
// optional; every other field is required.
func NewMenuItem(
	id kernel.UUID,
	restaurantID kernel.UUID,
	name string,
	description string,
	category string,
	basePrice kernel.Money,
) (*MenuItem, error) {
	item := &MenuItem{
		description:   description,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setRestaurantID(restaurantID),
		item.setName(name),
		item.setCategory(category),
		item.setBasePrice(basePrice),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the MenuItem was constructed through NewMenuItem.
func (i *MenuItem) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

// IsEqual compares two menu items by identifier.
func (i *MenuItem) IsEqual(other *MenuItem) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the menu item's unique identifier.
func (i *MenuItem) ID() kernel.UUID {
	return i.id
}

// RestaurantID returns the identifier of the owning restaurant.
func (i *MenuItem) RestaurantID() kernel.UUID {
	return i.restaurantID
}

// Name returns the display name of the menu item.
func (i *MenuItem) Name() string {
	return i.name
}

// Description returns the optional description text.
func (i *MenuItem) Description() string {
	return i.description
}

// Category returns the category label, e.g. "Pizza" or "Sides".
func (i *MenuItem) Category() string {
	return i.category
}

// BasePrice returns the price of the item without customizations.
func (i *MenuItem) BasePrice() kernel.Money {
	return i.basePrice
}

func (i *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *MenuItem) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurantID", err)
	}
	i.restaurantID = id
	return nil
}

func (i *MenuItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *MenuItem) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	i.category = category
	return nil
}

func (i *MenuItem) setBasePrice(basePrice kernel.Money) error {
	if err := basePrice.Validate(); err != nil {
		return err
	}
	if basePrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"basePrice",
			fmt.Errorf("%s is negative", basePrice),
		)
	}
	i.basePrice = basePrice
	return nil
}
