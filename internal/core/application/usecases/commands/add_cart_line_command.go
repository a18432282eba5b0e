package commands

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/cart"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrAddCartLineCommandIsNotConstructed = errors.New(
	"AddCartLineCommand must be created via NewAddCartLineCommand constructor",
)

// AddCartLineCommand represents a request to add one configured menu item to
// a cart: the item, a quantity, the chosen customizations and optional
// special instructions. The unit price is not part of the request; it is
// resolved from the catalog by the handler.
type AddCartLineCommand struct { //nolint:recvcheck //using for validation
	cartID              kernel.UUID
	menuItemID          kernel.UUID
	quantity            int
	selections          []cart.Selection
	specialInstructions string

	guard guard.ConstructorGuard
}

// NewAddCartLineCommand creates a command to add a line to a cart.
// Validates identifiers, requires a positive quantity and constructed
// selections. Membership of the selections in the item's customization
// groups is checked later against the catalog.
func NewAddCartLineCommand(
	cartID kernel.UUID,
	menuItemID kernel.UUID,
	quantity int,
	selections []cart.Selection,
	specialInstructions string,
) (AddCartLineCommand, error) {
	command := AddCartLineCommand{
		specialInstructions: specialInstructions,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCartID(cartID),
		command.setMenuItemID(menuItemID),
		command.setQuantity(quantity),
		command.setSelections(selections),
	); err != nil {
		return AddCartLineCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCartLineCommand) Validate() error {
	return c.guard.Validate(ErrAddCartLineCommandIsNotConstructed)
}

// CartID returns the identifier of the target cart.
func (c AddCartLineCommand) CartID() kernel.UUID {
	return c.cartID
}

// MenuItemID returns the identifier of the menu item to add.
func (c AddCartLineCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// Quantity returns the requested number of units.
func (c AddCartLineCommand) Quantity() int {
	return c.quantity
}

// Selections returns the chosen (group, option) pairs. The slice is a copy.
func (c AddCartLineCommand) Selections() []cart.Selection {
	selections := make([]cart.Selection, len(c.selections))
	copy(selections, c.selections)
	return selections
}

// SpecialInstructions returns the optional free-text instruction.
func (c AddCartLineCommand) SpecialInstructions() string {
	return c.specialInstructions
}

func (c *AddCartLineCommand) setCartID(cartID kernel.UUID) error {
	if err := cartID.Validate(); err != nil {
		return err
	}

	c.cartID = cartID
	return nil
}

func (c *AddCartLineCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	c.menuItemID = menuItemID
	return nil
}

func (c *AddCartLineCommand) setQuantity(quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("%w: got %d", cart.ErrInvalidQuantity, quantity)
	}

	c.quantity = quantity
	return nil
}

func (c *AddCartLineCommand) setSelections(selections []cart.Selection) error {
	for _, selection := range selections {
		if err := selection.Validate(); err != nil {
			return err
		}
	}

	c.selections = make([]cart.Selection, len(selections))
	copy(c.selections, selections)
	return nil
}
