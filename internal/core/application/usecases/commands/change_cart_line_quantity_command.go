package commands

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/cart"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrChangeCartLineQuantityCommandIsNotConstructed = errors.New(
	"ChangeCartLineQuantityCommand must be created via NewChangeCartLineQuantityCommand constructor",
)

// ChangeCartLineQuantityCommand represents a request to set a new quantity
// on an existing cart line. Quantities below 1 are rejected here already;
// removing a line is a separate, explicit command.
type ChangeCartLineQuantityCommand struct { //nolint:recvcheck //using for validation
	cartID   kernel.UUID
	lineID   kernel.UUID
	quantity int

	guard guard.ConstructorGuard
}

// NewChangeCartLineQuantityCommand creates a command to change a line quantity.
func NewChangeCartLineQuantityCommand(
	cartID kernel.UUID,
	lineID kernel.UUID,
	quantity int,
) (ChangeCartLineQuantityCommand, error) {
	command := ChangeCartLineQuantityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCartID(cartID),
		command.setLineID(lineID),
		command.setQuantity(quantity),
	); err != nil {
		return ChangeCartLineQuantityCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeCartLineQuantityCommand) Validate() error {
	return c.guard.Validate(ErrChangeCartLineQuantityCommandIsNotConstructed)
}

// CartID returns the identifier of the target cart.
func (c ChangeCartLineQuantityCommand) CartID() kernel.UUID {
	return c.cartID
}

// LineID returns the identifier of the line to change.
func (c ChangeCartLineQuantityCommand) LineID() kernel.UUID {
	return c.lineID
}

// Quantity returns the requested new quantity, always at least 1.
func (c ChangeCartLineQuantityCommand) Quantity() int {
	return c.quantity
}

func (c *ChangeCartLineQuantityCommand) setCartID(cartID kernel.UUID) error {
	if err := cartID.Validate(); err != nil {
		return err
	}

	c.cartID = cartID
	return nil
}

func (c *ChangeCartLineQuantityCommand) setLineID(lineID kernel.UUID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}

	c.lineID = lineID
	return nil
}

func (c *ChangeCartLineQuantityCommand) setQuantity(quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("%w: got %d", cart.ErrInvalidQuantity, quantity)
	}

	c.quantity = quantity
	return nil
}
