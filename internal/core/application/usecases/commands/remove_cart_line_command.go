package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrRemoveCartLineCommandIsNotConstructed = errors.New(
	"RemoveCartLineCommand must be created via NewRemoveCartLineCommand constructor",
)

// RemoveCartLineCommand represents an explicit request to delete one line
// from a cart. This is the only way a line leaves a cart; a quantity change
// never removes it implicitly.
type RemoveCartLineCommand struct { //nolint:recvcheck //using for validation
	cartID kernel.UUID
	lineID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveCartLineCommand creates a command to remove a cart line.
func NewRemoveCartLineCommand(cartID kernel.UUID, lineID kernel.UUID) (RemoveCartLineCommand, error) {
	command := RemoveCartLineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCartID(cartID),
		command.setLineID(lineID),
	); err != nil {
		return RemoveCartLineCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCartLineCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartLineCommandIsNotConstructed)
}

// CartID returns the identifier of the target cart.
func (c RemoveCartLineCommand) CartID() kernel.UUID {
	return c.cartID
}

// LineID returns the identifier of the line to remove.
func (c RemoveCartLineCommand) LineID() kernel.UUID {
	return c.lineID
}

func (c *RemoveCartLineCommand) setCartID(cartID kernel.UUID) error {
	if err := cartID.Validate(); err != nil {
		return err
	}

	c.cartID = cartID
	return nil
}

func (c *RemoveCartLineCommand) setLineID(lineID kernel.UUID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}

	c.lineID = lineID
	return nil
}
