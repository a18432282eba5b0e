package cart

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// ErrCartIsNotConstructed is returned when a Cart instance was not created
// through the NewCart or RestoreCart factory methods.
var ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart or RestoreCart constructor")

// Cart is the aggregate root owning an ordered sequence of cart lines.
// All line mutations go through the aggregate so the invariants of the lines
// (quantity >= 1, unique line identifiers) hold at every point.
//
// The cart never stores totals. An order summary is a pure function of the
// current lines and is recomputed by the pricing engine on every read.
type Cart struct {
	id            kernel.UUID
	lines         []*CartLine
	isConstructed bool
}

// NewCart creates an empty cart with the given identifier.
func NewCart(id kernel.UUID) (*Cart, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Cart{
		id:            id,
		lines:         make([]*CartLine, 0),
		isConstructed: true,
	}, nil
}

// RestoreCart reconstructs a cart from persistence with its stored lines.
// Line order is preserved.
func RestoreCart(id kernel.UUID, lines []*CartLine) (*Cart, error) {
	restored, err := NewCart(id)
	if err != nil {
		return nil, err
	}

	for _, line := range lines {
		if err = restored.AddLine(line); err != nil {
			return nil, err
		}
	}

	return restored, nil
}

// Validate ensures the cart was constructed through a factory method.
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

// ID returns the cart's unique identifier.
func (c *Cart) ID() kernel.UUID {
	return c.id
}

// Lines returns the cart lines in insertion order. The slice is a copy; the
// lines themselves are the aggregate's entities.
func (c *Cart) Lines() []*CartLine {
	lines := make([]*CartLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// AddLine appends a configured line to the cart. Line identifiers must be
// unique within the cart.
func (c *Cart) AddLine(line *CartLine) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := line.Validate(); err != nil {
		return err
	}

	for _, existing := range c.lines {
		if existing.IsEqual(line) {
			return errs.NewValueIsInvalidErrorWithCause(
				"line",
				fmt.Errorf("line %s already exists in cart %s", line.ID(), c.id),
			)
		}
	}

	c.lines = append(c.lines, line)
	return nil
}

// ChangeLineQuantity updates the quantity of an existing line. Quantities
// below 1 are rejected by the line itself with ErrInvalidQuantity.
func (c *Cart) ChangeLineQuantity(lineID kernel.UUID, quantity int) error {
	line, err := c.lineByID(lineID)
	if err != nil {
		return err
	}
	return line.ChangeQuantity(quantity)
}

// RemoveLine deletes a line from the cart. This is the explicit removal path;
// a quantity decrement never removes a line implicitly.
func (c *Cart) RemoveLine(lineID kernel.UUID) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := lineID.Validate(); err != nil {
		return err
	}

	for i, line := range c.lines {
		if line.ID().IsEqual(lineID) {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return nil
		}
	}

	return errs.NewObjectNotFoundError("cartLine", lineID.String())
}

// Clear removes every line, e.g. after the cart is turned into an order.
func (c *Cart) Clear() error {
	if err := c.Validate(); err != nil {
		return err
	}

	c.lines = c.lines[:0]
	return nil
}

func (c *Cart) lineByID(lineID kernel.UUID) (*CartLine, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := lineID.Validate(); err != nil {
		return nil, err
	}

	for _, line := range c.lines {
		if line.ID().IsEqual(lineID) {
			return line, nil
		}
	}

	return nil, errs.NewObjectNotFoundError("cartLine", lineID.String())
}
