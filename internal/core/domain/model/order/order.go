package order

import (
	"errors"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order represents a placed order: an immutable priced snapshot of a cart at
// checkout plus the externally supplied fulfillment status.
//
// Invariants:
//   - Must have a valid unique identifier and at least one item
//   - subtotal equals the sum of item line totals (no item skipped or
//     double-counted)
//   - total equals subtotal + delivery fee + tax
//   - Status is always one of the valid enumeration values
type Order struct {
	id              kernel.UUID
	items           []Item
	subtotal        kernel.Money
	deliveryFee     kernel.Money
	tax             kernel.Money
	total           kernel.Money
	status          Status
	deliveryAddress string
	placedAt        time.Time
	isConstructed   bool
}

// NewOrder creates a placed order from a priced cart snapshot.
// Totals come from the pricing engine; this constructor re-checks their
// internal consistency so a corrupted snapshot can never be persisted.
func NewOrder(
	id kernel.UUID,
	items []Item,
	subtotal kernel.Money,
	deliveryFee kernel.Money,
	tax kernel.Money,
	total kernel.Money,
	deliveryAddress string,
	placedAt time.Time,
) (*Order, error) {
	return newOrder(id, items, subtotal, deliveryFee, tax, total, Placed, deliveryAddress, placedAt)
}

// RestoreOrder reconstructs an order from persistence, including its stored
// status. The same invariants as NewOrder apply.
func RestoreOrder(
	id kernel.UUID,
	items []Item,
	subtotal kernel.Money,
	deliveryFee kernel.Money,
	tax kernel.Money,
	total kernel.Money,
	status Status,
	deliveryAddress string,
	placedAt time.Time,
) (*Order, error) {
	return newOrder(id, items, subtotal, deliveryFee, tax, total, status, deliveryAddress, placedAt)
}

func newOrder(
	id kernel.UUID,
	items []Item,
	subtotal kernel.Money,
	deliveryFee kernel.Money,
	tax kernel.Money,
	total kernel.Money,
	status Status,
	deliveryAddress string,
	placedAt time.Time,
) (*Order, error) {
	o := &Order{
		deliveryAddress: deliveryAddress,
		placedAt:        placedAt,
		isConstructed:   true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setItems(items),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	if err := o.setTotals(subtotal, deliveryFee, tax, total); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was constructed through a factory method.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Items returns the ordered item snapshots. The slice is a copy.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Subtotal returns the sum of item line totals.
func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

// DeliveryFee returns the delivery fee applied at checkout.
func (o *Order) DeliveryFee() kernel.Money {
	return o.deliveryFee
}

// Tax returns the tax amount applied once to the aggregate subtotal.
func (o *Order) Tax() kernel.Money {
	return o.tax
}

// Total returns subtotal + delivery fee + tax.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Status returns the externally supplied fulfillment status.
func (o *Order) Status() Status {
	return o.status
}

// DeliveryAddress returns the address chosen at checkout.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// PlacedAt returns the checkout timestamp.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// ChangeStatus records a status reported by the fulfillment side.
// Only membership of the value is validated; the progression itself is owned
// externally, so any valid status may be recorded at any time.
func (o *Order) ChangeStatus(status Status) error {
	if err := o.Validate(); err != nil {
		return err
	}
	return o.setStatus(status)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setTotals(subtotal, deliveryFee, tax, total kernel.Money) error {
	if err := errors.Join(
		subtotal.Validate(),
		deliveryFee.Validate(),
		tax.Validate(),
		total.Validate(),
	); err != nil {
		return err
	}

	expectedSubtotal := kernel.ZeroMoney()
	var err error
	for _, item := range o.items {
		expectedSubtotal, err = expectedSubtotal.Add(item.LineTotal())
		if err != nil {
			return err
		}
	}

	if equal, eqErr := subtotal.IsEqual(expectedSubtotal); eqErr != nil || !equal {
		if eqErr != nil {
			return eqErr
		}
		return errs.NewValueIsInvalidErrorWithCause(
			"subtotal",
			fmt.Errorf("%s does not equal the sum of line totals %s", subtotal, expectedSubtotal),
		)
	}

	expectedTotal, err := subtotal.Add(deliveryFee)
	if err != nil {
		return err
	}
	expectedTotal, err = expectedTotal.Add(tax)
	if err != nil {
		return err
	}

	if equal, eqErr := total.IsEqual(expectedTotal); eqErr != nil || !equal {
		if eqErr != nil {
			return eqErr
		}
		return errs.NewValueIsInvalidErrorWithCause(
			"total",
			fmt.Errorf("%s does not equal subtotal + delivery fee + tax = %s", total, expectedTotal),
		)
	}

	o.subtotal = subtotal
	o.deliveryFee = deliveryFee
	o.tax = tax
	o.total = total
	return nil
}
