package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrCheckoutCommandIsNotConstructed = errors.New(
		"CheckoutCommand must be created via NewCheckoutCommand constructor",
	)
	ErrDeliveryAddressIsRequired = errors.New("delivery address is required")
)

// CheckoutCommand represents a request to turn a cart into a placed order
// delivered to the given address.
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	cartID          kernel.UUID
	orderID         kernel.UUID
	deliveryAddress string

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a checkout command. The order identifier is
// supplied by the caller so retries stay idempotent at the persistence layer.
func NewCheckoutCommand(cartID kernel.UUID, orderID kernel.UUID, deliveryAddress string) (CheckoutCommand, error) {
	command := CheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCartID(cartID),
		command.setOrderID(orderID),
		command.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// CartID returns the identifier of the cart to check out.
func (c CheckoutCommand) CartID() kernel.UUID {
	return c.cartID
}

// OrderID returns the identifier for the order to create.
func (c CheckoutCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DeliveryAddress returns the chosen delivery address.
func (c CheckoutCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

func (c *CheckoutCommand) setCartID(cartID kernel.UUID) error {
	if err := cartID.Validate(); err != nil {
		return err
	}

	c.cartID = cartID
	return nil
}

func (c *CheckoutCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CheckoutCommand) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return ErrDeliveryAddressIsRequired
	}

	c.deliveryAddress = deliveryAddress
	return nil
}
