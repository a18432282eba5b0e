package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCheckoutCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		cartID := kernel.NewUUID()
		orderID := kernel.NewUUID()

		cmd, err := commands.NewCheckoutCommand(cartID, orderID, "123 Main St, Apt 4B")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.CartID().IsEqual(cartID))
		assert.True(t, cmd.OrderID().IsEqual(orderID))
		assert.Equal(t, "123 Main St, Apt 4B", cmd.DeliveryAddress())
	})

	t.Run("should reject empty delivery address", func(t *testing.T) {
		_, err := commands.NewCheckoutCommand(kernel.NewUUID(), kernel.NewUUID(), "")

		require.ErrorIs(t, err, commands.ErrDeliveryAddressIsRequired)
	})

	t.Run("should reject invalid identifiers", func(t *testing.T) {
		_, err := commands.NewCheckoutCommand(kernel.UUID{}, kernel.NewUUID(), "123 Main St")
		require.Error(t, err)

		_, err = commands.NewCheckoutCommand(kernel.NewUUID(), kernel.UUID{}, "123 Main St")
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.CheckoutCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrCheckoutCommandIsNotConstructed)
	})
}
