package order_test

import (
	"testing"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, name string, unitCents int64, quantity int) order.Item {
	t.Helper()
	unit := kernel.NewMoneyFromCents(unitCents)
	lineTotal, err := unit.MulInt(quantity)
	require.NoError(t, err)

	item, err := order.NewItem(kernel.NewUUID(), name, unit, quantity, lineTotal)
	require.NoError(t, err)
	return item
}

func TestNewItem(t *testing.T) {
	t.Run("should create valid item", func(t *testing.T) {
		item := mustItem(t, "Margherita Pizza", 1499, 3)

		require.NoError(t, item.Validate())
		assert.Equal(t, "Margherita Pizza", item.Name())
		assert.Equal(t, 3, item.Quantity())
		assert.Equal(t, int64(4497), item.LineTotal().Cents())
	})

	t.Run("should reject inconsistent line total", func(t *testing.T) {
		unit := kernel.NewMoneyFromCents(1499)

		_, err := order.NewItem(kernel.NewUUID(), "Margherita Pizza", unit, 3, kernel.NewMoneyFromCents(4498))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "lineTotal")
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		unit := kernel.NewMoneyFromCents(1499)

		_, err := order.NewItem(kernel.NewUUID(), "Margherita Pizza", unit, 0, kernel.ZeroMoney())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "quantity")
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var item order.Item

		err := item.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrItemIsNotConstructed, err)
	})
}

func TestNewOrder(t *testing.T) {
	placedAt := time.Date(2023, 9, 15, 19, 45, 0, 0, time.UTC)

	t.Run("should create order with consistent totals", func(t *testing.T) {
		items := []order.Item{
			mustItem(t, "Margherita Pizza", 1499, 3), // 44.97
			mustItem(t, "Garlic Bread", 599, 2),      // 11.98
		}

		o, err := order.NewOrder(
			kernel.NewUUID(), items,
			kernel.NewMoneyFromCents(5695), // subtotal
			kernel.NewMoneyFromCents(299),  // delivery fee
			kernel.NewMoneyFromCents(470),  // tax
			kernel.NewMoneyFromCents(6464), // total
			"123 Main St, Apt 4B",
			placedAt,
		)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Placed, o.Status())
		assert.Equal(t, "123 Main St, Apt 4B", o.DeliveryAddress())
		assert.Equal(t, placedAt, o.PlacedAt())
		assert.Len(t, o.Items(), 2)
		assert.Equal(t, int64(6464), o.Total().Cents())
	})

	t.Run("should reject empty items", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), nil,
			kernel.ZeroMoney(), kernel.NewMoneyFromCents(299), kernel.ZeroMoney(), kernel.NewMoneyFromCents(299),
			"123 Main St", placedAt,
		)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "value is required: items")
	})

	t.Run("should reject subtotal not matching line totals", func(t *testing.T) {
		items := []order.Item{mustItem(t, "Garlic Bread", 599, 2)} // 11.98

		o, err := order.NewOrder(
			kernel.NewUUID(), items,
			kernel.NewMoneyFromCents(1199), // off by a cent
			kernel.NewMoneyFromCents(299),
			kernel.ZeroMoney(),
			kernel.NewMoneyFromCents(1498),
			"123 Main St", placedAt,
		)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "subtotal")
	})

	t.Run("should reject total not matching the sum", func(t *testing.T) {
		items := []order.Item{mustItem(t, "Garlic Bread", 599, 2)}

		o, err := order.NewOrder(
			kernel.NewUUID(), items,
			kernel.NewMoneyFromCents(1198),
			kernel.NewMoneyFromCents(299),
			kernel.NewMoneyFromCents(99),
			kernel.NewMoneyFromCents(9999),
			"123 Main St", placedAt,
		)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "total")
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore with stored status", func(t *testing.T) {
		items := []order.Item{mustItem(t, "Classic Cheeseburger", 1099, 1)}

		o, err := order.RestoreOrder(
			kernel.NewUUID(), items,
			kernel.NewMoneyFromCents(1099),
			kernel.NewMoneyFromCents(199),
			kernel.NewMoneyFromCents(110),
			kernel.NewMoneyFromCents(1408),
			order.OnTheWay,
			"456 Oak Ave, Suite 7",
			time.Now(),
		)

		require.NoError(t, err)
		assert.Equal(t, order.OnTheWay, o.Status())
	})

	t.Run("should reject invalid stored status", func(t *testing.T) {
		items := []order.Item{mustItem(t, "Classic Cheeseburger", 1099, 1)}

		o, err := order.RestoreOrder(
			kernel.NewUUID(), items,
			kernel.NewMoneyFromCents(1099),
			kernel.NewMoneyFromCents(199),
			kernel.NewMoneyFromCents(110),
			kernel.NewMoneyFromCents(1408),
			order.Unknown,
			"456 Oak Ave, Suite 7",
			time.Now(),
		)

		require.Error(t, err)
		assert.Nil(t, o)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	newOrder := func(t *testing.T) *order.Order {
		t.Helper()
		items := []order.Item{mustItem(t, "Classic Cheeseburger", 1099, 1)}
		o, err := order.NewOrder(
			kernel.NewUUID(), items,
			kernel.NewMoneyFromCents(1099),
			kernel.NewMoneyFromCents(199),
			kernel.NewMoneyFromCents(110),
			kernel.NewMoneyFromCents(1408),
			"456 Oak Ave, Suite 7",
			time.Now(),
		)
		require.NoError(t, err)
		return o
	}

	t.Run("records any valid externally supplied status", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.ChangeStatus(order.Preparing))
		assert.Equal(t, order.Preparing, o.Status())

		// No transition machine: the external progression is trusted,
		// so moving "backwards" is accepted too.
		require.NoError(t, o.ChangeStatus(order.Placed))
		assert.Equal(t, order.Placed, o.Status())
	})

	t.Run("rejects invalid status value", func(t *testing.T) {
		o := newOrder(t)

		require.Error(t, o.ChangeStatus(order.Unknown))
		assert.Equal(t, order.Placed, o.Status())
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("nil pointer fails validation", func(t *testing.T) {
		var o *order.Order

		require.Error(t, o.Validate())
	})
}
