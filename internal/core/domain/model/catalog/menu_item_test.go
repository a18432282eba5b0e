package catalog_test

import (
	"testing"

	"ordering/internal/core/domain/model/catalog"
	"ordering/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMenuItem(t *testing.T) {
	validID := kernel.NewUUID()
	validRestaurantID := kernel.NewUUID()
	validPrice := kernel.NewMoneyFromCents(1299)

	t.Run("should create valid menu item", func(t *testing.T) {
		item, err := catalog.NewMenuItem(
			validID, validRestaurantID,
			"Margherita Pizza", "Classic pizza with tomato sauce, mozzarella, and basil", "Pizza",
			validPrice,
		)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.True(t, item.ID().IsEqual(validID))
		assert.True(t, item.RestaurantID().IsEqual(validRestaurantID))
		assert.Equal(t, "Margherita Pizza", item.Name())
		assert.Equal(t, "Pizza", item.Category())
		assert.Equal(t, int64(1299), item.BasePrice().Cents())
	})

	t.Run("should allow empty description", func(t *testing.T) {
		item, err := catalog.NewMenuItem(validID, validRestaurantID, "Garlic Bread", "", "Sides", validPrice)

		require.NoError(t, err)
		assert.Empty(t, item.Description())
	})

	t.Run("should fail with invalid ID", func(t *testing.T) {
		var invalidID kernel.UUID

		item, err := catalog.NewMenuItem(invalidID, validRestaurantID, "Garlic Bread", "", "Sides", validPrice)

		require.Error(t, err)
		assert.Nil(t, item)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		item, err := catalog.NewMenuItem(validID, validRestaurantID, "", "", "Sides", validPrice)

		require.Error(t, err)
		assert.Nil(t, item)
		assert.Contains(t, err.Error(), "value is required: name")
	})

	t.Run("should fail with empty category", func(t *testing.T) {
		item, err := catalog.NewMenuItem(validID, validRestaurantID, "Garlic Bread", "", "", validPrice)

		require.Error(t, err)
		assert.Nil(t, item)
		assert.Contains(t, err.Error(), "value is required: category")
	})

	t.Run("should fail with negative base price", func(t *testing.T) {
		item, err := catalog.NewMenuItem(
			validID, validRestaurantID, "Garlic Bread", "", "Sides",
			kernel.NewMoneyFromCents(-100),
		)

		require.Error(t, err)
		assert.Nil(t, item)
		assert.Contains(t, err.Error(), "basePrice")
	})

	t.Run("should fail with unconstructed base price", func(t *testing.T) {
		var invalidPrice kernel.Money

		item, err := catalog.NewMenuItem(validID, validRestaurantID, "Garlic Bread", "", "Sides", invalidPrice)

		require.Error(t, err)
		assert.Nil(t, item)
		assert.Contains(t, err.Error(), "money must be created")
	})

	t.Run("should accumulate multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID
		var invalidPrice kernel.Money

		item, err := catalog.NewMenuItem(invalidID, validRestaurantID, "", "", "Sides", invalidPrice)

		require.Error(t, err)
		assert.Nil(t, item)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "value is required: name")
		assert.Contains(t, err.Error(), "money must be created")
	})
}

func TestMenuItem_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var item catalog.MenuItem

		err := item.Validate()

		require.Error(t, err)
		assert.Equal(t, catalog.ErrMenuItemIsNotConstructed, err)
	})

	t.Run("nil pointer fails validation", func(t *testing.T) {
		var item *catalog.MenuItem

		require.Error(t, item.Validate())
	})
}

func TestMenuItem_IsEqual(t *testing.T) {
	id := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	price := kernel.NewMoneyFromCents(599)

	a, err := catalog.NewMenuItem(id, restaurantID, "Garlic Bread", "", "Sides", price)
	require.NoError(t, err)
	b, err := catalog.NewMenuItem(id, restaurantID, "Garlic Bread", "", "Sides", price)
	require.NoError(t, err)
	c, err := catalog.NewMenuItem(kernel.NewUUID(), restaurantID, "Caesar Salad", "", "Salads", price)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
}
