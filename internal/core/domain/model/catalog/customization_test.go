package catalog_test

import (
	"testing"

	"ordering/internal/core/domain/model/catalog"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustOption(t *testing.T, name string, deltaCents int64) catalog.Option {
	t.Helper()
	option, err := catalog.NewOption(kernel.NewUUID(), name, kernel.NewMoneyFromCents(deltaCents))
	require.NoError(t, err)
	return option
}

func TestNewOption(t *testing.T) {
	t.Run("should create valid option", func(t *testing.T) {
		id := kernel.NewUUID()

		option, err := catalog.NewOption(id, "Extra Cheese", kernel.NewMoneyFromCents(200))

		require.NoError(t, err)
		require.NoError(t, option.Validate())
		assert.True(t, option.ID().IsEqual(id))
		assert.Equal(t, "Extra Cheese", option.Name())
		assert.Equal(t, int64(200), option.PriceDelta().Cents())
	})

	t.Run("should allow zero price delta", func(t *testing.T) {
		option, err := catalog.NewOption(kernel.NewUUID(), "Thin", kernel.ZeroMoney())

		require.NoError(t, err)
		assert.True(t, option.PriceDelta().IsZero())
	})

	t.Run("should allow negative price delta", func(t *testing.T) {
		option, err := catalog.NewOption(kernel.NewUUID(), "No Cheese", kernel.NewMoneyFromCents(-100))

		require.NoError(t, err)
		assert.True(t, option.PriceDelta().IsNegative())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := catalog.NewOption(kernel.NewUUID(), "", kernel.ZeroMoney())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "option name")
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var option catalog.Option

		err := option.Validate()

		require.Error(t, err)
		assert.Equal(t, catalog.ErrOptionIsNotConstructed, err)
	})
}

func TestNewCustomizationGroup(t *testing.T) {
	menuItemID := kernel.NewUUID()

	t.Run("should create valid group preserving option order", func(t *testing.T) {
		small := mustOption(t, "Small", 0)
		medium := mustOption(t, "Medium", 200)
		large := mustOption(t, "Large", 400)

		group, err := catalog.NewCustomizationGroup(
			kernel.NewUUID(), menuItemID, "Size",
			[]catalog.Option{small, medium, large},
		)

		require.NoError(t, err)
		require.NoError(t, group.Validate())
		assert.Equal(t, "Size", group.Name())
		assert.True(t, group.MenuItemID().IsEqual(menuItemID))

		options := group.Options()
		require.Len(t, options, 3)
		assert.Equal(t, "Small", options[0].Name())
		assert.Equal(t, "Medium", options[1].Name())
		assert.Equal(t, "Large", options[2].Name())
	})

	t.Run("should fail without options", func(t *testing.T) {
		group, err := catalog.NewCustomizationGroup(kernel.NewUUID(), menuItemID, "Size", nil)

		require.Error(t, err)
		assert.Nil(t, group)
		assert.Contains(t, err.Error(), "value is required: options")
	})

	t.Run("should fail with duplicate option ids", func(t *testing.T) {
		option := mustOption(t, "Thin", 0)

		group, err := catalog.NewCustomizationGroup(
			kernel.NewUUID(), menuItemID, "Crust",
			[]catalog.Option{option, option},
		)

		require.Error(t, err)
		assert.Nil(t, group)
		assert.Contains(t, err.Error(), "duplicate option")
	})

	t.Run("should fail with unconstructed option", func(t *testing.T) {
		var broken catalog.Option

		group, err := catalog.NewCustomizationGroup(
			kernel.NewUUID(), menuItemID, "Crust",
			[]catalog.Option{broken},
		)

		require.Error(t, err)
		assert.Nil(t, group)
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		group, err := catalog.NewCustomizationGroup(
			kernel.NewUUID(), menuItemID, "",
			[]catalog.Option{mustOption(t, "Thin", 0)},
		)

		require.Error(t, err)
		assert.Nil(t, group)
		assert.Contains(t, err.Error(), "group name")
	})
}

func TestCustomizationGroup_OptionByID(t *testing.T) {
	menuItemID := kernel.NewUUID()
	mushrooms := mustOption(t, "Mushrooms", 150)
	olives := mustOption(t, "Olives", 150)

	group, err := catalog.NewCustomizationGroup(
		kernel.NewUUID(), menuItemID, "Extra Toppings",
		[]catalog.Option{mushrooms, olives},
	)
	require.NoError(t, err)

	t.Run("should find option belonging to the group", func(t *testing.T) {
		found, err := group.OptionByID(olives.ID())

		require.NoError(t, err)
		assert.True(t, found.ID().IsEqual(olives.ID()))
		assert.Equal(t, "Olives", found.Name())
	})

	t.Run("should return not found for foreign option", func(t *testing.T) {
		_, err := group.OptionByID(kernel.NewUUID())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should fail with unconstructed id", func(t *testing.T) {
		var id kernel.UUID

		_, err := group.OptionByID(id)

		require.Error(t, err)
	})
}

func TestCustomizationGroup_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var group catalog.CustomizationGroup

		err := group.Validate()

		require.Error(t, err)
		assert.Equal(t, catalog.ErrCustomizationGroupIsNotConstructed, err)
	})
}
