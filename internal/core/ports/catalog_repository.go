// Package ports defines repository interfaces for the ordering domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"ordering/internal/core/domain/model/catalog"
	"ordering/internal/core/domain/model/kernel"
)

// CatalogRepository defines the read contract for catalog reference data.
// The catalog is immutable from the ordering side; this port only resolves
// menu items and their customization groups for pricing and display.
type CatalogRepository interface {
	// GetMenuItem retrieves a menu item by its unique identifier.
	// Returns an ObjectNotFoundError when the item does not exist.
	GetMenuItem(ctx context.Context, id kernel.UUID) (*catalog.MenuItem, error)

	// GetCustomizationGroups retrieves the customization groups belonging to
	// one menu item, in catalog order. An item without customizations yields
	// an empty slice, not an error.
	GetCustomizationGroups(ctx context.Context, menuItemID kernel.UUID) ([]*catalog.CustomizationGroup, error)

	// GetMenuItemsByRestaurant retrieves all menu items of one restaurant,
	// in catalog order.
	GetMenuItemsByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*catalog.MenuItem, error)
}
