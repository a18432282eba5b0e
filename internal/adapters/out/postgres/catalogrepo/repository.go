package catalogrepo

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/catalog"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCatalogRepository implements CatalogRepository using GORM.
// The Add methods are not part of the port; they exist for seeding the
// catalog and for tests.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GORM catalog repository.
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// GetMenuItem retrieves a menu item by ID.
func (r *GormCatalogRepository) GetMenuItem(ctx context.Context, id kernel.UUID) (*catalog.MenuItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MenuItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menuItem", id.String())
		}
		return nil, err
	}

	return itemToDomain(dto)
}

// GetCustomizationGroups retrieves the customization groups of one menu item
// in catalog order.
func (r *GormCatalogRepository) GetCustomizationGroups(
	ctx context.Context,
	menuItemID kernel.UUID,
) ([]*catalog.CustomizationGroup, error) {
	if err := menuItemID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CustomizationGroupDTO
	err := r.db.WithContext(ctx).
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order")
		}).
		Order("sort_order").
		Find(&dtos, "menu_item_id = ?", menuItemID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	groups := make([]*catalog.CustomizationGroup, 0, len(dtos))
	for _, dto := range dtos {
		group, groupErr := groupToDomain(dto)
		if groupErr != nil {
			return nil, groupErr
		}
		groups = append(groups, group)
	}

	return groups, nil
}

// GetMenuItemsByRestaurant retrieves all menu items of one restaurant.
func (r *GormCatalogRepository) GetMenuItemsByRestaurant(
	ctx context.Context,
	restaurantID kernel.UUID,
) ([]*catalog.MenuItem, error) {
	if err := restaurantID.Validate(); err != nil {
		return nil, err
	}

	var dtos []MenuItemDTO
	err := r.db.WithContext(ctx).
		Order("category, name").
		Find(&dtos, "restaurant_id = ?", restaurantID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	items := make([]*catalog.MenuItem, 0, len(dtos))
	for _, dto := range dtos {
		item, itemErr := itemToDomain(dto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return items, nil
}

// AddMenuItem saves a menu item. Seeding and test use only.
func (r *GormCatalogRepository) AddMenuItem(ctx context.Context, item *catalog.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := itemFromDomain(item)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// AddCustomizationGroup saves a customization group with its options.
// Seeding and test use only.
func (r *GormCatalogRepository) AddCustomizationGroup(
	ctx context.Context,
	group *catalog.CustomizationGroup,
	sortOrder int,
) error {
	if err := group.Validate(); err != nil {
		return err
	}

	dto := groupFromDomain(group, sortOrder)
	return r.db.WithContext(ctx).Create(&dto).Error
}
