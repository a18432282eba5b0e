// Package catalogrepo provides data transfer objects and mapping functions for
// catalog persistence. The catalog is reference data: the ordering side only
// reads it, writes happen through seeding.
package catalogrepo

import (
	"ordering/internal/core/domain/model/catalog"
	"ordering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// MenuItemDTO represents the database structure for menu items.
type MenuItemDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Description    string    `gorm:"type:text"`
	Category       string    `gorm:"type:varchar(100);not null"`
	BasePriceCents int64     `gorm:"type:bigint;not null"`
}

// TableName specifies the database table name for menu items.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// CustomizationGroupDTO represents the database structure for customization
// groups. Options are owned children and cascade on delete.
type CustomizationGroupDTO struct {
	ID         uuid.UUID   `gorm:"type:uuid;primaryKey"`
	MenuItemID uuid.UUID   `gorm:"type:uuid;not null;index"`
	Name       string      `gorm:"type:varchar(255);not null"`
	SortOrder  int         `gorm:"type:int;not null"`
	Options    []OptionDTO `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for customization groups.
func (CustomizationGroupDTO) TableName() string {
	return "customization_groups"
}

// OptionDTO represents the database structure for customization options.
type OptionDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	GroupID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Name            string    `gorm:"type:varchar(255);not null"`
	PriceDeltaCents int64     `gorm:"type:bigint;not null"`
	SortOrder       int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for customization options.
func (OptionDTO) TableName() string {
	return "customization_options"
}

// itemFromDomain converts a menu item to its database representation.
func itemFromDomain(item *catalog.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:             item.ID().Bytes(),
		RestaurantID:   item.RestaurantID().Bytes(),
		Name:           item.Name(),
		Description:    item.Description(),
		Category:       item.Category(),
		BasePriceCents: item.BasePrice().Cents(),
	}
}

// itemToDomain converts a database DTO to a menu item.
func itemToDomain(dto MenuItemDTO) (*catalog.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	return catalog.NewMenuItem(
		id, restaurantID,
		dto.Name, dto.Description, dto.Category,
		kernel.NewMoneyFromCents(dto.BasePriceCents),
	)
}

// groupFromDomain converts a customization group with its options to DTOs.
// The sort order preserves catalog ordering across round trips.
func groupFromDomain(group *catalog.CustomizationGroup, sortOrder int) CustomizationGroupDTO {
	groupID := group.ID().Bytes()
	domainOptions := group.Options()
	options := make([]OptionDTO, 0, len(domainOptions))

	for i, option := range domainOptions {
		options = append(options, OptionDTO{
			ID:              option.ID().Bytes(),
			GroupID:         groupID,
			Name:            option.Name(),
			PriceDeltaCents: option.PriceDelta().Cents(),
			SortOrder:       i,
		})
	}

	return CustomizationGroupDTO{
		ID:         groupID,
		MenuItemID: group.MenuItemID().Bytes(),
		Name:       group.Name(),
		SortOrder:  sortOrder,
		Options:    options,
	}
}

// groupToDomain converts a database DTO to a customization group.
func groupToDomain(dto CustomizationGroupDTO) (*catalog.CustomizationGroup, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return nil, err
	}

	options := make([]catalog.Option, 0, len(dto.Options))
	for _, optionDTO := range dto.Options {
		optionID, optionErr := kernel.UUIDFromBytes(optionDTO.ID[:])
		if optionErr != nil {
			return nil, optionErr
		}

		option, optionErr := catalog.NewOption(
			optionID, optionDTO.Name,
			kernel.NewMoneyFromCents(optionDTO.PriceDeltaCents),
		)
		if optionErr != nil {
			return nil, optionErr
		}
		options = append(options, option)
	}

	return catalog.NewCustomizationGroup(id, menuItemID, dto.Name, options)
}
