// Package cartrepo provides data transfer objects and mapping functions for
// cart persistence. Handles the conversion between the cart aggregate and its
// relational representation of carts, lines and selections.
package cartrepo

import (
	"time"

	"ordering/internal/core/domain/model/cart"
	"ordering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CartDTO represents the database structure for persisting cart aggregates.
// The updated_at column drives stale cart cleanup; every save touches it.
type CartDTO struct {
	ID        uuid.UUID     `gorm:"type:uuid;primaryKey"`
	UpdatedAt time.Time     `gorm:"autoUpdateTime;index"`
	Lines     []CartLineDTO `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for cart entities.
func (CartDTO) TableName() string {
	return "carts"
}

// CartLineDTO represents the database structure for persisting cart lines.
// The unit price is the snapshot resolved when the line was added.
type CartLineDTO struct {
	ID                  uuid.UUID          `gorm:"type:uuid;primaryKey"`
	CartID              uuid.UUID          `gorm:"type:uuid;not null;index"`
	MenuItemID          uuid.UUID          `gorm:"type:uuid;not null"`
	MenuItemName        string             `gorm:"type:varchar(255);not null"`
	UnitPriceCents      int64              `gorm:"type:bigint;not null"`
	Quantity            int                `gorm:"type:int;not null"`
	SpecialInstructions string             `gorm:"type:text"`
	SortOrder           int                `gorm:"type:int;not null"`
	Selections          []CartSelectionDTO `gorm:"foreignKey:LineID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for cart line entities.
func (CartLineDTO) TableName() string {
	return "cart_lines"
}

// CartSelectionDTO represents one chosen (group, option) pair of a cart line.
type CartSelectionDTO struct {
	LineID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	GroupID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	OptionID  uuid.UUID `gorm:"type:uuid;not null"`
	SortOrder int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for cart line selections.
func (CartSelectionDTO) TableName() string {
	return "cart_line_selections"
}

// fromDomain converts a cart aggregate to its database representation.
func fromDomain(aggregate *cart.Cart) CartDTO {
	cartID := aggregate.ID().Bytes()
	domainLines := aggregate.Lines()
	lines := make([]CartLineDTO, 0, len(domainLines))

	for i, line := range domainLines {
		lineID := line.ID().Bytes()
		domainSelections := line.Selections()
		selections := make([]CartSelectionDTO, 0, len(domainSelections))

		for j, selection := range domainSelections {
			selections = append(selections, CartSelectionDTO{
				LineID:    lineID,
				GroupID:   selection.GroupID().Bytes(),
				OptionID:  selection.OptionID().Bytes(),
				SortOrder: j,
			})
		}

		lines = append(lines, CartLineDTO{
			ID:                  lineID,
			CartID:              cartID,
			MenuItemID:          line.MenuItemID().Bytes(),
			MenuItemName:        line.MenuItemName(),
			UnitPriceCents:      line.UnitPrice().Cents(),
			Quantity:            line.Quantity(),
			SpecialInstructions: line.SpecialInstructions(),
			SortOrder:           i,
			Selections:          selections,
		})
	}

	return CartDTO{
		ID:    cartID,
		Lines: lines,
	}
}

// toDomain converts a database DTO to a cart aggregate using RestoreCart.
func toDomain(dto CartDTO) (*cart.Cart, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]*cart.CartLine, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := lineToDomain(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return cart.RestoreCart(id, lines)
}

// lineToDomain converts a cart line DTO to its domain entity.
func lineToDomain(dto CartLineDTO) (*cart.CartLine, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return nil, err
	}

	selections := make([]cart.Selection, 0, len(dto.Selections))
	for _, selectionDTO := range dto.Selections {
		groupID, selErr := kernel.UUIDFromBytes(selectionDTO.GroupID[:])
		if selErr != nil {
			return nil, selErr
		}
		optionID, selErr := kernel.UUIDFromBytes(selectionDTO.OptionID[:])
		if selErr != nil {
			return nil, selErr
		}

		selection, selErr := cart.NewSelection(groupID, optionID)
		if selErr != nil {
			return nil, selErr
		}
		selections = append(selections, selection)
	}

	return cart.NewCartLine(
		id, menuItemID, dto.MenuItemName,
		kernel.NewMoneyFromCents(dto.UnitPriceCents),
		dto.Quantity, selections, dto.SpecialInstructions,
	)
}
