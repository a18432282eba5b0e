// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Orders are immutable snapshots except for their status,
// so updates never touch the item rows.
package orderrepo

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The status is stored as its wire string.
type OrderDTO struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey"`
	SubtotalCents    int64          `gorm:"type:bigint;not null"`
	DeliveryFeeCents int64          `gorm:"type:bigint;not null"`
	TaxCents         int64          `gorm:"type:bigint;not null"`
	TotalCents       int64          `gorm:"type:bigint;not null"`
	Status           string         `gorm:"type:varchar(20);not null;index"`
	DeliveryAddress  string         `gorm:"type:text;not null"`
	PlacedAt         time.Time      `gorm:"not null;index"`
	Items            []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one frozen item snapshot of a placed order.
type OrderItemDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;not null;index"`
	MenuItemID     uuid.UUID `gorm:"type:uuid;not null"`
	Name           string    `gorm:"type:varchar(255);not null"`
	UnitPriceCents int64     `gorm:"type:bigint;not null"`
	Quantity       int       `gorm:"type:int;not null"`
	LineTotalCents int64     `gorm:"type:bigint;not null"`
	SortOrder      int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for order item entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
// Item rows get fresh identifiers; they are write-once and never updated.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()
	domainItems := aggregate.Items()
	items := make([]OrderItemDTO, 0, len(domainItems))

	for i, item := range domainItems {
		items = append(items, OrderItemDTO{
			ID:             uuid.New(),
			OrderID:        orderID,
			MenuItemID:     item.MenuItemID().Bytes(),
			Name:           item.Name(),
			UnitPriceCents: item.UnitPrice().Cents(),
			Quantity:       item.Quantity(),
			LineTotalCents: item.LineTotal().Cents(),
			SortOrder:      i,
		})
	}

	return OrderDTO{
		ID:               orderID,
		SubtotalCents:    aggregate.Subtotal().Cents(),
		DeliveryFeeCents: aggregate.DeliveryFee().Cents(),
		TaxCents:         aggregate.Tax().Cents(),
		TotalCents:       aggregate.Total().Cents(),
		Status:           aggregate.Status().String(),
		DeliveryAddress:  aggregate.DeliveryAddress(),
		PlacedAt:         aggregate.PlacedAt(),
		Items:            items,
	}
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		menuItemID, itemErr := kernel.UUIDFromBytes(itemDTO.MenuItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewItem(
			menuItemID, itemDTO.Name,
			kernel.NewMoneyFromCents(itemDTO.UnitPriceCents),
			itemDTO.Quantity,
			kernel.NewMoneyFromCents(itemDTO.LineTotalCents),
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id, items,
		kernel.NewMoneyFromCents(dto.SubtotalCents),
		kernel.NewMoneyFromCents(dto.DeliveryFeeCents),
		kernel.NewMoneyFromCents(dto.TaxCents),
		kernel.NewMoneyFromCents(dto.TotalCents),
		status,
		dto.DeliveryAddress,
		dto.PlacedAt,
	)
}
