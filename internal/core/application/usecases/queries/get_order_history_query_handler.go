package queries

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderHistoryQueryHandler reads placed orders from the database.
type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderHistoryQueryHandler creates a handler for order history queries.
// Requires a GORM database connection for query execution.
func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle executes the history query. Orders come back most recently placed
// first; the stored totals are returned as-is, never recomputed.
func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) ([]OrderHistoryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderHistoryResponse, 0)
	orderIndex := make(map[kernel.UUID]int)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			subtotal_cents,
			delivery_fee_cents,
			tax_cents,
			total_cents,
			status,
			delivery_address,
			placed_at
		FROM orders
		ORDER BY placed_at DESC, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var subtotalCents, deliveryFeeCents, taxCents, totalCents int64
		var status, deliveryAddress string
		var placedAt time.Time

		err = rows.Scan(
			&id,
			&subtotalCents,
			&deliveryFeeCents,
			&taxCents,
			&totalCents,
			&status,
			&deliveryAddress,
			&placedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		orderIndex[orderID] = len(orders)
		orders = append(orders, OrderHistoryResponse{
			ID:              orderID,
			Items:           make([]OrderItemResponse, 0),
			Subtotal:        kernel.NewMoneyFromCents(subtotalCents),
			DeliveryFee:     kernel.NewMoneyFromCents(deliveryFeeCents),
			Tax:             kernel.NewMoneyFromCents(taxCents),
			Total:           kernel.NewMoneyFromCents(totalCents),
			Status:          status,
			DeliveryAddress: deliveryAddress,
			PlacedAt:        placedAt,
		})
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = h.readItems(ctx, orders, orderIndex); err != nil {
		return nil, err
	}

	return orders, nil
}

func (h GetOrderHistoryQueryHandler) readItems(
	ctx context.Context,
	orders []OrderHistoryResponse,
	orderIndex map[kernel.UUID]int,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			menu_item_id,
			name,
			unit_price_cents,
			quantity,
			line_total_cents
		FROM order_items
		ORDER BY order_id, sort_order
	`).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var rawOrderID, rawMenuItemID uuid.UUID
		var name string
		var unitPriceCents, lineTotalCents int64
		var quantity int

		if err = rows.Scan(&rawOrderID, &rawMenuItemID, &name, &unitPriceCents, &quantity, &lineTotalCents); err != nil {
			return err
		}

		orderID, idErr := kernel.UUIDFromBytes(rawOrderID[:])
		if idErr != nil {
			return idErr
		}
		menuItemID, idErr := kernel.UUIDFromBytes(rawMenuItemID[:])
		if idErr != nil {
			return idErr
		}

		i, ok := orderIndex[orderID]
		if !ok {
			continue
		}

		orders[i].Items = append(orders[i].Items, OrderItemResponse{
			MenuItemID: menuItemID,
			Name:       name,
			UnitPrice:  kernel.NewMoneyFromCents(unitPriceCents),
			Quantity:   quantity,
			LineTotal:  kernel.NewMoneyFromCents(lineTotalCents),
		})
	}

	return rows.Err()
}
