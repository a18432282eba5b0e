package queries

import (
	"context"

	"ordering/internal/core/domain/model/cart"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetCartSummaryQueryHandler reads a cart's lines from the database and
// prices them through the pricing engine. Delivery fee and tax rate are
// pricing policy fixed at composition time.
type GetCartSummaryQueryHandler struct {
	db            *gorm.DB
	pricingEngine services.PricingEngine
	deliveryFee   kernel.Money
	taxRate       decimal.Decimal
}

// NewGetCartSummaryQueryHandler creates a handler for cart summary queries.
func NewGetCartSummaryQueryHandler(
	db *gorm.DB,
	pricingEngine services.PricingEngine,
	deliveryFee kernel.Money,
	taxRate decimal.Decimal,
) GetCartSummaryQueryHandler {
	return GetCartSummaryQueryHandler{
		db:            db,
		pricingEngine: pricingEngine,
		deliveryFee:   deliveryFee,
		taxRate:       taxRate,
	}
}

// Handle executes the summary query. An existing cart without lines yields
// an empty line list with total equal to the delivery fee; a missing cart
// yields an ObjectNotFoundError.
func (h GetCartSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetCartSummaryQuery,
) (GetCartSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartSummaryQueryResponse{}, err
	}

	var count int64
	if err := h.db.WithContext(ctx).Raw(
		`SELECT COUNT(*) FROM carts WHERE id = ?`, query.CartID().String(),
	).Scan(&count).Error; err != nil {
		return GetCartSummaryQueryResponse{}, err
	}
	if count == 0 {
		return GetCartSummaryQueryResponse{}, errs.NewObjectNotFoundError("cart", query.CartID().String())
	}

	lines, err := h.readLines(ctx, query.CartID())
	if err != nil {
		return GetCartSummaryQueryResponse{}, err
	}

	totals, err := h.pricingEngine.ComputeTotals(lines, h.deliveryFee, h.taxRate)
	if err != nil {
		return GetCartSummaryQueryResponse{}, err
	}

	response := GetCartSummaryQueryResponse{
		CartID:      query.CartID(),
		Lines:       make([]CartLineSummaryResponse, 0, len(lines)),
		Subtotal:    totals.Subtotal,
		DeliveryFee: totals.DeliveryFee,
		Tax:         totals.Tax,
		Total:       totals.Total,
	}

	for _, line := range lines {
		lineTotal, totalErr := line.LineTotal()
		if totalErr != nil {
			return GetCartSummaryQueryResponse{}, totalErr
		}

		response.Lines = append(response.Lines, CartLineSummaryResponse{
			LineID:              line.ID(),
			MenuItemID:          line.MenuItemID(),
			MenuItemName:        line.MenuItemName(),
			UnitPrice:           line.UnitPrice(),
			Quantity:            line.Quantity(),
			LineTotal:           lineTotal,
			SpecialInstructions: line.SpecialInstructions(),
		})
	}

	return response, nil
}

func (h GetCartSummaryQueryHandler) readLines(
	ctx context.Context,
	cartID kernel.UUID,
) ([]*cart.CartLine, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			menu_item_id,
			menu_item_name,
			unit_price_cents,
			quantity,
			special_instructions
		FROM cart_lines
		WHERE cart_id = ?
		ORDER BY sort_order
	`, cartID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]*cart.CartLine, 0)
	for rows.Next() {
		var id, menuItemID uuid.UUID
		var name, instructions string
		var unitPriceCents int64
		var quantity int

		if err = rows.Scan(&id, &menuItemID, &name, &unitPriceCents, &quantity, &instructions); err != nil {
			return nil, err
		}

		lineID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		itemID, idErr := kernel.UUIDFromBytes(menuItemID[:])
		if idErr != nil {
			return nil, idErr
		}

		line, lineErr := cart.NewCartLine(
			lineID, itemID, name,
			kernel.NewMoneyFromCents(unitPriceCents), quantity, nil, instructions,
		)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
