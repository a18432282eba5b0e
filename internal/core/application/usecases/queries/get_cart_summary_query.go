package queries

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrGetCartSummaryQueryIsNotConstructed = errors.New(
	"GetCartSummaryQuery must be created via NewGetCartSummaryQuery constructor",
)

// GetCartSummaryQuery retrieves the priced summary of one cart: its lines
// with derived line totals plus subtotal, delivery fee, tax and total.
//
// The summary is never stored; it is recomputed from the current lines on
// every read, so it can never drift out of sync with the cart.
type GetCartSummaryQuery struct {
	cartID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCartSummaryQuery creates a query for a cart's priced summary.
func NewGetCartSummaryQuery(cartID kernel.UUID) (GetCartSummaryQuery, error) {
	if err := cartID.Validate(); err != nil {
		return GetCartSummaryQuery{}, err
	}

	return GetCartSummaryQuery{
		cartID: cartID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetCartSummaryQueryIsNotConstructed)
}

// CartID returns the identifier of the cart to summarize.
func (q GetCartSummaryQuery) CartID() kernel.UUID {
	return q.cartID
}

// CartLineSummaryResponse is one cart line with its derived line total.
type CartLineSummaryResponse struct {
	LineID              kernel.UUID
	MenuItemID          kernel.UUID
	MenuItemName        string
	UnitPrice           kernel.Money
	Quantity            int
	LineTotal           kernel.Money
	SpecialInstructions string
}

// GetCartSummaryQueryResponse is the priced summary of one cart.
type GetCartSummaryQueryResponse struct {
	CartID      kernel.UUID
	Lines       []CartLineSummaryResponse
	Subtotal    kernel.Money
	DeliveryFee kernel.Money
	Tax         kernel.Money
	Total       kernel.Money
}
