package queries

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
	"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
)

// GetOrderHistoryQuery retrieves all placed orders, most recent first, with
// their frozen item snapshots and totals.
type GetOrderHistoryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderHistoryQuery creates a parameterless query for the order history.
func NewGetOrderHistoryQuery() GetOrderHistoryQuery {
	return GetOrderHistoryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

// OrderItemResponse is one frozen item snapshot of a placed order.
type OrderItemResponse struct {
	MenuItemID kernel.UUID
	Name       string
	UnitPrice  kernel.Money
	Quantity   int
	LineTotal  kernel.Money
}

// OrderHistoryResponse is one placed order with its stored totals and the
// externally supplied fulfillment status as its wire string.
type OrderHistoryResponse struct {
	ID              kernel.UUID
	Items           []OrderItemResponse
	Subtotal        kernel.Money
	DeliveryFee     kernel.Money
	Tax             kernel.Money
	Total           kernel.Money
	Status          string
	DeliveryAddress string
	PlacedAt        time.Time
}
