// Package queries contains read operations in the CQRS architecture.
// Query handlers read the database directly and return plain response
// structures; they never mutate state and never go through aggregates.
package queries

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrGetRestaurantMenuQueryIsNotConstructed = errors.New(
	"GetRestaurantMenuQuery must be created via NewGetRestaurantMenuQuery constructor",
)

// GetRestaurantMenuQuery retrieves the full menu of one restaurant: every
// item with its customization groups and options, ready for display.
type GetRestaurantMenuQuery struct {
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRestaurantMenuQuery creates a query for a restaurant's menu.
func NewGetRestaurantMenuQuery(restaurantID kernel.UUID) (GetRestaurantMenuQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetRestaurantMenuQuery{}, err
	}

	return GetRestaurantMenuQuery{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantMenuQueryIsNotConstructed)
}

// RestaurantID returns the identifier of the restaurant to list.
func (q GetRestaurantMenuQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// MenuOptionResponse is one selectable option inside a customization group.
type MenuOptionResponse struct {
	ID         kernel.UUID
	Name       string
	PriceDelta kernel.Money
}

// MenuCustomizationGroupResponse is one customization group with its options
// in catalog order.
type MenuCustomizationGroupResponse struct {
	ID      kernel.UUID
	Name    string
	Options []MenuOptionResponse
}

// MenuItemResponse is one menu item with its customization groups.
type MenuItemResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	Category    string
	BasePrice   kernel.Money
	Groups      []MenuCustomizationGroupResponse
}

// GetRestaurantMenuQueryResponse is the complete menu of one restaurant.
type GetRestaurantMenuQueryResponse struct {
	RestaurantID kernel.UUID
	Items        []MenuItemResponse
}
