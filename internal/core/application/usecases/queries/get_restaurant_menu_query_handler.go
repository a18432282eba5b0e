package queries

import (
	"context"

	"ordering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRestaurantMenuQueryHandler reads a restaurant's menu from the database.
type GetRestaurantMenuQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantMenuQueryHandler creates a handler for menu queries.
// Requires a GORM database connection for query execution.
func NewGetRestaurantMenuQueryHandler(db *gorm.DB) GetRestaurantMenuQueryHandler {
	return GetRestaurantMenuQueryHandler{db: db}
}

// Handle executes the menu query. Items come back in catalog order with
// their customization groups and options attached. A restaurant without
// items yields an empty item list, not an error.
func (h GetRestaurantMenuQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantMenuQuery,
) (GetRestaurantMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRestaurantMenuQueryResponse{}, err
	}

	response := GetRestaurantMenuQueryResponse{
		RestaurantID: query.RestaurantID(),
		Items:        make([]MenuItemResponse, 0),
	}

	itemIndex := make(map[kernel.UUID]int)
	if err := h.readItems(ctx, query.RestaurantID(), &response, itemIndex); err != nil {
		return GetRestaurantMenuQueryResponse{}, err
	}

	groupIndex := make(map[kernel.UUID][2]int)
	if err := h.readGroups(ctx, query.RestaurantID(), &response, itemIndex, groupIndex); err != nil {
		return GetRestaurantMenuQueryResponse{}, err
	}

	if err := h.readOptions(ctx, query.RestaurantID(), &response, groupIndex); err != nil {
		return GetRestaurantMenuQueryResponse{}, err
	}

	return response, nil
}

func (h GetRestaurantMenuQueryHandler) readItems(
	ctx context.Context,
	restaurantID kernel.UUID,
	response *GetRestaurantMenuQueryResponse,
	itemIndex map[kernel.UUID]int,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			category,
			base_price_cents
		FROM menu_items
		WHERE restaurant_id = ?
		ORDER BY category, name
	`, restaurantID.String()).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var item MenuItemResponse
		var basePriceCents int64

		if err = rows.Scan(&id, &item.Name, &item.Description, &item.Category, &basePriceCents); err != nil {
			return err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return idErr
		}
		item.ID = itemID
		item.BasePrice = kernel.NewMoneyFromCents(basePriceCents)
		item.Groups = make([]MenuCustomizationGroupResponse, 0)

		itemIndex[item.ID] = len(response.Items)
		response.Items = append(response.Items, item)
	}

	return rows.Err()
}

func (h GetRestaurantMenuQueryHandler) readGroups(
	ctx context.Context,
	restaurantID kernel.UUID,
	response *GetRestaurantMenuQueryResponse,
	itemIndex map[kernel.UUID]int,
	groupIndex map[kernel.UUID][2]int,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			g.id,
			g.menu_item_id,
			g.name
		FROM customization_groups g
		JOIN menu_items i ON i.id = g.menu_item_id
		WHERE i.restaurant_id = ?
		ORDER BY g.menu_item_id, g.sort_order
	`, restaurantID.String()).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var id, menuItemID uuid.UUID
		var name string

		if err = rows.Scan(&id, &menuItemID, &name); err != nil {
			return err
		}

		groupID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return idErr
		}
		itemID, idErr := kernel.UUIDFromBytes(menuItemID[:])
		if idErr != nil {
			return idErr
		}

		i, ok := itemIndex[itemID]
		if !ok {
			continue
		}

		group := MenuCustomizationGroupResponse{
			ID:      groupID,
			Name:    name,
			Options: make([]MenuOptionResponse, 0),
		}
		groupIndex[groupID] = [2]int{i, len(response.Items[i].Groups)}
		response.Items[i].Groups = append(response.Items[i].Groups, group)
	}

	return rows.Err()
}

func (h GetRestaurantMenuQueryHandler) readOptions(
	ctx context.Context,
	restaurantID kernel.UUID,
	response *GetRestaurantMenuQueryResponse,
	groupIndex map[kernel.UUID][2]int,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.group_id,
			o.name,
			o.price_delta_cents
		FROM customization_options o
		JOIN customization_groups g ON g.id = o.group_id
		JOIN menu_items i ON i.id = g.menu_item_id
		WHERE i.restaurant_id = ?
		ORDER BY o.group_id, o.sort_order
	`, restaurantID.String()).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var id, rawGroupID uuid.UUID
		var name string
		var priceDeltaCents int64

		if err = rows.Scan(&id, &rawGroupID, &name, &priceDeltaCents); err != nil {
			return err
		}

		optionID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return idErr
		}
		groupID, idErr := kernel.UUIDFromBytes(rawGroupID[:])
		if idErr != nil {
			return idErr
		}

		pos, ok := groupIndex[groupID]
		if !ok {
			continue
		}

		option := MenuOptionResponse{
			ID:         optionID,
			Name:       name,
			PriceDelta: kernel.NewMoneyFromCents(priceDeltaCents),
		}
		groups := response.Items[pos[0]].Groups
		groups[pos[1]].Options = append(groups[pos[1]].Options, option)
	}

	return rows.Err()
}
