package http

// Request and response contracts for the ordering HTTP API. Monetary amounts
// are rendered as fixed two-decimal strings, never as binary floats.

// Error is the uniform error payload of the API.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// SelectionRequest is one chosen (group, option) pair of a new cart line.
type SelectionRequest struct {
	GroupID  string `json:"groupId"`
	OptionID string `json:"optionId"`
}

// AddCartLineRequest is the body of POST /carts/:cartId/lines.
type AddCartLineRequest struct {
	MenuItemID          string             `json:"menuItemId"`
	Quantity            int                `json:"quantity"`
	Selections          []SelectionRequest `json:"selections"`
	SpecialInstructions string             `json:"specialInstructions"`
}

// ChangeQuantityRequest is the body of PATCH /carts/:cartId/lines/:lineId.
type ChangeQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CheckoutRequest is the body of POST /carts/:cartId/checkout.
type CheckoutRequest struct {
	DeliveryAddress string `json:"deliveryAddress"`
}

// CheckoutResponse returns the identifier of the placed order.
type CheckoutResponse struct {
	OrderID string `json:"orderId"`
}

// UpdateOrderStatusRequest is the body of POST /orders/:orderId/status.
// The status is the wire string reported by the fulfillment side.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// MenuOption is one selectable option inside a customization group.
type MenuOption struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceDelta string `json:"priceDelta"`
}

// MenuCustomizationGroup is one customization group of a menu item.
type MenuCustomizationGroup struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Options []MenuOption `json:"options"`
}

// MenuItem is one orderable item of a restaurant's menu.
type MenuItem struct {
	ID          string                   `json:"id"`
	Name        string                   `json:"name"`
	Description string                   `json:"description,omitempty"`
	Category    string                   `json:"category"`
	BasePrice   string                   `json:"basePrice"`
	Groups      []MenuCustomizationGroup `json:"customizationGroups"`
}

// Menu is the full menu of one restaurant.
type Menu struct {
	RestaurantID string     `json:"restaurantId"`
	Items        []MenuItem `json:"items"`
}

// CartLine is one priced line of a cart summary.
type CartLine struct {
	ID                  string `json:"id"`
	MenuItemID          string `json:"menuItemId"`
	MenuItemName        string `json:"menuItemName"`
	UnitPrice           string `json:"unitPrice"`
	Quantity            int    `json:"quantity"`
	LineTotal           string `json:"lineTotal"`
	SpecialInstructions string `json:"specialInstructions,omitempty"`
}

// CartSummary is the priced summary of one cart.
type CartSummary struct {
	CartID      string     `json:"cartId"`
	Lines       []CartLine `json:"lines"`
	Subtotal    string     `json:"subtotal"`
	DeliveryFee string     `json:"deliveryFee"`
	Tax         string     `json:"tax"`
	Total       string     `json:"total"`
}

// OrderItem is one frozen item snapshot of a placed order.
type OrderItem struct {
	MenuItemID string `json:"menuItemId"`
	Name       string `json:"name"`
	UnitPrice  string `json:"unitPrice"`
	Quantity   int    `json:"quantity"`
	LineTotal  string `json:"lineTotal"`
}

// Order is one placed order with its stored totals.
type Order struct {
	ID              string      `json:"id"`
	Items           []OrderItem `json:"items"`
	Subtotal        string      `json:"subtotal"`
	DeliveryFee     string      `json:"deliveryFee"`
	Tax             string      `json:"tax"`
	Total           string      `json:"total"`
	Status          string      `json:"status"`
	DeliveryAddress string      `json:"deliveryAddress"`
	PlacedAt        string      `json:"placedAt"`
}
