package http

import (
	"errors"
	"net/http"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/cart"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	addCartLineHandler        commands.AddCartLineCommandHandler
	changeLineQuantityHandler commands.ChangeCartLineQuantityCommandHandler
	removeCartLineHandler     commands.RemoveCartLineCommandHandler
	checkoutHandler           commands.CheckoutCommandHandler
	updateOrderStatusHandler  commands.UpdateOrderStatusCommandHandler

	// Query handlers
	getRestaurantMenuHandler queries.GetRestaurantMenuQueryHandler
	getCartSummaryHandler    queries.GetCartSummaryQueryHandler
	getOrderHistoryHandler   queries.GetOrderHistoryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	addCartLineHandler commands.AddCartLineCommandHandler,
	changeLineQuantityHandler commands.ChangeCartLineQuantityCommandHandler,
	removeCartLineHandler commands.RemoveCartLineCommandHandler,
	checkoutHandler commands.CheckoutCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	getRestaurantMenuHandler queries.GetRestaurantMenuQueryHandler,
	getCartSummaryHandler queries.GetCartSummaryQueryHandler,
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler,
) *Server {
	return &Server{
		addCartLineHandler:        addCartLineHandler,
		changeLineQuantityHandler: changeLineQuantityHandler,
		removeCartLineHandler:     removeCartLineHandler,
		checkoutHandler:           checkoutHandler,
		updateOrderStatusHandler:  updateOrderStatusHandler,
		getRestaurantMenuHandler:  getRestaurantMenuHandler,
		getCartSummaryHandler:     getCartSummaryHandler,
		getOrderHistoryHandler:    getOrderHistoryHandler,
	}
}

// RegisterRoutes attaches all API routes to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.GET("/restaurants/:restaurantId/menu", s.GetRestaurantMenu)
	api.POST("/carts/:cartId/lines", s.AddCartLine)
	api.PATCH("/carts/:cartId/lines/:lineId", s.ChangeCartLineQuantity)
	api.DELETE("/carts/:cartId/lines/:lineId", s.RemoveCartLine)
	api.GET("/carts/:cartId/summary", s.GetCartSummary)
	api.POST("/carts/:cartId/checkout", s.Checkout)
	api.GET("/orders", s.GetOrders)
	api.POST("/orders/:orderId/status", s.UpdateOrderStatus)
}

// GetRestaurantMenu handles GET /api/v1/restaurants/:restaurantId/menu.
func (s *Server) GetRestaurantMenu(ctx echo.Context) error {
	restaurantID, err := kernel.UUIDFromString(ctx.Param("restaurantId"))
	if err != nil {
		return badRequest(ctx, "Invalid restaurant id")
	}

	query, err := queries.NewGetRestaurantMenuQuery(restaurantID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	menu, err := s.getRestaurantMenuHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve menu")
	}

	response := Menu{
		RestaurantID: menu.RestaurantID.String(),
		Items:        make([]MenuItem, 0, len(menu.Items)),
	}
	for _, item := range menu.Items {
		groups := make([]MenuCustomizationGroup, 0, len(item.Groups))
		for _, group := range item.Groups {
			options := make([]MenuOption, 0, len(group.Options))
			for _, option := range group.Options {
				options = append(options, MenuOption{
					ID:         option.ID.String(),
					Name:       option.Name,
					PriceDelta: option.PriceDelta.String(),
				})
			}
			groups = append(groups, MenuCustomizationGroup{
				ID:      group.ID.String(),
				Name:    group.Name,
				Options: options,
			})
		}

		response.Items = append(response.Items, MenuItem{
			ID:          item.ID.String(),
			Name:        item.Name,
			Description: item.Description,
			Category:    item.Category,
			BasePrice:   item.BasePrice.String(),
			Groups:      groups,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddCartLine handles POST /api/v1/carts/:cartId/lines.
func (s *Server) AddCartLine(ctx echo.Context) error {
	cartID, err := kernel.UUIDFromString(ctx.Param("cartId"))
	if err != nil {
		return badRequest(ctx, "Invalid cart id")
	}

	var request AddCartLineRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	menuItemID, err := kernel.UUIDFromString(request.MenuItemID)
	if err != nil {
		return badRequest(ctx, "Invalid menu item id")
	}

	selections := make([]cart.Selection, 0, len(request.Selections))
	for _, raw := range request.Selections {
		groupID, selErr := kernel.UUIDFromString(raw.GroupID)
		if selErr != nil {
			return badRequest(ctx, "Invalid selection group id")
		}
		optionID, selErr := kernel.UUIDFromString(raw.OptionID)
		if selErr != nil {
			return badRequest(ctx, "Invalid selection option id")
		}

		selection, selErr := cart.NewSelection(groupID, optionID)
		if selErr != nil {
			return badRequest(ctx, "Invalid selection: "+selErr.Error())
		}
		selections = append(selections, selection)
	}

	cmd, err := commands.NewAddCartLineCommand(
		cartID, menuItemID, request.Quantity, selections, request.SpecialInstructions,
	)
	if err != nil {
		return badRequest(ctx, "Invalid cart line data: "+err.Error())
	}

	if err = s.addCartLineHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err, "Failed to add cart line")
	}

	return ctx.NoContent(http.StatusCreated)
}

// ChangeCartLineQuantity handles PATCH /api/v1/carts/:cartId/lines/:lineId.
func (s *Server) ChangeCartLineQuantity(ctx echo.Context) error {
	cartID, err := kernel.UUIDFromString(ctx.Param("cartId"))
	if err != nil {
		return badRequest(ctx, "Invalid cart id")
	}
	lineID, err := kernel.UUIDFromString(ctx.Param("lineId"))
	if err != nil {
		return badRequest(ctx, "Invalid line id")
	}

	var request ChangeQuantityRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeCartLineQuantityCommand(cartID, lineID, request.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid quantity: "+err.Error())
	}

	if err = s.changeLineQuantityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err, "Failed to change quantity")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveCartLine handles DELETE /api/v1/carts/:cartId/lines/:lineId.
func (s *Server) RemoveCartLine(ctx echo.Context) error {
	cartID, err := kernel.UUIDFromString(ctx.Param("cartId"))
	if err != nil {
		return badRequest(ctx, "Invalid cart id")
	}
	lineID, err := kernel.UUIDFromString(ctx.Param("lineId"))
	if err != nil {
		return badRequest(ctx, "Invalid line id")
	}

	cmd, err := commands.NewRemoveCartLineCommand(cartID, lineID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.removeCartLineHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err, "Failed to remove cart line")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCartSummary handles GET /api/v1/carts/:cartId/summary.
func (s *Server) GetCartSummary(ctx echo.Context) error {
	cartID, err := kernel.UUIDFromString(ctx.Param("cartId"))
	if err != nil {
		return badRequest(ctx, "Invalid cart id")
	}

	query, err := queries.NewGetCartSummaryQuery(cartID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	summary, err := s.getCartSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(ctx, "Cart not found")
		}
		return internalError(ctx, "Failed to retrieve cart summary")
	}

	response := CartSummary{
		CartID:      summary.CartID.String(),
		Lines:       make([]CartLine, 0, len(summary.Lines)),
		Subtotal:    summary.Subtotal.String(),
		DeliveryFee: summary.DeliveryFee.String(),
		Tax:         summary.Tax.String(),
		Total:       summary.Total.String(),
	}
	for _, line := range summary.Lines {
		response.Lines = append(response.Lines, CartLine{
			ID:                  line.LineID.String(),
			MenuItemID:          line.MenuItemID.String(),
			MenuItemName:        line.MenuItemName,
			UnitPrice:           line.UnitPrice.String(),
			Quantity:            line.Quantity,
			LineTotal:           line.LineTotal.String(),
			SpecialInstructions: line.SpecialInstructions,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// Checkout handles POST /api/v1/carts/:cartId/checkout.
func (s *Server) Checkout(ctx echo.Context) error {
	cartID, err := kernel.UUIDFromString(ctx.Param("cartId"))
	if err != nil {
		return badRequest(ctx, "Invalid cart id")
	}

	var request CheckoutRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCheckoutCommand(cartID, orderID, request.DeliveryAddress)
	if err != nil {
		return badRequest(ctx, "Invalid checkout data: "+err.Error())
	}

	if err = s.checkoutHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, commands.ErrCartIsEmpty) {
			return badRequest(ctx, "Cart is empty")
		}
		return commandError(ctx, err, "Failed to checkout")
	}

	return ctx.JSON(http.StatusCreated, CheckoutResponse{OrderID: orderID.String()})
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetOrderHistoryQuery()

	orders, err := s.getOrderHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}

	response := make([]Order, 0, len(orders))
	for _, o := range orders {
		items := make([]OrderItem, 0, len(o.Items))
		for _, item := range o.Items {
			items = append(items, OrderItem{
				MenuItemID: item.MenuItemID.String(),
				Name:       item.Name,
				UnitPrice:  item.UnitPrice.String(),
				Quantity:   item.Quantity,
				LineTotal:  item.LineTotal.String(),
			})
		}

		response = append(response, Order{
			ID:              o.ID.String(),
			Items:           items,
			Subtotal:        o.Subtotal.String(),
			DeliveryFee:     o.DeliveryFee.String(),
			Tax:             o.Tax.String(),
			Total:           o.Total.String(),
			Status:          o.Status,
			DeliveryAddress: o.DeliveryAddress,
			PlacedAt:        o.PlacedAt.Format(time.RFC3339),
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrderStatus handles POST /api/v1/orders/:orderId/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request UpdateOrderStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.StatusFromString(request.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err, "Failed to update order status")
	}

	return ctx.NoContent(http.StatusNoContent)
}

func commandError(ctx echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return notFound(ctx, err.Error())
	case errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, services.ErrInvalidSelection):
		return badRequest(ctx, err.Error())
	default:
		return internalError(ctx, fallback)
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, Error{
		Code:    http.StatusNotFound,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
