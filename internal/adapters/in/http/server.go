// Package http exposes the dispatch core over a REST API.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"errors"
	"net/http"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON error body returned by all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PlaceOrderItemRequest is one requested line in a place-order request.
type PlaceOrderItemRequest struct {
	ProductCode string   `json:"productCode"`
	Quantity    int      `json:"quantity"`
	Toppings    []string `json:"toppings,omitempty"`
}

// PlaceOrderRequest is the JSON body of POST /api/v1/orders.
type PlaceOrderRequest struct {
	Items []PlaceOrderItemRequest `json:"items"`
}

// OrderItemResponse is one line of an order in API responses.
type OrderItemResponse struct {
	ProductCode string   `json:"productCode"`
	Quantity    int      `json:"quantity"`
	Toppings    []string `json:"toppings,omitempty"`
	Category    string   `json:"category"`
	LinePrice   float64  `json:"linePrice"`
}

// OrderResponse is an order in API responses.
type OrderResponse struct {
	Number      string              `json:"number"`
	Status      string              `json:"status"`
	CreatedAt   time.Time           `json:"createdAt"`
	CompletedAt *time.Time          `json:"completedAt,omitempty"`
	Items       []OrderItemResponse `json:"items"`
}

// ProductResponse is a catalog product in API responses.
type ProductResponse struct {
	Code        string  `json:"code"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
}

// Server wires HTTP handlers to application command and query handlers.
type Server struct {
	// Command handlers
	staffLoginHandler        commands.StaffLoginCommandHandler
	staffLogoutHandler       commands.StaffLogoutCommandHandler
	placeOrderHandler        commands.PlaceOrderCommandHandler
	processOrdersHandler     commands.ProcessOrdersCommandHandler
	completeOrderItemHandler commands.CompleteOrderItemCommandHandler

	// Query handlers
	getAvailableProductsHandler queries.GetAvailableProductsQueryHandler
	getOrdersByStatusHandler    queries.GetOrdersByStatusQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	staffLoginHandler commands.StaffLoginCommandHandler,
	staffLogoutHandler commands.StaffLogoutCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	processOrdersHandler commands.ProcessOrdersCommandHandler,
	completeOrderItemHandler commands.CompleteOrderItemCommandHandler,
	getAvailableProductsHandler queries.GetAvailableProductsQueryHandler,
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler,
) *Server {
	return &Server{
		staffLoginHandler:           staffLoginHandler,
		staffLogoutHandler:          staffLogoutHandler,
		placeOrderHandler:           placeOrderHandler,
		processOrdersHandler:        processOrdersHandler,
		completeOrderItemHandler:    completeOrderItemHandler,
		getAvailableProductsHandler: getAvailableProductsHandler,
		getOrdersByStatusHandler:    getOrdersByStatusHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/staff/:id/login", s.StaffLogin)
	api.POST("/staff/:id/logout", s.StaffLogout)
	api.POST("/orders", s.PlaceOrder)
	api.POST("/orders/process", s.ProcessOrders)
	api.POST("/orders/:number/items/:productCode/complete", s.CompleteOrderItem)
	api.GET("/products/available", s.GetAvailableProducts)
	api.GET("/orders", s.GetOrdersByStatus)
}

// StaffLogin handles POST /api/v1/staff/:id/login.
func (s *Server) StaffLogin(ctx echo.Context) error {
	cmd, err := commands.NewStaffLoginCommand(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid staff id: " + err.Error(),
		})
	}

	if handleErr := s.staffLoginHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, commands.ErrStaffNotFound) {
			return ctx.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "Staff member not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to log staff in",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StaffLogout handles POST /api/v1/staff/:id/logout.
func (s *Server) StaffLogout(ctx echo.Context) error {
	cmd, err := commands.NewStaffLogoutCommand(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid staff id: " + err.Error(),
		})
	}

	if handleErr := s.staffLogoutHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, commands.ErrStaffNotFound) {
			return ctx.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "Staff member not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to log staff out",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var request PlaceOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	itemRequests := make([]commands.ItemRequest, 0, len(request.Items))
	for _, item := range request.Items {
		itemRequests = append(itemRequests, commands.ItemRequest{
			ProductCode: item.ProductCode,
			Quantity:    item.Quantity,
			Toppings:    item.Toppings,
		})
	}

	cmd, err := commands.NewPlaceOrderCommand(itemRequests)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, commands.ErrInvalidOrder) {
			return ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{
				Code:    http.StatusUnprocessableEntity,
				Message: "No requested item resolves to a known product",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to place order",
		})
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(placed))
}

// ProcessOrders handles POST /api/v1/orders/process - runs one dispatch pass.
func (s *Server) ProcessOrders(ctx echo.Context) error {
	cmd := commands.NewProcessOrdersCommand()

	started, err := s.processOrdersHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Dispatch pass failed",
		})
	}

	response := make([]OrderResponse, 0, len(started))
	for _, assigned := range started {
		response = append(response, orderToResponse(assigned))
	}

	return ctx.JSON(http.StatusOK, response)
}

// CompleteOrderItem handles POST /api/v1/orders/:number/items/:productCode/complete.
func (s *Server) CompleteOrderItem(ctx echo.Context) error {
	number, err := kernel.OrderNumberFromString(ctx.Param("number"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order number: " + err.Error(),
		})
	}

	cmd, err := commands.NewCompleteOrderItemCommand(number, ctx.Param("productCode"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid completion request: " + err.Error(),
		})
	}

	if handleErr := s.completeOrderItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, commands.ErrOrderNotFound) {
			return ctx.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "Order not found",
			})
		}
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: "Failed to complete order: " + handleErr.Error(),
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAvailableProducts handles GET /api/v1/products/available.
func (s *Server) GetAvailableProducts(ctx echo.Context) error {
	query := queries.NewGetAvailableProductsQuery()

	available, err := s.getAvailableProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve available products",
		})
	}

	response := make([]ProductResponse, 0, len(available))
	for _, p := range available {
		response = append(response, ProductResponse{
			Code:        p.Code,
			Description: p.Description,
			Price:       p.Price,
			Category:    p.Category,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrdersByStatus handles GET /api/v1/orders?status=Placed.
func (s *Server) GetOrdersByStatus(ctx echo.Context) error {
	status, err := order.StatusFromString(ctx.QueryParam("status"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid status: " + ctx.QueryParam("status"),
		})
	}

	query, err := queries.NewGetOrdersByStatusQuery(status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid status: " + err.Error(),
		})
	}

	orders, err := s.getOrdersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		items := make([]OrderItemResponse, 0, len(o.Items))
		for _, item := range o.Items {
			items = append(items, OrderItemResponse{
				ProductCode: item.ProductCode,
				Quantity:    item.Quantity,
				Toppings:    item.Toppings,
				Category:    item.Category,
				LinePrice:   item.LinePrice,
			})
		}
		response = append(response, OrderResponse{
			Number:      o.Number,
			Status:      o.Status,
			CreatedAt:   o.CreatedAt,
			CompletedAt: o.CompletedAt,
			Items:       items,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// orderToResponse maps an order aggregate to its API representation.
func orderToResponse(aggregate *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemResponse{
			ProductCode: item.ProductCode(),
			Quantity:    item.Quantity(),
			Toppings:    item.Toppings(),
			Category:    item.Category().String(),
			LinePrice:   item.LinePrice().Amount(),
		})
	}

	return OrderResponse{
		Number:      aggregate.Number().String(),
		Status:      aggregate.Status().String(),
		CreatedAt:   aggregate.CreatedAt(),
		CompletedAt: aggregate.CompletedAt(),
		Items:       items,
	}
}
