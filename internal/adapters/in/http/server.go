// Package http is the REST surface of the delivery fee service.
package http

import (
	"context"
	"log/slog"
	"net/http"

	"deliveryfee/internal/core/application/usecases/commands"
	"deliveryfee/internal/core/application/usecases/queries"
	"deliveryfee/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const defaultAwaitingLimit = 50

type (
	QuoteHandler interface {
		Handle(ctx context.Context, query queries.QuoteDeliveryFeesQuery) (queries.DeliveryFeesResponse, error)
	}

	OrderFeesHandler interface {
		Handle(ctx context.Context, query queries.GetOrderDeliveryFeesQuery) (queries.DeliveryFeesResponse, error)
	}

	AwaitingOrdersHandler interface {
		Handle(
			ctx context.Context,
			query queries.ListOrdersAwaitingFeesQuery,
		) ([]queries.ListOrdersAwaitingFeesQueryResponse, error)
	}

	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
	}
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler CreateOrderHandler

	// Query handlers
	quoteHandler          QuoteHandler
	orderFeesHandler      OrderFeesHandler
	awaitingOrdersHandler AwaitingOrdersHandler

	logger *slog.Logger
}

func NewServer(
	createOrderHandler CreateOrderHandler,
	quoteHandler QuoteHandler,
	orderFeesHandler OrderFeesHandler,
	awaitingOrdersHandler AwaitingOrdersHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:    createOrderHandler,
		quoteHandler:          quoteHandler,
		orderFeesHandler:      orderFeesHandler,
		awaitingOrdersHandler: awaitingOrdersHandler,
		logger:                logger.With("component", "http_server"),
	}
}

// RegisterHandlers mounts the API routes on e behind the given middlewares.
func RegisterHandlers(e *echo.Echo, s *Server, middlewares ...echo.MiddlewareFunc) {
	api := e.Group("/api/v1", middlewares...)
	api.POST("/delivery-fees/quote", s.QuoteDeliveryFees)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/awaiting-fees", s.ListOrdersAwaitingFees)
	api.GET("/orders/:orderId/delivery-fees", s.GetOrderDeliveryFees)
}

// QuoteDeliveryFees handles POST /api/v1/delivery-fees/quote.
func (s *Server) QuoteDeliveryFees(ctx echo.Context) error {
	var body QuoteRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	mode, addr, lines, err := toOrderParts(body.DeliveryMode, body.Address, body.Lines)
	if err != nil {
		return badRequest(ctx, "Invalid cart: "+err.Error())
	}

	cart, err := newCart(mode, addr, lines)
	if err != nil {
		return badRequest(ctx, "Invalid cart: "+err.Error())
	}

	query, err := queries.NewQuoteDeliveryFeesQuery(cart)
	if err != nil {
		return badRequest(ctx, "Invalid cart: "+err.Error())
	}

	fees, err := s.quoteHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DeliveryFees(fees))
}

// GetOrderDeliveryFees handles GET /api/v1/orders/{orderId}/delivery-fees.
func (s *Server) GetOrderDeliveryFees(ctx echo.Context) error {
	var orderID openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return badRequest(ctx, "Invalid format for parameter orderId: "+err.Error())
	}

	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderDeliveryFeesQuery(id)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	fees, err := s.orderFeesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DeliveryFees(fees))
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id := kernel.NewUUID()
	if body.ID != nil {
		requested, err := kernel.UUIDFromBytes(body.ID[:])
		if err != nil {
			return badRequest(ctx, "Invalid order id: "+err.Error())
		}
		id = requested
	}

	mode, addr, lines, err := toOrderParts(body.DeliveryMode, body.Address, body.Lines)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	cmd, err := commands.NewCreateOrderCommand(id, addr, mode, lines)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedOrder{ID: id.Bytes()})
}

// ListOrdersAwaitingFees handles GET /api/v1/orders/awaiting-fees.
func (s *Server) ListOrdersAwaitingFees(ctx echo.Context) error {
	var limit *int
	if err := runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &limit); err != nil {
		return badRequest(ctx, "Invalid format for parameter limit: "+err.Error())
	}

	size := defaultAwaitingLimit
	if limit != nil {
		size = *limit
	}

	query, err := queries.NewListOrdersAwaitingFeesQuery(size)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orders, err := s.awaitingOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]AwaitingOrder, len(orders))
	for i, o := range orders {
		response[i] = AwaitingOrder{
			ID:           o.ID.Bytes(),
			City:         o.City,
			DeliveryMode: o.DeliveryMode.String(),
			CreatedAt:    o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
