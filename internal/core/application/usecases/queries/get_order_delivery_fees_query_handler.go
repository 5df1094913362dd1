package queries

import (
	"context"
	"log/slog"
	"time"

	"deliveryfee/internal/core/domain/model/kernel"
	"deliveryfee/internal/core/domain/model/order"
	"deliveryfee/internal/core/ports"
)

// OrderReader loads order aggregates. ports.OrderRepository satisfies it.
type OrderReader interface {
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}

// GetOrderDeliveryFeesQueryHandler loads an order and prices it.
//
// Errors are returned as produced: errs.ErrObjectNotFound for an unknown order,
// services.ErrMissingDestination or services.ErrFeeComputationFailed from the engine.
type GetOrderDeliveryFeesQueryHandler struct {
	orders     OrderReader
	calculator ports.FeeCalculator
	metrics    ports.FeeMetrics
	logger     *slog.Logger
}

func NewGetOrderDeliveryFeesQueryHandler(
	orders OrderReader,
	calculator ports.FeeCalculator,
	metrics ports.FeeMetrics,
	logger *slog.Logger,
) GetOrderDeliveryFeesQueryHandler {
	return GetOrderDeliveryFeesQueryHandler{
		orders:     orders,
		calculator: calculator,
		metrics:    metrics,
		logger:     logger.With("component", "get_order_delivery_fees_query"),
	}
}

func (h GetOrderDeliveryFeesQueryHandler) Handle(
	ctx context.Context,
	query GetOrderDeliveryFeesQuery,
) (DeliveryFeesResponse, error) {
	if err := query.Validate(); err != nil {
		return DeliveryFeesResponse{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return DeliveryFeesResponse{}, err
	}

	return price(ctx, h.calculator, h.metrics, h.logger, o)
}

// price runs the engine on o and records the computation.
func price(
	ctx context.Context,
	calculator ports.FeeCalculator,
	metrics ports.FeeMetrics,
	logger *slog.Logger,
	o *order.Order,
) (DeliveryFeesResponse, error) {
	start := time.Now()
	fees, err := calculator.CalculateFees(o)
	outcome := ports.ComputationOutcome(fees, err)
	metrics.ObserveComputation(o.DeliveryMode(), outcome, time.Since(start))

	logger.DebugContext(ctx, "Delivery fees computed",
		"order_id", o.ID().String(),
		"delivery_mode", o.DeliveryMode().String(),
		"units", o.UnitCount(),
		"outcome", outcome,
		"amount", fees.Amount(),
	)

	if err != nil {
		return DeliveryFeesResponse{}, err
	}

	return DeliveryFeesResponse{
		Amount:     fees.Amount(),
		Negotiable: fees.IsNegotiable(),
	}, nil
}
