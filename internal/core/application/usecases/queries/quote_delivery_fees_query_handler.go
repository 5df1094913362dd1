package queries

import (
	"context"
	"log/slog"

	"deliveryfee/internal/core/ports"
)

// QuoteDeliveryFeesQueryHandler prices unsaved orders. It touches no storage.
type QuoteDeliveryFeesQueryHandler struct {
	calculator ports.FeeCalculator
	metrics    ports.FeeMetrics
	logger     *slog.Logger
}

func NewQuoteDeliveryFeesQueryHandler(
	calculator ports.FeeCalculator,
	metrics ports.FeeMetrics,
	logger *slog.Logger,
) QuoteDeliveryFeesQueryHandler {
	return QuoteDeliveryFeesQueryHandler{
		calculator: calculator,
		metrics:    metrics,
		logger:     logger.With("component", "quote_delivery_fees_query"),
	}
}

func (h QuoteDeliveryFeesQueryHandler) Handle(
	ctx context.Context,
	query QuoteDeliveryFeesQuery,
) (DeliveryFeesResponse, error) {
	if err := query.Validate(); err != nil {
		return DeliveryFeesResponse{}, err
	}

	return price(ctx, h.calculator, h.metrics, h.logger, query.Order())
}
