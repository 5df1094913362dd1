package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"deliveryfee/internal/core/domain/services"
	"deliveryfee/internal/core/ports"
)

// RefreshDeliveryFeesResult counts the orders visited by one refresh.
type RefreshDeliveryFeesResult struct {
	Updated int
	Skipped int
}

// RefreshDeliveryFeesCommandHandler records delivery fees on awaiting orders.
//
// Orders the engine cannot price because of their data (no address, an
// unsupported class and city combination) are skipped and stay awaiting. Any
// other failure aborts the batch and nothing is recorded.
type RefreshDeliveryFeesCommandHandler struct {
	uowFactory OrderUoWFactory
	calculator ports.FeeCalculator
	metrics    ports.FeeMetrics
	logger     *slog.Logger
}

func NewRefreshDeliveryFeesCommandHandler(
	uowFactory OrderUoWFactory,
	calculator ports.FeeCalculator,
	metrics ports.FeeMetrics,
	logger *slog.Logger,
) RefreshDeliveryFeesCommandHandler {
	return RefreshDeliveryFeesCommandHandler{
		uowFactory: uowFactory,
		calculator: calculator,
		metrics:    metrics,
		logger:     logger.With("component", "refresh_delivery_fees_command"),
	}
}

func (h RefreshDeliveryFeesCommandHandler) Handle(
	ctx context.Context,
	cmd RefreshDeliveryFeesCommand,
) (RefreshDeliveryFeesResult, error) {
	var result RefreshDeliveryFeesResult

	if err := cmd.Validate(); err != nil {
		return result, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return result, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	awaiting, err := orderRepo.GetAllAwaitingFees(ctx, cmd.BatchSize())
	if err != nil {
		return result, err
	}

	if len(awaiting) == 0 {
		return result, nil
	}

	for _, o := range awaiting {
		start := time.Now()
		fees, calcErr := h.calculator.CalculateFees(o)
		h.metrics.ObserveComputation(o.DeliveryMode(), ports.ComputationOutcome(fees, calcErr), time.Since(start))

		if calcErr != nil {
			if !isUnpriceable(calcErr) {
				return RefreshDeliveryFeesResult{}, calcErr
			}
			// TODO: persist a skip marker so unpriceable orders stop occupying
			// the head of every limited batch.
			h.logger.WarnContext(ctx, "Order skipped", "order_id", o.ID().String(), "error", calcErr)
			h.metrics.ObserveRefresh(ports.RefreshSkipped)
			result.Skipped++
			continue
		}

		if err = o.ApplyDeliveryFees(fees); err != nil {
			return RefreshDeliveryFeesResult{}, err
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return RefreshDeliveryFeesResult{}, err
		}
		result.Updated++
	}

	if err = uow.Commit(ctx); err != nil {
		return RefreshDeliveryFeesResult{}, err
	}
	for range result.Updated {
		h.metrics.ObserveRefresh(ports.RefreshUpdated)
	}

	h.logger.InfoContext(ctx, "Delivery fees refreshed",
		"updated", result.Updated,
		"skipped", result.Skipped,
	)
	return result, nil
}

func isUnpriceable(err error) bool {
	return errors.Is(err, services.ErrMissingDestination) ||
		errors.Is(err, services.ErrUnsupportedPricingCase)
}
