package commands

import (
	"context"
	"log/slog"

	"deliveryfee/internal/core/domain/model/order"
)

// CreateOrderCommandHandler stores new orders without a delivery fee.
// A duplicate identifier surfaces as ports.ErrOrderAlreadyExists.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "create_order_command"),
	}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.Address(), cmd.DeliveryMode(), cmd.Lines())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Order created",
		"order_id", newOrder.ID().String(),
		"delivery_mode", newOrder.DeliveryMode().String(),
		"units", newOrder.UnitCount(),
	)
	return nil
}
