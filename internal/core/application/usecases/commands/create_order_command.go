package commands

import (
	"errors"

	"deliveryfee/internal/core/domain/model/kernel"
	"deliveryfee/internal/core/domain/model/order"
	"deliveryfee/internal/pkg/errs"
	"deliveryfee/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand registers an order so its delivery fee can be computed
// later by the refresh job. The address may be absent.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), &addr, order.HomeDelivery, lines)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	address      *kernel.Address
	deliveryMode order.DeliveryMode
	lines        []order.OrderedLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand requires a valid order ID, a known delivery mode and
// at least one line.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	address *kernel.Address,
	mode order.DeliveryMode,
	lines []order.OrderedLine,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		address: address,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDeliveryMode(mode),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Address returns the destination, nil when the customer has not provided one.
func (c CreateOrderCommand) Address() *kernel.Address {
	return c.address
}

func (c CreateOrderCommand) DeliveryMode() order.DeliveryMode {
	return c.deliveryMode
}

func (c CreateOrderCommand) Lines() []order.OrderedLine {
	return c.lines
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setDeliveryMode(mode order.DeliveryMode) error {
	if err := mode.Validate(); err != nil {
		return err
	}

	c.deliveryMode = mode
	return nil
}

func (c *CreateOrderCommand) setLines(lines []order.OrderedLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}

	c.lines = lines
	return nil
}
