package commands

import (
	"errors"

	"deliveryfee/internal/pkg/errs"
	"deliveryfee/internal/pkg/guard"
)

var ErrRefreshDeliveryFeesCommandIsNotConstructed = errors.New(
	"RefreshDeliveryFeesCommand must be created via NewRefreshDeliveryFeesCommand constructor",
)

// RefreshDeliveryFeesCommand computes and records fees for stored orders that
// have none yet. A batch size of 0 processes every awaiting order.
type RefreshDeliveryFeesCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

func NewRefreshDeliveryFeesCommand(batchSize int) (RefreshDeliveryFeesCommand, error) {
	cmd := RefreshDeliveryFeesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setBatchSize(batchSize); err != nil {
		return RefreshDeliveryFeesCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RefreshDeliveryFeesCommand) Validate() error {
	return c.guard.Validate(ErrRefreshDeliveryFeesCommandIsNotConstructed)
}

func (c RefreshDeliveryFeesCommand) BatchSize() int {
	return c.batchSize
}

func (c *RefreshDeliveryFeesCommand) setBatchSize(batchSize int) error {
	if batchSize < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"batchSize",
			errors.New("must not be negative"),
		)
	}

	c.batchSize = batchSize
	return nil
}
