package queries

import (
	"errors"
	"time"

	"deliveryfee/internal/core/domain/model/kernel"
	"deliveryfee/internal/core/domain/model/order"
	"deliveryfee/internal/pkg/errs"
	"deliveryfee/internal/pkg/guard"
)

const maxListLimit = 500

var ErrListOrdersAwaitingFeesQueryIsNotConstructed = errors.New(
	"ListOrdersAwaitingFeesQuery must be created via NewListOrdersAwaitingFeesQuery constructor",
)

// ListOrdersAwaitingFeesQuery lists stored orders that have no recorded delivery
// fee yet, oldest first. It is the back-office view of the refresh job backlog.
//
// Example:
//
//	query, _ := NewListOrdersAwaitingFeesQuery(50)
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list pending orders: %w", err)
//	}
//	for _, o := range orders {
//	    fmt.Printf("%s to %s (%s)\n", o.ID, o.City, o.DeliveryMode)
//	}
type ListOrdersAwaitingFeesQuery struct {
	limit int

	guard guard.ConstructorGuard
}

// NewListOrdersAwaitingFeesQuery accepts a limit between 1 and 500.
func NewListOrdersAwaitingFeesQuery(limit int) (ListOrdersAwaitingFeesQuery, error) {
	if limit < 1 || limit > maxListLimit {
		return ListOrdersAwaitingFeesQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, maxListLimit)
	}

	return ListOrdersAwaitingFeesQuery{
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersAwaitingFeesQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersAwaitingFeesQueryIsNotConstructed)
}

func (q ListOrdersAwaitingFeesQuery) Limit() int {
	return q.limit
}

// ListOrdersAwaitingFeesQueryResponse is one row of the backlog. City is empty
// for orders stored without an address.
type ListOrdersAwaitingFeesQueryResponse struct {
	ID           kernel.UUID
	City         string
	DeliveryMode order.DeliveryMode
	CreatedAt    time.Time
}
