package queries

import (
	"errors"

	"deliveryfee/internal/core/domain/model/order"
	"deliveryfee/internal/pkg/errs"
	"deliveryfee/internal/pkg/guard"
)

var ErrQuoteDeliveryFeesQueryIsNotConstructed = errors.New(
	"QuoteDeliveryFeesQuery must be created via NewQuoteDeliveryFeesQuery constructor",
)

// QuoteDeliveryFeesQuery prices an order that is not stored, typically a cart
// still being checked out.
type QuoteDeliveryFeesQuery struct {
	order *order.Order

	guard guard.ConstructorGuard
}

func NewQuoteDeliveryFeesQuery(o *order.Order) (QuoteDeliveryFeesQuery, error) {
	if o == nil {
		return QuoteDeliveryFeesQuery{}, errs.NewValueIsRequiredError("order")
	}
	if err := o.Validate(); err != nil {
		return QuoteDeliveryFeesQuery{}, err
	}

	return QuoteDeliveryFeesQuery{
		order: o,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q QuoteDeliveryFeesQuery) Validate() error {
	return q.guard.Validate(ErrQuoteDeliveryFeesQueryIsNotConstructed)
}

func (q QuoteDeliveryFeesQuery) Order() *order.Order {
	return q.order
}
