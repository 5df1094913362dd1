// Package queries contains read operations of the delivery fee service.
// Queries never modify state: fees computed here are returned, not recorded.
package queries

import (
	"errors"

	"deliveryfee/internal/core/domain/model/kernel"
	"deliveryfee/internal/pkg/guard"
)

var ErrGetOrderDeliveryFeesQueryIsNotConstructed = errors.New(
	"GetOrderDeliveryFeesQuery must be created via NewGetOrderDeliveryFeesQuery constructor",
)

// GetOrderDeliveryFeesQuery prices a stored order with the current reference tables.
//
// Example:
//
//	query, err := NewGetOrderDeliveryFeesQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	fees, err := handler.Handle(ctx, query)
type GetOrderDeliveryFeesQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderDeliveryFeesQuery(orderID kernel.UUID) (GetOrderDeliveryFeesQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderDeliveryFeesQuery{}, err
	}

	return GetOrderDeliveryFeesQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderDeliveryFeesQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDeliveryFeesQueryIsNotConstructed)
}

func (q GetOrderDeliveryFeesQuery) OrderID() kernel.UUID {
	return q.orderID
}

// DeliveryFeesResponse is the fee returned to callers. When Negotiable is true
// Amount is not authoritative and must not be shown as a free delivery.
type DeliveryFeesResponse struct {
	Amount     float64
	Negotiable bool
}
