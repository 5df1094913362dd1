package ports

import (
	"deliveryfee/internal/core/domain/model/fee"
	"deliveryfee/internal/core/domain/model/order"
)

// FeeCalculator prices an order. services.DeliveryFeeService is the production
// implementation.
type FeeCalculator interface {
	CalculateFees(o *order.Order) (fee.DeliveryFees, error)
}
