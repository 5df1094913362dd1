// Package fee defines DeliveryFees, the single value produced by the delivery fee engine.
package fee

import (
	"fmt"
	"math"

	"deliveryfee/internal/pkg/errs"
)

// DeliveryFees is a computed shipping cost. When Negotiable is true the amount is not
// authoritative (it is 0 by convention): the price must be agreed with the customer
// out of band, and callers must not present it as free shipping.
type DeliveryFees struct {
	amount     float64
	negotiable bool
}

// NewDeliveryFees validates that amount is a finite, non-negative number.
func NewDeliveryFees(amount float64, negotiable bool) (DeliveryFees, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return DeliveryFees{}, errs.NewValueIsOutOfRangeError("amount", amount, 0, math.MaxFloat64)
	}
	return DeliveryFees{amount: amount, negotiable: negotiable}, nil
}

// Priced is a firm fee. Table prices are validated on load, so a negative amount
// here is a programming error and is clamped to 0.
func Priced(amount float64) DeliveryFees {
	return DeliveryFees{amount: math.Max(amount, 0)}
}

// Free is a firm zero fee.
func Free() DeliveryFees {
	return DeliveryFees{}
}

// Negotiable marks the fee as requiring manual negotiation.
func Negotiable() DeliveryFees {
	return DeliveryFees{negotiable: true}
}

func (f DeliveryFees) Amount() float64 { return f.amount }

func (f DeliveryFees) IsNegotiable() bool { return f.negotiable }

func (f DeliveryFees) String() string {
	if f.negotiable {
		return "negotiable"
	}
	return fmt.Sprintf("%.2f", f.amount)
}
