package order

import (
	"errors"
	"fmt"
	"math"

	"deliveryfee/internal/core/domain/model/catalog"
	"deliveryfee/internal/pkg/errs"
	"deliveryfee/internal/pkg/guard"
)

var ErrOrderedLineIsNotConstructed = errors.New("OrderedLine must be created via NewOrderedLine constructor")

// OrderedLine is one line of an order: a variant, how many units of it, and the
// line total in currency units.
type OrderedLine struct { //nolint:recvcheck //using for validation
	variant    catalog.ProductVariant
	quantity   int
	totalPrice float64

	guard guard.ConstructorGuard
}

func NewOrderedLine(variant catalog.ProductVariant, quantity int, totalPrice float64) (OrderedLine, error) {
	line := OrderedLine{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setVariant(variant),
		line.setQuantity(quantity),
		line.setTotalPrice(totalPrice),
	); err != nil {
		return OrderedLine{}, err
	}

	return line, nil
}

func (l OrderedLine) Validate() error {
	return l.guard.Validate(ErrOrderedLineIsNotConstructed)
}

func (l OrderedLine) Variant() catalog.ProductVariant { return l.variant }

func (l OrderedLine) Quantity() int { return l.quantity }

func (l OrderedLine) TotalPrice() float64 { return l.totalPrice }

func (l *OrderedLine) setVariant(variant catalog.ProductVariant) error {
	if err := variant.Validate(); err != nil {
		return err
	}

	l.variant = variant
	return nil
}

func (l *OrderedLine) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}

	l.quantity = quantity
	return nil
}

func (l *OrderedLine) setTotalPrice(totalPrice float64) error {
	if math.IsNaN(totalPrice) || math.IsInf(totalPrice, 0) || totalPrice < 0 {
		return errs.NewValueIsOutOfRangeError("totalPrice", totalPrice, 0, math.MaxFloat64)
	}

	l.totalPrice = totalPrice
	return nil
}
