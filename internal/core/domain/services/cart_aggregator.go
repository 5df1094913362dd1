package services

import (
	"fmt"

	"deliveryfee/internal/core/domain/model/catalog"
	"deliveryfee/internal/core/domain/model/fee"
	"deliveryfee/internal/core/domain/model/order"
)

// FreeShippingThreshold is the order total, in XAF, from which delivery is free.
const FreeShippingThreshold = 1_000_000

const (
	twoUnitsRate   = 0.8
	threeUnitsRate = 0.75
)

type pricedUnit struct {
	amount float64
	class  catalog.ShippingClass
}

// CartAggregator combines the unit fees of an order into the fee of the whole cart.
//
// Business rules, applied in order:
//   - Any negotiable unit makes the whole cart negotiable
//   - Orders reaching FreeShippingThreshold ship for free
//   - A cart of FMCG units only costs its most expensive unit
//   - A cart without FMCG units gets a volume discount: 20% off for two units,
//     25% off for three, and only the most expensive unit above three
//   - Mixed carts are priced by the non-FMCG side, except when a single non-FMCG
//     unit is small enough to travel with the FMCG parcel
type CartAggregator struct{}

func NewCartAggregator() CartAggregator {
	return CartAggregator{}
}

// Aggregate returns the delivery fee of o given unitFees, the fee of each unit of
// o in line order, a line of quantity n contributing n consecutive fees.
func (a CartAggregator) Aggregate(o *order.Order, unitFees []fee.DeliveryFees) (fee.DeliveryFees, error) {
	if len(unitFees) != o.UnitCount() {
		return fee.DeliveryFees{}, fmt.Errorf("%w: got %d, want %d", ErrUnitFeeCountMismatch, len(unitFees), o.UnitCount())
	}

	for _, f := range unitFees {
		if f.IsNegotiable() {
			return fee.Negotiable(), nil
		}
	}

	if o.TotalPrice() >= FreeShippingThreshold {
		return fee.Free(), nil
	}

	switch len(unitFees) {
	case 0:
		return fee.Free(), nil
	case 1:
		return unitFees[0], nil
	}

	fmcg, other := a.split(o, unitFees)

	switch {
	case len(other) == 0:
		return fee.Priced(maxAmount(fmcg)), nil
	case len(fmcg) == 0:
		return fee.Priced(volumeBand(other)), nil
	case len(other) == 1 && len(fmcg) == 1:
		if other[0].class.IsGreaterThan(catalog.ExtraLarge) {
			return fee.Priced(other[0].amount), nil
		}
		return fee.Priced(fmcg[0].amount), nil
	case len(other) == 1:
		if other[0].class.IsGreaterThan(catalog.Medium) {
			return fee.Priced(other[0].amount), nil
		}
		return fee.Priced(maxAmount(fmcg)), nil
	default:
		return fee.Priced(volumeBand(other)), nil
	}
}

// split expands the lines of o into units and partitions them on the FMCG flag.
func (a CartAggregator) split(o *order.Order, unitFees []fee.DeliveryFees) (fmcg, other []pricedUnit) {
	i := 0
	for _, line := range o.Lines() {
		variant := line.Variant()
		for range line.Quantity() {
			unit := pricedUnit{amount: unitFees[i].Amount(), class: variant.ShippingClass()}
			if variant.IsFmcg() {
				fmcg = append(fmcg, unit)
			} else {
				other = append(other, unit)
			}
			i++
		}
	}
	return fmcg, other
}

func volumeBand(units []pricedUnit) float64 {
	switch len(units) {
	case 1:
		return units[0].amount
	case 2:
		return twoUnitsRate * sumAmount(units)
	case 3:
		return threeUnitsRate * sumAmount(units)
	default:
		return maxAmount(units)
	}
}

func sumAmount(units []pricedUnit) float64 {
	var sum float64
	for _, u := range units {
		sum += u.amount
	}
	return sum
}

func maxAmount(units []pricedUnit) float64 {
	var m float64
	for _, u := range units {
		m = max(m, u.amount)
	}
	return m
}
