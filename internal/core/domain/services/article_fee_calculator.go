package services

import (
	"fmt"

	"deliveryfee/internal/core/domain/model/catalog"
	"deliveryfee/internal/core/domain/model/fee"
	"deliveryfee/internal/core/domain/model/order"
	"deliveryfee/internal/core/domain/model/zone"
)

// ArticleFeeCalculator prices a single unit of an article for a given order.
//
// Priority of the pricing rules:
//   - The order must carry a delivery address, whatever the delivery mode
//   - In-agency pickup uses the flat per-class rate, zero for classes without one
//   - Door delivery in a primary city uses the zone price of the destination quarter
//   - EXTRA_LARGE door delivery outside primary cities is negotiable
//   - Served secondary cities use their own price, every other city falls back
//     to the price of its region
//
// A missing table entry is priced at zero rather than reported.
type ArticleFeeCalculator struct {
	tables   *zone.Tables
	resolver ZoneResolver
}

// NewArticleFeeCalculator creates a calculator reading prices from tables.
func NewArticleFeeCalculator(tables *zone.Tables) ArticleFeeCalculator {
	return ArticleFeeCalculator{
		tables:   tables,
		resolver: NewZoneResolver(tables),
	}
}

// FeeForArticle returns the delivery fee of one unit of article shipped for o.
//
// Returns:
//   - fee.DeliveryFees: the unit fee, possibly negotiable
//   - error: ErrMissingDestination when o has no address, ErrUnsupportedPricingCase
//     for EXTRA_LARGE door delivery inside a primary city
func (c ArticleFeeCalculator) FeeForArticle(o *order.Order, article catalog.ProductVariant) (fee.DeliveryFees, error) {
	address, ok := o.Address()
	if !ok {
		return fee.DeliveryFees{}, ErrMissingDestination
	}

	class := article.ShippingClass()
	if o.DeliveryMode() == order.InAgency {
		return c.priced(c.tables.InAgencyPrice(class)), nil
	}

	city := address.City().Name
	if c.tables.IsPrimaryCity(city) {
		if class == catalog.ExtraLarge {
			return fee.DeliveryFees{}, fmt.Errorf("%w: %s door delivery in %s", ErrUnsupportedPricingCase, class, city)
		}

		resolution, found := c.resolver.Resolve(address.Quarter().Name, city)
		if !found {
			return fee.Free(), nil
		}

		return c.priced(c.tables.DoorDeliveryPrice(resolution.City, resolution.Zone, class)), nil
	}

	if class == catalog.ExtraLarge {
		return fee.Negotiable(), nil
	}

	region := address.Region().Name
	if c.tables.IsServedCity(city) {
		return c.priced(c.tables.ServedCityPrice(region, city, class)), nil
	}

	return c.priced(c.tables.UnservedRegionPrice(region, class)), nil
}

func (c ArticleFeeCalculator) priced(price float64, found bool) fee.DeliveryFees {
	if !found {
		return fee.Free()
	}
	return fee.Priced(price)
}
