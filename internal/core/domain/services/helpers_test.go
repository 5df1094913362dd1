package services_test

import (
	"testing"

	"deliveryfee/internal/core/domain/model/catalog"
	"deliveryfee/internal/core/domain/model/kernel"
	"deliveryfee/internal/core/domain/model/order"
	"deliveryfee/internal/core/domain/model/zone"

	"github.com/stretchr/testify/require"
)

func testTables(t *testing.T) *zone.Tables {
	t.Helper()
	tables, err := zone.NewTables(zone.Definition{
		Version:       "test",
		PrimaryCities: []string{"Douala", "Yaoundé"},
		Cities: []zone.CityDefinition{
			{Name: "Douala", Zones: []zone.ZoneDefinition{
				{Name: "A", Quarters: []string{"Akwa", "Bonanjo"}},
				{Name: "B", Quarters: []string{"Makepe", "Bépanda"}},
			}},
			{Name: "Yaounde", Zones: []zone.ZoneDefinition{
				{Name: "A", Quarters: []string{"Bastos"}},
			}},
		},
		DoorDelivery: []zone.ZonePricesDefinition{
			{City: "Douala", Zone: "A", Prices: zone.ClassPrices{
				catalog.Small: 1000, catalog.Medium: 1500, catalog.Large: 2500, catalog.SuperLarge: 10000,
			}},
			{City: "Douala", Zone: "B", Prices: zone.ClassPrices{
				catalog.Small: 1500, catalog.Medium: 2000,
			}},
			{City: "Yaoundé", Zone: "A", Prices: zone.ClassPrices{
				catalog.Small: 1000,
			}},
		},
		Served: []zone.RegionDefinition{
			{Region: "Sud", Cities: []zone.CityPricesDefinition{
				{City: "Kribi", Prices: zone.ClassPrices{catalog.Small: 2000, catalog.Medium: 3000, catalog.Large: 5000}},
			}},
		},
		Unserved: []zone.RegionDefinition{
			{Region: "Est", Cities: []zone.CityPricesDefinition{
				{City: "Bertoua", Prices: zone.ClassPrices{catalog.Small: 3000, catalog.Medium: 4500}},
				{City: "Batouri", Prices: zone.ClassPrices{catalog.Small: 9999}},
			}},
		},
		InAgency: zone.ClassPrices{catalog.SuperLarge: 10000, catalog.ExtraLarge: 5000},
	})
	require.NoError(t, err)
	return tables
}

func newVariant(t *testing.T, class catalog.ShippingClass, fmcg bool) catalog.ProductVariant {
	t.Helper()
	category, err := catalog.NewCategory("Category", fmcg)
	require.NoError(t, err)
	variant, err := catalog.NewProductVariant("SKU-"+class.String(), class, []catalog.Category{category})
	require.NoError(t, err)
	return variant
}

func newLine(t *testing.T, class catalog.ShippingClass, fmcg bool, quantity int, total float64) order.OrderedLine {
	t.Helper()
	line, err := order.NewOrderedLine(newVariant(t, class, fmcg), quantity, total)
	require.NoError(t, err)
	return line
}

func newAddress(t *testing.T, quarter, city, region string) *kernel.Address {
	t.Helper()
	addr, err := kernel.NewAddress(
		kernel.NewValueMap("Rue 1.234"),
		kernel.NewValueMap(quarter),
		kernel.NewValueMap(city),
		kernel.NewValueMap(region),
		kernel.NewValueMap("Cameroun"),
		nil,
	)
	require.NoError(t, err)
	return &addr
}

func newOrder(t *testing.T, address *kernel.Address, mode order.DeliveryMode, lines ...order.OrderedLine) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), address, mode, lines)
	require.NoError(t, err)
	return o
}
