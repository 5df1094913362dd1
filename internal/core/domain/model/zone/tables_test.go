package zone_test

import (
	"testing"

	"deliveryfee/internal/core/domain/model/catalog"
	"deliveryfee/internal/core/domain/model/zone"
	"deliveryfee/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDefinition() zone.Definition {
	return zone.Definition{
		Version:       "test",
		PrimaryCities: []string{"Douala", "Yaoundé"},
		Cities: []zone.CityDefinition{
			{Name: "Douala", Zones: []zone.ZoneDefinition{
				{Name: "A", Quarters: []string{"Akwa", "Bonanjo"}},
				{Name: "B", Quarters: []string{"Bépanda", "Makepe"}},
			}},
			{Name: "Yaounde", Zones: []zone.ZoneDefinition{
				{Name: "A", Quarters: []string{"Bastos"}},
			}},
		},
		DoorDelivery: []zone.ZonePricesDefinition{
			{City: "Douala", Zone: "A", Prices: zone.ClassPrices{catalog.Medium: 1500}},
			{City: "Douala", Zone: "B", Prices: zone.ClassPrices{catalog.Medium: 2000}},
		},
		Served: []zone.RegionDefinition{
			{Region: "Sud", Cities: []zone.CityPricesDefinition{
				{City: "Kribi", Prices: zone.ClassPrices{catalog.Small: 2000}},
			}},
		},
		Unserved: []zone.RegionDefinition{
			{Region: "Est", Cities: []zone.CityPricesDefinition{
				{City: "Bertoua", Prices: zone.ClassPrices{catalog.Small: 3000}},
				{City: "Batouri", Prices: zone.ClassPrices{catalog.Small: 9999}},
			}},
		},
		InAgency: zone.ClassPrices{catalog.SuperLarge: 10000, catalog.ExtraLarge: 5000},
	}
}

func TestNewTables(t *testing.T) {
	tables, err := zone.NewTables(testDefinition())
	require.NoError(t, err)
	require.NoError(t, tables.Validate())
	assert.Equal(t, "test", tables.Version())

	t.Run("primary cities ignore case and accents", func(t *testing.T) {
		assert.True(t, tables.IsPrimaryCity("DOUALA"))
		assert.True(t, tables.IsPrimaryCity("Yaounde"))
		assert.True(t, tables.IsPrimaryCity("yaoundé"))
		assert.False(t, tables.IsPrimaryCity("Kribi"))
	})

	t.Run("zones keep declaration order", func(t *testing.T) {
		zones, ok := tables.Zones("douala")

		require.True(t, ok)
		require.Len(t, zones, 2)
		assert.Equal(t, "a", zones[0].Name())
		assert.True(t, zones[1].Contains("BEPANDA"))
		assert.Equal(t, 2, zones[0].QuarterCount())
	})

	t.Run("door delivery lookup", func(t *testing.T) {
		price, ok := tables.DoorDeliveryPrice("Douala", "B", catalog.Medium)
		assert.True(t, ok)
		assert.InDelta(t, 2000.0, price, 0)

		_, ok = tables.DoorDeliveryPrice("Douala", "B", catalog.Large)
		assert.False(t, ok)
	})

	t.Run("served city lookup", func(t *testing.T) {
		assert.True(t, tables.IsServedCity("KRIBI"))
		price, ok := tables.ServedCityPrice("sud", "kribi", catalog.Small)
		assert.True(t, ok)
		assert.InDelta(t, 2000.0, price, 0)

		_, ok = tables.ServedCityPrice("Est", "Kribi", catalog.Small)
		assert.False(t, ok)
	})

	t.Run("unserved region uses first declared city", func(t *testing.T) {
		price, ok := tables.UnservedRegionPrice("EST", catalog.Small)
		assert.True(t, ok)
		assert.InDelta(t, 3000.0, price, 0)
	})

	t.Run("in agency lookup", func(t *testing.T) {
		price, ok := tables.InAgencyPrice(catalog.SuperLarge)
		assert.True(t, ok)
		assert.InDelta(t, 10000.0, price, 0)

		_, ok = tables.InAgencyPrice(catalog.Small)
		assert.False(t, ok)
	})
}

func TestNewTables_Invalid(t *testing.T) {
	t.Run("negative price", func(t *testing.T) {
		def := testDefinition()
		def.InAgency = zone.ClassPrices{catalog.Small: -1}

		_, err := zone.NewTables(def)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("unknown shipping class", func(t *testing.T) {
		def := testDefinition()
		def.InAgency = zone.ClassPrices{catalog.UnknownShippingClass: 1}

		_, err := zone.NewTables(def)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("primary city without zones", func(t *testing.T) {
		def := testDefinition()
		def.PrimaryCities = append(def.PrimaryCities, "Garoua")

		_, err := zone.NewTables(def)

		require.ErrorIs(t, err, zone.ErrPrimaryCityHasNoZones)
	})

	t.Run("blank zone name", func(t *testing.T) {
		def := testDefinition()
		def.Cities[0].Zones = append(def.Cities[0].Zones, zone.ZoneDefinition{Name: " "})

		_, err := zone.NewTables(def)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestTables_ZeroValue(t *testing.T) {
	var tables *zone.Tables

	require.ErrorIs(t, tables.Validate(), zone.ErrTablesAreNotConstructed)
}
