package zone

import "deliveryfee/internal/core/domain/model/catalog"

// ClassPrices maps a shipping class to a price in currency units.
type ClassPrices map[catalog.ShippingClass]float64

// Definition is the raw, ordered content of the reference tables, as read from
// configuration. NewTables validates it and builds the lookup structures.
type Definition struct {
	Version string

	// PrimaryCities are the metropolitan cities priced by zone.
	PrimaryCities []string

	// Cities declares the zones of every zoned city. The first zone of a city is
	// its fallback zone.
	Cities []CityDefinition

	// DoorDelivery holds the per-zone door delivery prices of zoned cities.
	DoorDelivery []ZonePricesDefinition

	// Served lists the secondary cities that have their own door delivery rate.
	Served []RegionDefinition

	// Unserved lists, per region, the cities whose rate applies to every city of
	// that region that is not served. Only the first city of a region is used.
	Unserved []RegionDefinition

	// InAgency holds flat rates for parcels collected at an agency.
	InAgency ClassPrices
}

type CityDefinition struct {
	Name  string
	Zones []ZoneDefinition
}

type ZoneDefinition struct {
	Name     string
	Quarters []string
}

type ZonePricesDefinition struct {
	City   string
	Zone   string
	Prices ClassPrices
}

type RegionDefinition struct {
	Region string
	Cities []CityPricesDefinition
}

type CityPricesDefinition struct {
	City   string
	Prices ClassPrices
}
