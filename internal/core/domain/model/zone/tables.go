package zone

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"deliveryfee/internal/core/domain/model/catalog"
	"deliveryfee/internal/pkg/errs"
	"deliveryfee/internal/pkg/textnorm"
)

var (
	ErrTablesAreNotConstructed = errors.New("Tables must be created via NewTables constructor")
	ErrPrimaryCityHasNoZones   = errors.New("primary city has no zones")
)

type doorKey struct {
	city  string
	zone  string
	class catalog.ShippingClass
}

type otherKey struct {
	region string
	city   string
	class  catalog.ShippingClass
}

type regionKey struct {
	region string
	class  catalog.ShippingClass
}

// Tables is the immutable reference data of the fee engine: zone maps of the
// primary cities, door delivery prices, secondary-city prices and in-agency rates.
// All keys are normalized with textnorm, so lookups accept free-text names.
//
// A *Tables is built once at start-up and shared by every request; nothing
// mutates it after NewTables returns.
type Tables struct {
	version       string
	primaryCities map[string]struct{}
	cities        map[string][]Zone
	door          map[doorKey]float64
	servedCities  map[string]struct{}
	served        map[otherKey]float64
	unserved      map[regionKey]float64
	inAgency      map[catalog.ShippingClass]float64
}

// NewTables validates def and builds the lookup indexes.
func NewTables(def Definition) (*Tables, error) {
	t := &Tables{
		version:       def.Version,
		primaryCities: make(map[string]struct{}, len(def.PrimaryCities)),
		cities:        make(map[string][]Zone, len(def.Cities)),
		door:          make(map[doorKey]float64),
		servedCities:  make(map[string]struct{}),
		served:        make(map[otherKey]float64),
		unserved:      make(map[regionKey]float64),
		inAgency:      make(map[catalog.ShippingClass]float64, len(def.InAgency)),
	}

	if err := errors.Join(
		t.setCities(def.Cities),
		t.setPrimaryCities(def.PrimaryCities),
		t.setDoorDelivery(def.DoorDelivery),
		t.setServed(def.Served),
		t.setUnserved(def.Unserved),
		t.setInAgency(def.InAgency),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// Validate ensures t was built by NewTables.
func (t *Tables) Validate() error {
	if t == nil || t.cities == nil {
		return ErrTablesAreNotConstructed
	}
	return nil
}

// Version identifies the table set, for logs and API responses.
func (t *Tables) Version() string {
	return t.version
}

// IsPrimaryCity reports whether city is priced by zone.
func (t *Tables) IsPrimaryCity(city string) bool {
	_, ok := t.primaryCities[textnorm.Normalize(city)]
	return ok
}

// Zones returns the declared zones of city, in declaration order.
func (t *Tables) Zones(city string) ([]Zone, bool) {
	zones, ok := t.cities[textnorm.Normalize(city)]
	if !ok {
		return nil, false
	}
	return slices.Clone(zones), true
}

// DoorDeliveryPrice looks up the door delivery price of a zoned city.
func (t *Tables) DoorDeliveryPrice(city, zoneName string, class catalog.ShippingClass) (float64, bool) {
	price, ok := t.door[doorKey{
		city:  textnorm.Normalize(city),
		zone:  textnorm.Normalize(zoneName),
		class: class,
	}]
	return price, ok
}

// IsServedCity reports whether city appears in the served secondary cities, in any region.
func (t *Tables) IsServedCity(city string) bool {
	_, ok := t.servedCities[textnorm.Normalize(city)]
	return ok
}

// ServedCityPrice looks up the rate of a served secondary city within its region.
func (t *Tables) ServedCityPrice(region, city string, class catalog.ShippingClass) (float64, bool) {
	price, ok := t.served[otherKey{
		region: textnorm.Normalize(region),
		city:   textnorm.Normalize(city),
		class:  class,
	}]
	return price, ok
}

// UnservedRegionPrice looks up the rate applied to unserved cities of region,
// which is the rate of the first city declared for that region.
func (t *Tables) UnservedRegionPrice(region string, class catalog.ShippingClass) (float64, bool) {
	price, ok := t.unserved[regionKey{region: textnorm.Normalize(region), class: class}]
	return price, ok
}

// InAgencyPrice looks up the flat in-agency rate of class.
func (t *Tables) InAgencyPrice(class catalog.ShippingClass) (float64, bool) {
	price, ok := t.inAgency[class]
	return price, ok
}

func (t *Tables) setCities(cities []CityDefinition) error {
	for _, c := range cities {
		if err := requireName("city", c.Name); err != nil {
			return err
		}

		zones := make([]Zone, 0, len(c.Zones))
		for _, z := range c.Zones {
			if err := requireName("zone", z.Name); err != nil {
				return err
			}
			zones = append(zones, newZone(z.Name, z.Quarters))
		}
		t.cities[textnorm.Normalize(c.Name)] = zones
	}
	return nil
}

func (t *Tables) setPrimaryCities(primaryCities []string) error {
	for _, city := range primaryCities {
		if err := requireName("primary city", city); err != nil {
			return err
		}

		key := textnorm.Normalize(city)
		if len(t.cities[key]) == 0 {
			return fmt.Errorf("%w: %s", ErrPrimaryCityHasNoZones, city)
		}
		t.primaryCities[key] = struct{}{}
	}
	return nil
}

func (t *Tables) setDoorDelivery(prices []ZonePricesDefinition) error {
	for _, p := range prices {
		if err := errors.Join(requireName("city", p.City), requireName("zone", p.Zone)); err != nil {
			return err
		}
		for class, price := range p.Prices {
			if err := validatePrice(class, price); err != nil {
				return err
			}
			t.door[doorKey{
				city:  textnorm.Normalize(p.City),
				zone:  textnorm.Normalize(p.Zone),
				class: class,
			}] = price
		}
	}
	return nil
}

func (t *Tables) setServed(regions []RegionDefinition) error {
	for _, r := range regions {
		if err := requireName("region", r.Region); err != nil {
			return err
		}
		for _, c := range r.Cities {
			if err := requireName("city", c.City); err != nil {
				return err
			}
			city := textnorm.Normalize(c.City)
			t.servedCities[city] = struct{}{}
			for class, price := range c.Prices {
				if err := validatePrice(class, price); err != nil {
					return err
				}
				t.served[otherKey{region: textnorm.Normalize(r.Region), city: city, class: class}] = price
			}
		}
	}
	return nil
}

func (t *Tables) setUnserved(regions []RegionDefinition) error {
	for _, r := range regions {
		if err := requireName("region", r.Region); err != nil {
			return err
		}
		if len(r.Cities) == 0 {
			continue
		}

		// Only the first declared city carries the regional rate.
		for class, price := range r.Cities[0].Prices {
			if err := validatePrice(class, price); err != nil {
				return err
			}
			t.unserved[regionKey{region: textnorm.Normalize(r.Region), class: class}] = price
		}
	}
	return nil
}

func (t *Tables) setInAgency(prices ClassPrices) error {
	for class, price := range prices {
		if err := validatePrice(class, price); err != nil {
			return err
		}
		t.inAgency[class] = price
	}
	return nil
}

func requireName(param, name string) error {
	if textnorm.Normalize(name) == "" {
		return errs.NewValueIsRequiredError(param + " name")
	}
	return nil
}

func validatePrice(class catalog.ShippingClass, price float64) error {
	if err := class.Validate(); err != nil {
		return err
	}
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return errs.NewValueIsOutOfRangeError("price of "+class.String(), price, 0, math.MaxFloat64)
	}
	return nil
}
