// Package reftables loads the delivery fee reference tables from YAML. A default
// dataset is embedded in the binary; deployments may point to their own file
// to change prices or zones without a rebuild.
package reftables

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"deliveryfee/internal/core/domain/model/catalog"
	"deliveryfee/internal/core/domain/model/zone"

	"gopkg.in/yaml.v3"
)

//go:embed default_tables.yaml
var defaultTables []byte

// tablesDocument is the YAML layout of the reference tables.
type tablesDocument struct {
	Version       string         `yaml:"version"`
	PrimaryCities []string       `yaml:"primaryCities"`
	Cities        []cityDocument `yaml:"cities"`
	DoorDelivery  []doorDocument `yaml:"doorDelivery"`
	OtherCities   struct {
		Served   []regionDocument `yaml:"served"`
		Unserved []regionDocument `yaml:"unserved"`
	} `yaml:"otherCities"`
	InAgency map[string]float64 `yaml:"inAgency"`
}

type cityDocument struct {
	Name  string         `yaml:"name"`
	Zones []zoneDocument `yaml:"zones"`
}

type zoneDocument struct {
	Name     string   `yaml:"name"`
	Quarters []string `yaml:"quarters"`
}

type doorDocument struct {
	City   string             `yaml:"city"`
	Zone   string             `yaml:"zone"`
	Prices map[string]float64 `yaml:"prices"`
}

type regionDocument struct {
	Region string              `yaml:"region"`
	Cities []cityPriceDocument `yaml:"cities"`
}

type cityPriceDocument struct {
	City   string             `yaml:"city"`
	Prices map[string]float64 `yaml:"prices"`
}

// Default returns the tables embedded in the binary.
func Default() (*zone.Tables, error) {
	return FromBytes(defaultTables)
}

// Load reads the tables from path. An empty path selects the embedded tables.
func Load(path string) (*zone.Tables, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read reference tables: %w", err)
	}

	return FromBytes(data)
}

// FromBytes parses YAML tables. Unknown keys are rejected.
func FromBytes(data []byte) (*zone.Tables, error) {
	var doc tablesDocument
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse reference tables: %w", err)
	}

	def, err := doc.toDefinition()
	if err != nil {
		return nil, fmt.Errorf("invalid reference tables: %w", err)
	}

	tables, err := zone.NewTables(def)
	if err != nil {
		return nil, fmt.Errorf("invalid reference tables: %w", err)
	}

	return tables, nil
}

func (d tablesDocument) toDefinition() (zone.Definition, error) {
	def := zone.Definition{
		Version:       d.Version,
		PrimaryCities: d.PrimaryCities,
	}

	for _, c := range d.Cities {
		city := zone.CityDefinition{Name: c.Name}
		for _, z := range c.Zones {
			city.Zones = append(city.Zones, zone.ZoneDefinition{Name: z.Name, Quarters: z.Quarters})
		}
		def.Cities = append(def.Cities, city)
	}

	var errList []error
	for _, p := range d.DoorDelivery {
		prices, err := toClassPrices(p.Prices)
		errList = append(errList, err)
		def.DoorDelivery = append(def.DoorDelivery, zone.ZonePricesDefinition{City: p.City, Zone: p.Zone, Prices: prices})
	}

	served, err := toRegions(d.OtherCities.Served)
	errList = append(errList, err)
	def.Served = served

	unserved, err := toRegions(d.OtherCities.Unserved)
	errList = append(errList, err)
	def.Unserved = unserved

	inAgency, err := toClassPrices(d.InAgency)
	errList = append(errList, err)
	def.InAgency = inAgency

	return def, errors.Join(errList...)
}

func toRegions(docs []regionDocument) ([]zone.RegionDefinition, error) {
	regions := make([]zone.RegionDefinition, 0, len(docs))
	var errList []error
	for _, r := range docs {
		region := zone.RegionDefinition{Region: r.Region}
		for _, c := range r.Cities {
			prices, err := toClassPrices(c.Prices)
			errList = append(errList, err)
			region.Cities = append(region.Cities, zone.CityPricesDefinition{City: c.City, Prices: prices})
		}
		regions = append(regions, region)
	}
	return regions, errors.Join(errList...)
}

func toClassPrices(raw map[string]float64) (zone.ClassPrices, error) {
	prices := make(zone.ClassPrices, len(raw))
	for name, price := range raw {
		class, err := catalog.ParseShippingClass(name)
		if err != nil {
			return nil, err
		}
		prices[class] = price
	}
	return prices, nil
}
