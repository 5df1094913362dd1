package services

import (
	"deliveryfee/internal/core/domain/model/zone"
	"deliveryfee/internal/pkg/textnorm"
)

// Resolution is the outcome of a zone lookup: the normalized city and the zone
// name used to key door delivery prices. Zone is empty when the city has no zones.
type Resolution struct {
	City string
	Zone string
}

// ZoneResolver maps a free-text (quarter, city) pair to a pricing zone.
type ZoneResolver struct {
	tables *zone.Tables
}

func NewZoneResolver(tables *zone.Tables) ZoneResolver {
	return ZoneResolver{tables: tables}
}

// Resolve finds the zone of the city that contains quarter. When no zone contains
// the quarter, the city's first declared zone is used: an unmapped quarter is a
// best guess, never a failure. The boolean is false only when the city has no
// zone at all, in which case Zone is empty and every price lookup will miss.
func (r ZoneResolver) Resolve(quarter, city string) (Resolution, bool) {
	res := Resolution{City: textnorm.Normalize(city)}

	zones, _ := r.tables.Zones(city)
	if len(zones) == 0 {
		return res, false
	}

	res.Zone = zones[0].Name()
	for _, z := range zones {
		if z.Contains(quarter) {
			res.Zone = z.Name()
			break
		}
	}

	return res, true
}
