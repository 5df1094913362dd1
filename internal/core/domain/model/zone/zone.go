package zone

import "deliveryfee/internal/pkg/textnorm"

// Zone is a named group of quarters of one city. Quarter names are stored
// normalized.
type Zone struct {
	name     string
	quarters map[string]struct{}
}

func newZone(name string, quarters []string) Zone {
	z := Zone{
		name:     textnorm.Normalize(name),
		quarters: make(map[string]struct{}, len(quarters)),
	}
	for _, q := range quarters {
		z.quarters[textnorm.Normalize(q)] = struct{}{}
	}
	return z
}

// Name returns the normalized zone name, e.g. "a".
func (z Zone) Name() string {
	return z.name
}

// Contains reports whether quarter belongs to the zone, ignoring case and accents.
func (z Zone) Contains(quarter string) bool {
	_, ok := z.quarters[textnorm.Normalize(quarter)]
	return ok
}

// QuarterCount returns how many quarters the zone declares.
func (z Zone) QuarterCount() int {
	return len(z.quarters)
}
