package catalog

import (
	"fmt"
	"strings"

	"deliveryfee/internal/pkg/errs"
)

// ShippingClass is the handling size of a product variant. The order of the
// constants is meaningful: pricing rules compare classes ("greater than
// ExtraLarge"), so new classes must be inserted at their size rank.
//
//	Small < Medium < Large < ExtraLarge < SuperLarge
type ShippingClass int

const (
	// UnknownShippingClass is the zero value and never valid.
	UnknownShippingClass ShippingClass = iota
	Small
	Medium
	Large
	ExtraLarge
	SuperLarge
)

func getShippingClassStrings() map[ShippingClass]string {
	//nolint:exhaustive // UnknownShippingClass is intentionally excluded as it's invalid
	return map[ShippingClass]string{
		Small:      "SMALL",
		Medium:     "MEDIUM",
		Large:      "LARGE",
		ExtraLarge: "EXTRA_LARGE",
		SuperLarge: "SUPER_LARGE",
	}
}

// ParseShippingClass reads the upper snake case names used by the catalogue and the
// reference tables. Matching ignores case and surrounding spaces.
func ParseShippingClass(s string) (ShippingClass, error) {
	key := strings.ToUpper(strings.TrimSpace(s))
	for class, name := range getShippingClassStrings() {
		if name == key {
			return class, nil
		}
	}

	return UnknownShippingClass, errs.NewValueIsInvalidErrorWithCause(
		"shippingClass",
		fmt.Errorf("%q is not a known shipping class", s),
	)
}

// Validate rejects UnknownShippingClass and out-of-range values.
func (c ShippingClass) Validate() error {
	if _, ok := getShippingClassStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"shippingClass",
			fmt.Errorf("%d is not a valid shipping class", c),
		)
	}
	return nil
}

func (c ShippingClass) String() string {
	if str, ok := getShippingClassStrings()[c]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsGreaterThan reports whether c ranks strictly above other.
func (c ShippingClass) IsGreaterThan(other ShippingClass) bool {
	return c > other
}
