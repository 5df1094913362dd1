package order

import (
	"fmt"
	"strings"

	"deliveryfee/internal/pkg/errs"
)

// DeliveryMode is how the customer receives the parcel.
type DeliveryMode int

const (
	// UnknownDeliveryMode is the zero value and never valid.
	UnknownDeliveryMode DeliveryMode = iota

	// InAgency means the customer collects the parcel at an agency; no geographic
	// pricing applies.
	InAgency

	// HomeDelivery is standard door delivery to the order address.
	HomeDelivery

	// Express is door delivery on the same rate tables as HomeDelivery.
	Express
)

func getDeliveryModeStrings() map[DeliveryMode]string {
	//nolint:exhaustive // UnknownDeliveryMode is intentionally excluded as it's invalid
	return map[DeliveryMode]string{
		InAgency:     "IN_AGENCY",
		HomeDelivery: "HOME_DELIVERY",
		Express:      "EXPRESS",
	}
}

// ParseDeliveryMode reads IN_AGENCY, HOME_DELIVERY or EXPRESS, ignoring case.
func ParseDeliveryMode(s string) (DeliveryMode, error) {
	key := strings.ToUpper(strings.TrimSpace(s))
	for mode, name := range getDeliveryModeStrings() {
		if name == key {
			return mode, nil
		}
	}

	return UnknownDeliveryMode, errs.NewValueIsInvalidErrorWithCause(
		"deliveryMode",
		fmt.Errorf("%q is not a known delivery mode", s),
	)
}

func (m DeliveryMode) Validate() error {
	if _, ok := getDeliveryModeStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"deliveryMode",
			fmt.Errorf("%d is not a valid delivery mode", m),
		)
	}
	return nil
}

func (m DeliveryMode) String() string {
	if str, ok := getDeliveryModeStrings()[m]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsDoorDelivery reports whether the parcel travels to the order address.
func (m DeliveryMode) IsDoorDelivery() bool {
	return m == HomeDelivery || m == Express
}
