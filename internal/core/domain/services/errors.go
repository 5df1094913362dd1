package services

import (
	"errors"

	"deliveryfee/internal/pkg/errs"
)

var (
	// ErrMissingDestination is returned when the order has no delivery address.
	// It is the only failure the engine reports to the customer as-is.
	ErrMissingDestination = errs.NewValueIsRequiredErrorWithCause(
		"delivery address",
		errors.New("cannot compute: address missing"),
	)

	// ErrUnsupportedPricingCase is returned for combinations the rate tables do not
	// price yet, such as EXTRA_LARGE door delivery inside a primary city.
	ErrUnsupportedPricingCase = errors.New("unsupported pricing case")

	// ErrFeeComputationFailed wraps every other failure surfaced by DeliveryFeeService.
	ErrFeeComputationFailed = errors.New("fee computation failed")

	// ErrUnitFeeCountMismatch is returned when the aggregator receives a number of
	// unit fees different from the order's unit count.
	ErrUnitFeeCountMismatch = errors.New("unit fee count does not match order units")
)
