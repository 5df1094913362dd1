package ports

import (
	"errors"
	"time"

	"deliveryfee/internal/core/domain/model/fee"
	"deliveryfee/internal/core/domain/model/order"
	"deliveryfee/internal/core/domain/services"
)

// Computation outcomes reported to FeeMetrics.
const (
	OutcomePriced             = "priced"
	OutcomeFree               = "free"
	OutcomeNegotiable         = "negotiable"
	OutcomeMissingDestination = "missing_destination"
	OutcomeFailed             = "failed"
)

// Refresh results reported to FeeMetrics.
const (
	RefreshUpdated = "updated"
	RefreshSkipped = "skipped"
)

// FeeMetrics records fee engine activity. Implementations must be safe for
// concurrent use.
type FeeMetrics interface {
	// ObserveComputation records one CalculateFees call.
	ObserveComputation(mode order.DeliveryMode, outcome string, elapsed time.Duration)

	// ObserveRefresh records the fate of one order visited by the refresh job.
	ObserveRefresh(result string)
}

// ComputationOutcome classifies the result of a CalculateFees call.
func ComputationOutcome(fees fee.DeliveryFees, err error) string {
	switch {
	case errors.Is(err, services.ErrMissingDestination):
		return OutcomeMissingDestination
	case err != nil:
		return OutcomeFailed
	case fees.IsNegotiable():
		return OutcomeNegotiable
	case fees.Amount() == 0:
		return OutcomeFree
	default:
		return OutcomePriced
	}
}
