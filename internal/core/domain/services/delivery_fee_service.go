package services

import (
	"errors"
	"fmt"

	"deliveryfee/internal/core/domain/model/fee"
	"deliveryfee/internal/core/domain/model/order"
	"deliveryfee/internal/core/domain/model/zone"
)

// DeliveryFeeService is the single entry point of the fee engine. It prices every
// unit of an order with ArticleFeeCalculator and folds the results with CartAggregator.
//
// The service holds no mutable state: one instance is safe for concurrent use by
// any number of goroutines as long as the shared tables are not modified.
//
// Error contract of CalculateFees:
//   - ErrMissingDestination is returned unwrapped when the order has no address
//   - Any other failure, including a recovered panic, is wrapped in
//     ErrFeeComputationFailed with the original error kept in the chain
//
// Example usage:
//
//	svc, _ := services.NewDeliveryFeeService(tables)
//	fees, err := svc.CalculateFees(o)
//	if errors.Is(err, services.ErrMissingDestination) {
//	    // ask the customer for an address
//	}
type DeliveryFeeService struct {
	calculator ArticleFeeCalculator
	aggregator CartAggregator
}

// NewDeliveryFeeService creates the service over tables built by zone.NewTables.
func NewDeliveryFeeService(tables *zone.Tables) (DeliveryFeeService, error) {
	if err := tables.Validate(); err != nil {
		return DeliveryFeeService{}, err
	}

	return DeliveryFeeService{
		calculator: NewArticleFeeCalculator(tables),
		aggregator: NewCartAggregator(),
	}, nil
}

// CalculateFees returns the delivery fee of o.
func (s DeliveryFeeService) CalculateFees(o *order.Order) (result fee.DeliveryFees, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = fee.DeliveryFees{}
			err = fmt.Errorf("%w: panic: %v", ErrFeeComputationFailed, r)
		}
	}()

	result, err = s.calculate(o)
	if err == nil || errors.Is(err, ErrMissingDestination) {
		return result, err
	}

	return fee.DeliveryFees{}, fmt.Errorf("%w: %w", ErrFeeComputationFailed, err)
}

func (s DeliveryFeeService) calculate(o *order.Order) (fee.DeliveryFees, error) {
	if err := o.Validate(); err != nil {
		return fee.DeliveryFees{}, err
	}

	if _, ok := o.Address(); !ok {
		return fee.DeliveryFees{}, ErrMissingDestination
	}

	unitFees := make([]fee.DeliveryFees, 0, o.UnitCount())
	for _, line := range o.Lines() {
		variant := line.Variant()
		for range line.Quantity() {
			unitFee, err := s.calculator.FeeForArticle(o, variant)
			if err != nil {
				return fee.DeliveryFees{}, err
			}
			unitFees = append(unitFees, unitFee)
		}
	}

	return s.aggregator.Aggregate(o, unitFees)
}
