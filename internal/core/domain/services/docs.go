// Package services holds the delivery fee engine: stateless domain services that
// turn an order and the reference rate tables into a single delivery fee.
//
// Components, leaves first:
//   - ZoneResolver maps a free-text quarter and city to a pricing zone
//   - ArticleFeeCalculator prices one unit of an ordered article
//   - CartAggregator folds the unit fees of an order into the cart fee
//   - DeliveryFeeService chains the two and owns the error contract
//
// Nothing in this package performs I/O or keeps state between calls.
package services
