// Package order provides the Order aggregate consumed by the delivery fee engine:
// its destination address, delivery mode and ordered lines, plus the last
// recorded delivery fee.
//
// Key business rules:
//   - Orders must have a valid unique identifier and a known delivery mode
//   - Line quantities are positive and line totals are non-negative
//   - The address is optional on the aggregate; pricing an order without one fails
//   - A product's FMCG flag comes from the first category of its variant
package order
