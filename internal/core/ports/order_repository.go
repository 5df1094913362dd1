// Package ports defines the contracts between the delivery fee core and its
// infrastructure: order persistence, transactions and fee metrics.
package ports

import (
	"context"
	"errors"

	"deliveryfee/internal/core/domain/model/kernel"
	"deliveryfee/internal/core/domain/model/order"
)

// ErrOrderAlreadyExists is returned by Add when an order with the same identifier
// is already stored.
var ErrOrderAlreadyExists = errors.New("order already exists")

// OrderRepository defines the persistence contract for order aggregates,
// including their lines, product categories and last recorded delivery fee.
type OrderRepository interface {
	// Add persists a new order aggregate with all of its lines.
	// The order must be valid. Returns ErrOrderAlreadyExists for a known identifier.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the recorded delivery fee and address of an existing order.
	// Lines are immutable once an order is stored.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ErrObjectNotFound when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllAwaitingFees retrieves the orders that have no recorded delivery fee yet,
	// oldest first, up to limit orders. A limit of 0 or less means no limit.
	GetAllAwaitingFees(ctx context.Context, limit int) ([]*order.Order, error)
}
