package queries

import (
	"context"
	"database/sql"
	"time"

	"deliveryfee/internal/core/domain/model/kernel"
	"deliveryfee/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersAwaitingFeesQueryHandler reads the backlog straight from the orders
// table without loading aggregates.
type ListOrdersAwaitingFeesQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersAwaitingFeesQueryHandler requires a GORM connection to the order store.
func NewListOrdersAwaitingFeesQueryHandler(db *gorm.DB) ListOrdersAwaitingFeesQueryHandler {
	return ListOrdersAwaitingFeesQueryHandler{db: db}
}

func (h ListOrdersAwaitingFeesQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersAwaitingFeesQuery,
) ([]ListOrdersAwaitingFeesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	result := make([]ListOrdersAwaitingFeesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			address_city,
			delivery_mode,
			created_at
		FROM orders
		WHERE fee_negotiable IS NULL
		ORDER BY created_at, id
		LIMIT ?
	`, query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id        uuid.UUID
			city      sql.NullString
			mode      int
			createdAt time.Time
		)

		if err = rows.Scan(&id, &city, &mode, &createdAt); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		result = append(result, ListOrdersAwaitingFeesQueryResponse{
			ID:           orderID,
			City:         city.String,
			DeliveryMode: order.DeliveryMode(mode),
			CreatedAt:    createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
