package ports

import (
	"context"

	"github.com/greenloop/waste-mgmt/internal/core/domain"
)

// OrderRepository defines persistence operations for pickup orders.
// InsertMany persists a whole order batch; a failed batch must not
// leave a partial set of rows behind.
type OrderRepository interface {
	InsertMany(ctx context.Context, orders []*domain.Order) error
	FindByUserID(ctx context.Context, userID string) ([]*domain.Order, error)
}
