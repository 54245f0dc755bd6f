package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/greenloop/waste-mgmt/internal/core/domain"
	"github.com/greenloop/waste-mgmt/internal/core/ports"
)

// OrderService creates and lists pickup orders on behalf of an identity
// resolved by the authentication service.
type OrderService struct {
	repo   ports.OrderRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewOrderService(repo ports.OrderRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, logger: logger, now: time.Now}
}

// CreateOrder fans a multi-item pickup request out into one order row
// per item. Every quantity must be strictly positive; a single bad item
// rejects the whole request before anything is persisted.
func (s *OrderService) CreateOrder(ctx context.Context, identity ports.Identity, in ports.CreateOrderInput) ([]*domain.Order, error) {
	for _, qty := range in.Items {
		if qty <= 0 {
			return nil, domain.ErrInvalidQuantity
		}
	}

	now := s.now().UTC()
	orders := make([]*domain.Order, 0, len(in.Items))
	for itemType, qty := range in.Items {
		orders = append(orders, &domain.Order{
			ID:            uuid.NewString(),
			UserID:        identity.UserID,
			UserName:      identity.Subject,
			ItemType:      itemType,
			Quantity:      qty,
			PickupDate:    in.PickupDate,
			OrderDate:     now,
			PickupAddress: in.PickupAddress,
		})
	}

	if err := s.repo.InsertMany(ctx, orders); err != nil {
		s.logger.Error().Err(err).Str("user_id", identity.UserID).Msg("failed to create order")
		return nil, err
	}

	s.logger.Info().Str("user_id", identity.UserID).Int("items", len(orders)).Msg("order created")
	return orders, nil
}

// ListOrders returns the calling identity's orders.
func (s *OrderService) ListOrders(ctx context.Context, identity ports.Identity) ([]*domain.Order, error) {
	return s.repo.FindByUserID(ctx, identity.UserID)
}
