package ports

import (
	"context"
	"time"

	"github.com/greenloop/waste-mgmt/internal/core/domain"
)

// Identity is the verdict of the authentication service's identity
// resolution, as trusted by token-consuming services.
type Identity struct {
	Subject string `json:"sub"`
	Role    string `json:"role"`
	UserID  string `json:"user_id"`
	Exp     int64  `json:"exp"`
}

// IdentityResolver resolves a bearer token into an Identity by asking
// the authentication service. Implementations must distinguish a bad
// token (domain.ErrInvalidToken) from an unreachable authority
// (domain.ErrAuthUnavailable).
type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (*Identity, error)
}

// CreateOrderInput carries a pickup request: item name → quantity.
type CreateOrderInput struct {
	Items         map[string]float64
	PickupDate    time.Time
	PickupAddress string
}

// OrderService handles pickup order creation and listing for the
// identity carried by the request's token.
type OrderService interface {
	CreateOrder(ctx context.Context, identity Identity, in CreateOrderInput) ([]*domain.Order, error)
	ListOrders(ctx context.Context, identity Identity) ([]*domain.Order, error)
}
