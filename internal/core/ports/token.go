package ports

import "github.com/greenloop/waste-mgmt/internal/core/domain"

// TokenVerifier validates a session token and returns its claims.
// Every failure mode (bad signature, malformed token, expiry) surfaces
// as domain.ErrInvalidToken so callers cannot distinguish them.
type TokenVerifier interface {
	Verify(token string) (domain.Claims, error)
}
