package middleware

import (
	"context"
	"errors"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/greenloop/waste-mgmt/internal/api/metrics"
	"github.com/greenloop/waste-mgmt/internal/core/domain"
	"github.com/greenloop/waste-mgmt/internal/core/ports"
)

// IdentityCache is the optional short-TTL cache of positive verdicts
// fronting the remote resolver. Get returns (nil, nil) on a miss.
type IdentityCache interface {
	Get(ctx context.Context, token string) (*ports.Identity, error)
	Put(ctx context.Context, token string, identity *ports.Identity) error
}

// RemoteAuth authenticates requests by forwarding the bearer token to
// the auth service's identity-resolution endpoint and trusting its
// verdict. The service holds no copy of the signing secret. cache may
// be nil; cache failures degrade to a plain resolver call.
func RemoteAuth(resolver ports.IdentityResolver, cache IdentityCache, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := bearerToken(c)
			if err != nil {
				return err
			}

			ctx := c.Request().Context()

			if cache != nil {
				cached, err := cache.Get(ctx, token)
				if err != nil {
					log.Warn().Err(err).Msg("identity cache lookup failed")
				} else if cached != nil {
					metrics.IdentityCacheTotal.WithLabelValues("hit").Inc()
					setIdentity(c, cached)
					return next(c)
				}
				metrics.IdentityCacheTotal.WithLabelValues("miss").Inc()
			}

			start := time.Now()
			identity, err := resolver.Resolve(ctx, token)
			metrics.IdentityResolutionDuration.WithLabelValues(resolutionOutcome(err)).Observe(time.Since(start).Seconds())
			if err != nil {
				return err
			}

			if cache != nil {
				if err := cache.Put(ctx, token, identity); err != nil {
					log.Warn().Err(err).Msg("identity cache store failed")
				}
			}

			setIdentity(c, identity)
			return next(c)
		}
	}
}

func setIdentity(c echo.Context, identity *ports.Identity) {
	c.Set(CtxSubject, identity.Subject)
	c.Set(CtxRole, identity.Role)
	c.Set(CtxUserID, identity.UserID)
	c.Set(CtxExpiry, identity.Exp)
}

func resolutionOutcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrInvalidToken):
		return "invalid"
	default:
		return "unavailable"
	}
}
