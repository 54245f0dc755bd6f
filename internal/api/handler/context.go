package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/greenloop/waste-mgmt/internal/api/middleware"
	"github.com/greenloop/waste-mgmt/internal/core/domain"
)

// ctxClaims extracts the token claims injected by the Auth middleware
// and fast-fails before any service call: a missing subject means the
// middleware did not run on this route.
func ctxClaims(c echo.Context) (domain.Claims, error) {
	sub, _ := c.Get(middleware.CtxSubject).(string)
	if sub == "" {
		return domain.Claims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	role, _ := c.Get(middleware.CtxRole).(string)
	exp, _ := c.Get(middleware.CtxExpiry).(int64)

	return domain.Claims{Subject: sub, Role: role, ExpiresAt: exp}, nil
}
