package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/greenloop/waste-mgmt/internal/core/domain"
)

type stubVerifier struct {
	claims domain.Claims
	err    error
	tokens []string
}

func (v *stubVerifier) Verify(token string) (domain.Claims, error) {
	v.tokens = append(v.tokens, token)
	return v.claims, v.err
}

func invokeAuth(verifier *stubVerifier, authHeader string) (echo.Context, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/user/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	handler := Auth(verifier)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return c, handler(c)
}

func TestAuth_ValidToken(t *testing.T) {
	verifier := &stubVerifier{claims: domain.Claims{Subject: "alice", Role: domain.RoleUser, ExpiresAt: 1700000000}}

	c, err := invokeAuth(verifier, "Bearer tok-1")
	if err != nil {
		t.Fatalf("expected pass-through, got %v", err)
	}
	if len(verifier.tokens) != 1 || verifier.tokens[0] != "tok-1" {
		t.Fatalf("verifier saw %v", verifier.tokens)
	}
	if c.Get(CtxSubject) != "alice" || c.Get(CtxRole) != domain.RoleUser {
		t.Fatalf("claims not injected: sub=%v role=%v", c.Get(CtxSubject), c.Get(CtxRole))
	}
	if c.Get(CtxExpiry) != int64(1700000000) {
		t.Fatalf("expiry not injected: %v", c.Get(CtxExpiry))
	}
}

func TestAuth_LowercaseBearerScheme(t *testing.T) {
	verifier := &stubVerifier{claims: domain.Claims{Subject: "alice", Role: domain.RoleUser}}
	if _, err := invokeAuth(verifier, "bearer tok-1"); err != nil {
		t.Fatalf("scheme should be case-insensitive, got %v", err)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	verifier := &stubVerifier{}
	_, err := invokeAuth(verifier, "")

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
	if len(verifier.tokens) != 0 {
		t.Fatalf("verifier should not be called without a header")
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	for _, header := range []string{"tok-1", "Basic dXNlcjpwdw=="} {
		_, err := invokeAuth(&stubVerifier{}, header)
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 for %q, got %v", header, err)
		}
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	verifier := &stubVerifier{err: domain.ErrInvalidToken}
	c, err := invokeAuth(verifier, "Bearer bad")
	if !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if c.Get(CtxSubject) != nil {
		t.Fatalf("claims must not be injected on failure")
	}
}
