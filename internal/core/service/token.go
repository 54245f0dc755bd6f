package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/greenloop/waste-mgmt/internal/core/domain"
)

const defaultTokenTTL = 30 * time.Minute

// TokenIssuer mints and verifies HS256 session tokens. It owns no
// state beyond the signing secret and TTL injected at construction;
// tokens are never persisted and expire purely by timestamp.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenIssuer creates a TokenIssuer with the given symmetric secret
// and token validity window. A non-positive ttl falls back to 30 minutes.
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token carrying {sub, role, exp}. Each call produces an
// independent token; nothing limits a subject to one live token.
func (t *TokenIssuer) Issue(subject, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"exp":  t.now().Add(t.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify checks signature and expiry. All failure modes collapse into
// domain.ErrInvalidToken so the response cannot serve as an oracle for
// "expired" vs "forged".
func (t *TokenIssuer) Verify(token string) (domain.Claims, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (interface{}, error) {
		if tok.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(t.now), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return domain.Claims{}, domain.ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	if sub == "" {
		return domain.Claims{}, domain.ErrInvalidToken
	}

	var exp int64
	if e, err := claims.GetExpirationTime(); err == nil && e != nil {
		exp = e.Unix()
	}

	return domain.Claims{Subject: sub, Role: role, ExpiresAt: exp}, nil
}
