// Package authclient implements the remote token relay: the order
// service holds no signing secret and instead forwards bearer tokens to
// the auth service's identity-resolution endpoint, trusting its verdict.
package authclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/greenloop/waste-mgmt/internal/core/domain"
	"github.com/greenloop/waste-mgmt/internal/core/ports"
)

const defaultRequestTimeout = 5 * time.Second

// Client resolves bearer tokens against the auth service over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client for the auth service at baseURL. The timeout
// bounds the whole round-trip; a non-positive value falls back to 5s.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Resolve forwards the token to GET /user/me and returns the verdict.
// A 401 or 404 from the authority means the credentials are bad
// (domain.ErrInvalidToken); a transport failure, timeout, or 5xx means
// the check itself failed (domain.ErrAuthUnavailable).
func (c *Client) Resolve(ctx context.Context, token string) (*ports.Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/user/me", nil)
	if err != nil {
		return nil, fmt.Errorf("build identity request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAuthUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to decode
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusNotFound:
		return nil, domain.ErrInvalidToken
	default:
		return nil, fmt.Errorf("%w: unexpected status %d", domain.ErrAuthUnavailable, resp.StatusCode)
	}

	var identity ports.Identity
	if err := json.NewDecoder(resp.Body).Decode(&identity); err != nil {
		return nil, fmt.Errorf("%w: decode verdict: %v", domain.ErrAuthUnavailable, err)
	}
	if identity.Subject == "" || identity.UserID == "" {
		return nil, domain.ErrInvalidToken
	}
	return &identity, nil
}
