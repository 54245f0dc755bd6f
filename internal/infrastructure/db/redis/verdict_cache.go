package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/greenloop/waste-mgmt/internal/core/ports"
)

const defaultVerdictTTL = time.Minute

// VerdictCache stores successful identity-resolution verdicts from the
// auth service for a short window, keyed by a digest of the bearer
// token. Only positive verdicts are cached; failures always go back to
// the authority. Key format: authverdict:<sha256(token)>
type VerdictCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewVerdictCache wraps the given Redis client. A non-positive ttl
// falls back to one minute, well inside any token's validity window.
func NewVerdictCache(client *redis.Client, ttl time.Duration) *VerdictCache {
	if ttl <= 0 {
		ttl = defaultVerdictTTL
	}
	return &VerdictCache{client: client, ttl: ttl}
}

// Get returns the cached identity for this token, or (nil, nil) on a miss.
func (v *VerdictCache) Get(ctx context.Context, token string) (*ports.Identity, error) {
	raw, err := v.client.Get(ctx, v.key(token)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("verdict cache get: %w", err)
	}

	var identity ports.Identity
	if err := json.Unmarshal(raw, &identity); err != nil {
		return nil, fmt.Errorf("verdict cache decode: %w", err)
	}
	return &identity, nil
}

// Put records a positive verdict for this token (expires after the TTL).
func (v *VerdictCache) Put(ctx context.Context, token string, identity *ports.Identity) error {
	raw, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("verdict cache encode: %w", err)
	}
	return v.client.Set(ctx, v.key(token), raw, v.ttl).Err()
}

func (v *VerdictCache) key(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "authverdict:" + hex.EncodeToString(sum[:])
}
