package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenRevoker invalidates JWTs issued before a password change.
// Key format: pwdchange:<user_id> holding the rotation unix time; the key
// expires together with the longest-lived token it could affect.
type TokenRevoker struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTokenRevoker creates a TokenRevoker. ttl should match the token TTL: a
// revocation mark older than any live token is useless.
func NewTokenRevoker(client *redis.Client, ttl time.Duration) *TokenRevoker {
	return &TokenRevoker{client: client, ttl: ttl}
}

// RevokeOlderThan marks every token of the user issued before t as invalid.
func (r *TokenRevoker) RevokeOlderThan(ctx context.Context, userID int64, t time.Time) error {
	if err := r.client.Set(ctx, r.key(userID), t.Unix(), r.ttl).Err(); err != nil {
		return fmt.Errorf("set revocation mark: %w", err)
	}
	return nil
}

// IsRevoked reports whether a token issued at issuedAt is no longer valid for
// the user. Absence of a mark means nothing was revoked.
func (r *TokenRevoker) IsRevoked(ctx context.Context, userID int64, issuedAt time.Time) (bool, error) {
	val, err := r.client.Get(ctx, r.key(userID)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read revocation mark: %w", err)
	}

	mark, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return false, fmt.Errorf("parse revocation mark: %w", err)
	}

	return issuedAt.Unix() < mark, nil
}

func (r *TokenRevoker) key(userID int64) string {
	return fmt.Sprintf("pwdchange:%d", userID)
}
