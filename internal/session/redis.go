package session

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "session:revoked:"

// RedisStore keeps revoked session ids in Redis so every instance
// observes a logout immediately.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis at addr and verifies connectivity.
func NewRedisStore(ctx context.Context, addr string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &RedisStore{client: client}, nil
}

// NewRedisStoreWithClient wraps an existing client.
func NewRedisStoreWithClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Revoke stores the session id with the remaining token lifetime as TTL.
func (s *RedisStore) Revoke(ctx context.Context, sessionID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return s.client.Set(ctx, redisKeyPrefix+sessionID, "1", ttl).Err()
}

// Revoked reports whether the session id is present in Redis.
func (s *RedisStore) Revoked(ctx context.Context, sessionID string) (bool, error) {
	err := s.client.Get(ctx, redisKeyPrefix+sessionID).Err()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Close releases the underlying client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

var _ Store = (*RedisStore)(nil)
