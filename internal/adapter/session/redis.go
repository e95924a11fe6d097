package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"credfacil-backend/internal/domain/flow"
)

// RedisStore keeps one JSON session entry per user with a sliding TTL.
// An expired entry simply restarts the flow at personal data; the created
// application keeps whatever status it last reached.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func key(userID string) string { return "flow:sess:" + userID }

func (s *RedisStore) Get(ctx context.Context, userID string) (*flow.Session, error) {
	v, err := s.rdb.Get(ctx, key(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, flow.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("session get: %w", err)
	}
	var out flow.Session
	if err := json.Unmarshal(v, &out); err != nil {
		return nil, fmt.Errorf("session decode: %w", err)
	}
	return &out, nil
}

func (s *RedisStore) Put(ctx context.Context, sess *flow.Session) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("session encode: %w", err)
	}
	if err := s.rdb.Set(ctx, key(sess.UserID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("session put: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, userID string) error {
	return s.rdb.Del(ctx, key(userID)).Err()
}
