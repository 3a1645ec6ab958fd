package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"haus/internal/domain"
)

// DefaultRedisKey is the key holding the session slot.
const DefaultRedisKey = "haus:session"

// RedisSessionStore keeps the session slot under a single Redis key.
// The key has no TTL: the session lasts until logout or account deletion.
type RedisSessionStore struct {
	client redis.UniversalClient
	key    string
}

// NewRedisSessionStore creates a Redis-backed slot stored under DefaultRedisKey.
func NewRedisSessionStore(client redis.UniversalClient) *RedisSessionStore {
	return NewRedisSessionStoreWithKey(client, DefaultRedisKey)
}

// NewRedisSessionStoreWithKey creates a Redis-backed slot stored under key.
func NewRedisSessionStoreWithKey(client redis.UniversalClient, key string) *RedisSessionStore {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisSessionStore{client: client, key: key}
}

func (s *RedisSessionStore) Set(ctx context.Context, username domain.Username) error {
	if username == "" {
		return errors.New("username cannot be empty")
	}
	data, err := json.Marshal(sessionSlot{Username: username, SavedUTC: time.Now().Unix()})
	if err != nil {
		return fmt.Errorf("marshal session slot: %w", err)
	}
	return s.client.Set(ctx, s.key, data, 0).Err()
}

func (s *RedisSessionStore) Get(ctx context.Context) (domain.Username, bool, error) {
	data, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis get: %w", err)
	}

	var slot sessionSlot
	if unmarshalErr := json.Unmarshal([]byte(data), &slot); unmarshalErr != nil {
		return "", false, fmt.Errorf("%w: decode: %w", domain.ErrUnreadableSession, unmarshalErr)
	}
	if slot.Username == "" {
		return "", false, nil
	}
	return slot.Username, true, nil
}

func (s *RedisSessionStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key).Err()
}

var _ domain.SessionStore = (*RedisSessionStore)(nil)
