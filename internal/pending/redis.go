package pending

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "pending_registration:"

// RedisStore shares pending registrations across API instances. Expiry is left
// to redis via the key TTL; Pop uses GETDEL so an OTP is consumed atomically.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// NewRedisClient parses a redis:// URL and checks connectivity.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func (s *RedisStore) Put(ctx context.Context, email string, reg Registration) error {
	reg.ExpiresAt = time.Now().Add(s.ttl)
	data, err := json.Marshal(reg)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, keyPrefix+email, data, s.ttl).Err()
}

func (s *RedisStore) Pop(ctx context.Context, email string) (Registration, error) {
	var reg Registration
	data, err := s.client.GetDel(ctx, keyPrefix+email).Bytes()
	if errors.Is(err, redis.Nil) {
		return reg, ErrNotFound
	}
	if err != nil {
		return reg, err
	}
	if err := json.Unmarshal(data, &reg); err != nil {
		return reg, fmt.Errorf("decode pending registration: %w", err)
	}
	return reg, nil
}
