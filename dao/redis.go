package dao

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/medlaunch/checkout.api.medlaunch.health/config"
	"github.com/medlaunch/checkout.api.medlaunch.health/models"
)

var _ SessionStore = (*RedisSessionStore)(nil)

// RedisSessionStore is a Redis implementation of the SessionStore interface.
// A checkout session is one JSON value under a per-checkout key with a TTL,
// so an abandoned flow expires on its own.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionStore returns a session store backed by the configured Redis
// instance
func NewRedisSessionStore(cfg *config.Config) *RedisSessionStore {
	return &RedisSessionStore{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		}),
		ttl: time.Duration(cfg.SessionTTLHours) * time.Hour,
	}
}

func sessionKey(id string) string {
	return fmt.Sprintf("checkout:session:%s", id)
}

// Save serialises the session and writes it under its key, refreshing the TTL
func (s *RedisSessionStore) Save(ctx context.Context, session *models.CheckoutSessionDB) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("error marshalling checkout session: [%v]", err)
	}
	return s.client.Set(ctx, sessionKey(session.ID), data, s.ttl).Err()
}

// Load reads a session back by checkout id.
// If no session is stored under the id, nil is returned with no error.
func (s *RedisSessionStore) Load(ctx context.Context, id string) (*models.CheckoutSessionDB, error) {
	data, err := s.client.Get(ctx, sessionKey(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var session models.CheckoutSessionDB
	err = json.Unmarshal([]byte(data), &session)
	if err != nil {
		return nil, fmt.Errorf("error unmarshalling checkout session: [%v]", err)
	}

	return &session, nil
}

// Clear deletes the stored session for a checkout id
func (s *RedisSessionStore) Clear(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKey(id)).Err()
}
