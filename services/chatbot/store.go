package chatbot

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// ActiveTripStore remembers which booking a user switched the chat to.
// Only the chat session writes to it, so plain set/get is enough.
type ActiveTripStore interface {
	Get(ctx context.Context, userID string) (string, error)
	Set(ctx context.Context, userID, bookingID string) error
}

const activeTripPrefix = "chat:activetrip:"

type redisActiveTripStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisActiveTripStore(client *redis.Client, ttl time.Duration) ActiveTripStore {
	return &redisActiveTripStore{client: client, ttl: ttl}
}

// Get returns the selected booking id, or "" when none is set.
func (s *redisActiveTripStore) Get(ctx context.Context, userID string) (string, error) {
	id, err := s.client.Get(ctx, activeTripPrefix+userID).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *redisActiveTripStore) Set(ctx context.Context, userID, bookingID string) error {
	return s.client.Set(ctx, activeTripPrefix+userID, bookingID, s.ttl).Err()
}
