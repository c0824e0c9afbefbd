package planner

import (
	"context"
	"encoding/json"
	"time"

	"travelease/models"

	"github.com/go-redis/redis/v8"
)

// Session phases. A session only moves forward: asking -> computing ->
// complete. Complete is terminal; starting over means a new session.
const (
	PhaseAsking    = "asking"
	PhaseComputing = "computing"
	PhaseComplete  = "complete"
)

// Session is one run of the guided questionnaire.
type Session struct {
	ID        string             `json:"id"`
	Step      int                `json:"step"`
	Phase     string             `json:"phase"`
	Answers   map[string]string  `json:"answers"`
	Result    *models.PlanResult `json:"result,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// SessionStore persists planner sessions between answer calls.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*Session, error)
	Set(ctx context.Context, session *Session) error
	Delete(ctx context.Context, sessionID string) error
}

const sessionPrefix = "planner:session:"

type redisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionStore returns a SessionStore backed by Redis. Sessions
// expire after ttl of inactivity; every Set refreshes the clock.
func NewRedisSessionStore(client *redis.Client, ttl time.Duration) SessionStore {
	return &redisSessionStore{client: client, ttl: ttl}
}

func (s *redisSessionStore) Get(ctx context.Context, sessionID string) (*Session, error) {
	data, err := s.client.Get(ctx, sessionPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var sess Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *redisSessionStore) Set(ctx context.Context, session *Session) error {
	b, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionPrefix+session.ID, b, s.ttl).Err()
}

func (s *redisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionPrefix+sessionID).Err()
}
