package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"milletsurvey/internal/model"
)

// DraftCache persists in-progress interview sessions so an enumerator can
// resume after a reconnect or server restart.
type DraftCache interface {
	Save(ctx context.Context, state model.InterviewState) error
	Get(ctx context.Context, sessionID string) (*model.InterviewState, error)
	Delete(ctx context.Context, sessionID string) error
}

type draftCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDraftCache creates a new draft cache
func NewDraftCache(client *redis.Client, ttl time.Duration) DraftCache {
	return &draftCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *draftCache) key(sessionID string) string {
	return "interview:draft:" + sessionID
}

func (c *draftCache) Save(ctx context.Context, state model.InterviewState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(state.SessionID), data, c.ttl).Err()
}

func (c *draftCache) Get(ctx context.Context, sessionID string) (*model.InterviewState, error) {
	data, err := c.client.Get(ctx, c.key(sessionID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var state model.InterviewState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (c *draftCache) Delete(ctx context.Context, sessionID string) error {
	return c.client.Del(ctx, c.key(sessionID)).Err()
}
