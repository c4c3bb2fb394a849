package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"milletsurvey/internal/model"
)

const snapshotKey = "dashboard:snapshot"

// SnapshotCache holds the computed dashboard aggregates for a short TTL so
// repeated dashboard refreshes do not rescan the full response collection.
type SnapshotCache interface {
	Get(ctx context.Context) (*model.DashboardSnapshot, error)
	Set(ctx context.Context, snapshot *model.DashboardSnapshot) error
	Invalidate(ctx context.Context) error
}

type snapshotCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSnapshotCache creates a new snapshot cache
func NewSnapshotCache(client *redis.Client, ttl time.Duration) SnapshotCache {
	return &snapshotCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *snapshotCache) Get(ctx context.Context) (*model.DashboardSnapshot, error) {
	data, err := c.client.Get(ctx, snapshotKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var snapshot model.DashboardSnapshot
	if err := json.Unmarshal([]byte(data), &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (c *snapshotCache) Set(ctx context.Context, snapshot *model.DashboardSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, snapshotKey, data, c.ttl).Err()
}

func (c *snapshotCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, snapshotKey).Err()
}
