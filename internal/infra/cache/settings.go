package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"warung-loyalty/internal/usecase/queries"
	"warung-loyalty/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

const settingsKey = "loyalty:settings"

// SettingsCache is a read-through cache over the settings readstore. Profile
// and quote traffic hits this on every request; the settlement path reads
// inside its transaction and never sees the cache.
type SettingsCache struct {
	client *redis.Client
	source queries.SettingsReadStore
	ttl    time.Duration
}

func NewSettingsCache(client *redis.Client, source queries.SettingsReadStore, ttl time.Duration) *SettingsCache {
	return &SettingsCache{
		client: client,
		source: source,
		ttl:    ttl,
	}
}

func (c *SettingsCache) Settings(ctx context.Context) (*shared.SettingsSnapshot, error) {
	raw, err := c.client.Get(ctx, settingsKey).Bytes()
	if err == nil {
		var snap shared.SettingsSnapshot
		if err := json.Unmarshal(raw, &snap); err == nil {
			return &snap, nil
		}
		// Unreadable entry: fall through and overwrite it.
	} else if !errors.Is(err, redis.Nil) {
		slog.Warn("settings cache read failed", "error", err.Error())
	}

	snap, err := c.source.Settings(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(snap); err == nil {
		if err := c.client.Set(ctx, settingsKey, raw, c.ttl).Err(); err != nil {
			slog.Warn("settings cache write failed", "error", err.Error())
		}
	}
	return snap, nil
}

// Invalidate drops the cached snapshot after an admin write.
func (c *SettingsCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, settingsKey).Err()
}
