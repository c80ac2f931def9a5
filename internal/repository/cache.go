package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"home_relay/internal/models"
)

// StateCache stores small JSON documents by key.
type StateCache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any) error
	Delete(ctx context.Context, key string) error
}

const cacheKeyPrefix = "home_relay:"

// RedisCache is a StateCache backed by Redis string keys with a TTL.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

var _ StateCache = (*RedisCache)(nil)

func (c *RedisCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	b, err := c.client.Get(ctx, cacheKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis get %q: %w", key, err)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return false, fmt.Errorf("decode cached %q: %w", key, err)
	}
	return true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	if err := c.client.Set(ctx, cacheKeyPrefix+key, b, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}

func (c *RedisCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, cacheKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("redis del %q: %w", key, err)
	}
	return nil
}

// CachedRelayState serves relay status and mode reads from a StateCache and
// falls back to the wrapped repository. Writes go to the repository first and
// then drop the cached entry. Cache failures never fail the call; an entry
// that could not be dropped stays stale until its TTL runs out.
type CachedRelayState struct {
	inner RelayStateRepo
	cache StateCache
}

func NewCachedRelayState(inner RelayStateRepo, cache StateCache) *CachedRelayState {
	return &CachedRelayState{inner: inner, cache: cache}
}

var _ RelayStateRepo = (*CachedRelayState)(nil)

func statusKey(relay int) string { return fmt.Sprintf("relay:%d:status", relay) }
func modeKey(relay int) string   { return fmt.Sprintf("relay:%d:mode", relay) }

func (c *CachedRelayState) SaveStatus(ctx context.Context, s models.RelayStatus) error {
	if err := c.inner.SaveStatus(ctx, s); err != nil {
		return err
	}
	_ = c.cache.Delete(ctx, statusKey(s.Relay))
	return nil
}

func (c *CachedRelayState) GetStatus(ctx context.Context, relay int) (*models.RelayStatus, error) {
	var s models.RelayStatus
	if ok, err := c.cache.Get(ctx, statusKey(relay), &s); err == nil && ok {
		return &s, nil
	}
	got, err := c.inner.GetStatus(ctx, relay)
	if err != nil || got == nil {
		return got, err
	}
	_ = c.cache.Set(ctx, statusKey(relay), got)
	return got, nil
}

func (c *CachedRelayState) EnsureStatus(ctx context.Context, relay int) (models.RelayStatus, error) {
	var s models.RelayStatus
	if ok, err := c.cache.Get(ctx, statusKey(relay), &s); err == nil && ok {
		return s, nil
	}
	s, err := c.inner.EnsureStatus(ctx, relay)
	if err != nil {
		return models.RelayStatus{}, err
	}
	_ = c.cache.Set(ctx, statusKey(relay), s)
	return s, nil
}

func (c *CachedRelayState) SaveMode(ctx context.Context, m models.RelayMode) error {
	if err := c.inner.SaveMode(ctx, m); err != nil {
		return err
	}
	_ = c.cache.Delete(ctx, modeKey(m.Relay))
	return nil
}

func (c *CachedRelayState) GetMode(ctx context.Context, relay int) (*models.RelayMode, error) {
	var m models.RelayMode
	if ok, err := c.cache.Get(ctx, modeKey(relay), &m); err == nil && ok {
		return &m, nil
	}
	got, err := c.inner.GetMode(ctx, relay)
	if err != nil || got == nil {
		return got, err
	}
	_ = c.cache.Set(ctx, modeKey(relay), got)
	return got, nil
}
