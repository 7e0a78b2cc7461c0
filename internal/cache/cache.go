package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/albertobort/boda-api/internal/storage"
)

// Shared lists are cached briefly; writes invalidate the affected key.
const defaultTTL = 5 * time.Minute

const (
	photosKey = "gallery:photos"
	musicKey  = "music:requests"
)

// Cache wraps a Redis client with typed get/set/invalidate operations for
// the gallery and music-request lists.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache constructs a Cache with a 5-minute TTL.
func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client, ttl: defaultTTL}
}

// GetPhotos retrieves the cached gallery list.
// Returns nil, nil on a cache miss (not an error).
func (c *Cache) GetPhotos(ctx context.Context) ([]storage.Photo, error) {
	var photos []storage.Photo
	ok, err := c.get(ctx, photosKey, &photos)
	if err != nil || !ok {
		return nil, err
	}
	return photos, nil
}

// SetPhotos stores the gallery list with the configured TTL.
func (c *Cache) SetPhotos(ctx context.Context, photos []storage.Photo) error {
	return c.set(ctx, photosKey, photos)
}

// InvalidatePhotos drops the cached gallery list after a write.
func (c *Cache) InvalidatePhotos(ctx context.Context) error {
	return c.del(ctx, photosKey)
}

// GetMusicRequests retrieves the cached song list.
// Returns nil, nil on a cache miss (not an error).
func (c *Cache) GetMusicRequests(ctx context.Context) ([]storage.MusicRequest, error) {
	var requests []storage.MusicRequest
	ok, err := c.get(ctx, musicKey, &requests)
	if err != nil || !ok {
		return nil, err
	}
	return requests, nil
}

// SetMusicRequests stores the song list with the configured TTL.
func (c *Cache) SetMusicRequests(ctx context.Context, requests []storage.MusicRequest) error {
	return c.set(ctx, musicKey, requests)
}

// InvalidateMusicRequests drops the cached song list after a write.
func (c *Cache) InvalidateMusicRequests(ctx context.Context) error {
	return c.del(ctx, musicKey)
}

func (c *Cache) get(ctx context.Context, key string, dst any) (bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(val), dst); err != nil {
		return false, fmt.Errorf("unmarshaling cached %s: %w", key, err)
	}

	return true, nil
}

func (c *Cache) set(ctx context.Context, key string, v any) error {
	if v == nil {
		return nil
	}

	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", key, err)
	}

	if err := c.client.Set(ctx, key, b, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}

	return nil
}

func (c *Cache) del(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("cache delete %s: %w", key, err)
	}
	return nil
}
