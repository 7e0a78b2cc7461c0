package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albertobort/boda-api/internal/cache"
	"github.com/albertobort/boda-api/internal/storage"
)

func newTestCache(t *testing.T) (*cache.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return cache.NewCache(client), mr
}

func samplePhotos() []storage.Photo {
	caption := "Primer baile"
	return []storage.Photo{
		{
			ID:          "6f1c9a52-0000-0000-0000-000000000001",
			StoragePath: "photos/abc.jpg",
			URL:         "https://fotos.example.com/photos/abc.jpg",
			Caption:     &caption,
			UploadedBy:  "Lucía",
			Likes:       3,
			CreatedAt:   time.Date(2026, time.November, 14, 21, 0, 0, 0, time.UTC),
		},
	}
}

func sampleMusic() []storage.MusicRequest {
	return []storage.MusicRequest{
		{
			ID:          "6f1c9a52-0000-0000-0000-000000000002",
			SongTitle:   "Paquito el Chocolatero",
			Artist:      "Gustavo Pascual Falcó",
			RequestedBy: "Pedro",
			CreatedAt:   time.Date(2026, time.October, 1, 12, 0, 0, 0, time.UTC),
		},
	}
}

func TestCache_Photos_SetAndGet(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetPhotos(ctx, samplePhotos()))

	got, err := c.GetPhotos(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "photos/abc.jpg", got[0].StoragePath)
	assert.Equal(t, 3, got[0].Likes)
	require.NotNil(t, got[0].Caption)
	assert.Equal(t, "Primer baile", *got[0].Caption)
}

func TestCache_Photos_Miss(t *testing.T) {
	c, _ := newTestCache(t)

	got, err := c.GetPhotos(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got, "cache miss should return nil, nil")
}

func TestCache_Photos_EmptyListIsAHit(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetPhotos(ctx, []storage.Photo{}))

	got, err := c.GetPhotos(ctx)
	require.NoError(t, err)
	assert.NotNil(t, got, "a cached empty gallery is still a hit")
	assert.Empty(t, got)
}

func TestCache_Photos_Invalidate(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetPhotos(ctx, samplePhotos()))
	require.NoError(t, c.InvalidatePhotos(ctx))

	got, err := c.GetPhotos(ctx)
	require.NoError(t, err)
	assert.Nil(t, got, "entry should be gone after invalidation")
}

func TestCache_Photos_TTL(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetPhotos(ctx, samplePhotos()))

	mr.FastForward(10 * time.Minute)

	got, err := c.GetPhotos(ctx)
	require.NoError(t, err)
	assert.Nil(t, got, "entry should be expired after TTL")
}

func TestCache_MusicRequests_SetAndGet(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetMusicRequests(ctx, sampleMusic()))

	got, err := c.GetMusicRequests(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Paquito el Chocolatero", got[0].SongTitle)
}

func TestCache_MusicRequests_InvalidateIsIndependent(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetPhotos(ctx, samplePhotos()))
	require.NoError(t, c.SetMusicRequests(ctx, sampleMusic()))
	require.NoError(t, c.InvalidateMusicRequests(ctx))

	music, err := c.GetMusicRequests(ctx)
	require.NoError(t, err)
	assert.Nil(t, music)

	photos, err := c.GetPhotos(ctx)
	require.NoError(t, err)
	assert.NotNil(t, photos, "invalidating one list must not evict the other")
}

func TestConnect_InvalidURL(t *testing.T) {
	_, err := cache.Connect(context.Background(), "not-a-url")
	require.Error(t, err)
}

func TestConnect_UnreachableServer(t *testing.T) {
	_, err := cache.Connect(context.Background(), "redis://localhost:19999")
	require.Error(t, err)
}
