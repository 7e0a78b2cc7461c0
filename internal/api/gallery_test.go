package api_test

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albertobort/boda-api/internal/storage"
)

// galleryOpen is inside the upload window (the day before the wedding).
var galleryOpen = time.Date(2026, time.November, 13, 10, 0, 0, 0, madrid)

func TestListPhotos_CacheHit(t *testing.T) {
	repo := &mockRepo{
		listPhotosFn: func(context.Context) ([]storage.Photo, error) {
			t.Fatal("repo should not be called on cache hit")
			return nil, nil
		},
	}
	cache := &mockCache{
		getPhotosFn: func(context.Context) ([]storage.Photo, error) {
			return []storage.Photo{{ID: "1", StoragePath: "photos/a.jpg"}}, nil
		},
	}

	router := buildRouter(t, repo, cache, nil, galleryOpen)
	w := doJSON(t, router, http.MethodGet, "/api/v1/gallery", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	got := decodeBody(t, w)
	assert.Len(t, got["data"], 1)
}

func TestListPhotos_CacheMissPopulates(t *testing.T) {
	repo := &mockRepo{
		listPhotosFn: func(context.Context) ([]storage.Photo, error) {
			return []storage.Photo{{ID: "1"}}, nil
		},
	}
	cache := &mockCache{}

	router := buildRouter(t, repo, cache, nil, galleryOpen)
	w := doJSON(t, router, http.MethodGet, "/api/v1/gallery", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, cache.photosSet)
}

func TestListPhotos_CacheErrorFallsThrough(t *testing.T) {
	repo := &mockRepo{
		listPhotosFn: func(context.Context) ([]storage.Photo, error) {
			return []storage.Photo{{ID: "1"}}, nil
		},
	}
	cache := &mockCache{
		getPhotosFn: func(context.Context) ([]storage.Photo, error) {
			return nil, assert.AnError
		},
	}

	router := buildRouter(t, repo, cache, nil, galleryOpen)
	w := doJSON(t, router, http.MethodGet, "/api/v1/gallery", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code, "a broken cache must not break reads")
	got := decodeBody(t, w)
	assert.Len(t, got["data"], 1)
}

func TestUploadPhoto_BeforeEnablement(t *testing.T) {
	repo := &mockRepo{
		insertPhotoFn: func(context.Context, string, string, *string, string) (*storage.Photo, error) {
			t.Fatal("nothing should be inserted before the gallery opens")
			return nil, nil
		},
	}

	before := time.Date(2026, time.November, 12, 23, 59, 0, 0, madrid)
	router := buildRouter(t, repo, nil, nil, before)
	w := doJSON(t, router, http.MethodPost, "/api/v1/gallery", map[string]any{
		"file_name":   "baile.jpg",
		"mime_type":   "image/jpeg",
		"uploaded_by": "Lucía",
	}, nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
	got := decodeBody(t, w)
	assert.Equal(t, "La galería estará disponible a partir del 13 de noviembre de 2026", got["error"])
}

func TestUploadPhoto_Success(t *testing.T) {
	var gotPath, gotURL string
	var gotCaption *string
	repo := &mockRepo{
		insertPhotoFn: func(_ context.Context, storagePath, url string, caption *string, uploadedBy string) (*storage.Photo, error) {
			gotPath, gotURL, gotCaption = storagePath, url, caption
			return &storage.Photo{ID: "photo-id", StoragePath: storagePath, URL: url, UploadedBy: uploadedBy}, nil
		},
	}
	cache := &mockCache{}

	router := buildRouter(t, repo, cache, nil, galleryOpen)
	w := doJSON(t, router, http.MethodPost, "/api/v1/gallery", map[string]any{
		"file_name":   "baile.png",
		"mime_type":   "image/png",
		"caption":     "Primer baile",
		"uploaded_by": "Lucía",
	}, nil)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, strings.HasPrefix(gotPath, "photos/"))
	assert.True(t, strings.HasSuffix(gotPath, ".png"))
	assert.Equal(t, "https://fotos.example.com/"+gotPath, gotURL)
	require.NotNil(t, gotCaption)
	assert.Equal(t, "Primer baile", *gotCaption)
	assert.True(t, cache.photosInvalidated)
}

func TestUploadPhoto_MissingUploader(t *testing.T) {
	router := buildRouter(t, nil, nil, nil, galleryOpen)
	w := doJSON(t, router, http.MethodPost, "/api/v1/gallery", map[string]any{
		"file_name": "baile.jpg",
		"mime_type": "image/jpeg",
	}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLikePhoto(t *testing.T) {
	var gotDelta int
	repo := &mockRepo{
		adjustLikesFn: func(_ context.Context, id string, delta int) (int, bool, error) {
			gotDelta = delta
			return 4, true, nil
		},
	}
	cache := &mockCache{}

	router := buildRouter(t, repo, cache, nil, galleryOpen)
	w := doJSON(t, router, http.MethodPost, "/api/v1/gallery/abc/like", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, gotDelta)
	got := decodeBody(t, w)
	assert.Equal(t, float64(4), got["new_likes"])
	assert.True(t, cache.photosInvalidated)
}

func TestUnlikePhoto(t *testing.T) {
	var gotDelta int
	repo := &mockRepo{
		adjustLikesFn: func(_ context.Context, id string, delta int) (int, bool, error) {
			gotDelta = delta
			return 0, true, nil
		},
	}

	router := buildRouter(t, repo, nil, nil, galleryOpen)
	w := doJSON(t, router, http.MethodPost, "/api/v1/gallery/abc/unlike", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, -1, gotDelta)
	got := decodeBody(t, w)
	assert.Equal(t, float64(0), got["new_likes"])
}

func TestLikePhoto_NotFound(t *testing.T) {
	repo := &mockRepo{
		adjustLikesFn: func(context.Context, string, int) (int, bool, error) {
			return 0, false, nil
		},
	}

	router := buildRouter(t, repo, nil, nil, galleryOpen)
	w := doJSON(t, router, http.MethodPost, "/api/v1/gallery/missing/like", nil, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	got := decodeBody(t, w)
	assert.Equal(t, "Foto no encontrada.", got["error"])
}
