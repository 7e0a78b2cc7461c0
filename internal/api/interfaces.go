package api

import (
	"context"

	"github.com/albertobort/boda-api/internal/forecast"
	"github.com/albertobort/boda-api/internal/storage"
)

// GuestRepo defines the storage operations needed by handlers.
type GuestRepo interface {
	InsertRSVP(ctx context.Context, in storage.NewRSVP) (string, error)
	ListRSVPs(ctx context.Context) ([]storage.RSVP, error)
	InsertMusicRequest(ctx context.Context, songTitle, artist, requestedBy string) (*storage.MusicRequest, error)
	ListMusicRequests(ctx context.Context) ([]storage.MusicRequest, error)
	InsertPhoto(ctx context.Context, storagePath, url string, caption *string, uploadedBy string) (*storage.Photo, error)
	ListPhotos(ctx context.Context) ([]storage.Photo, error)
	AdjustPhotoLikes(ctx context.Context, id string, delta int) (likes int, found bool, err error)
	DeletePhoto(ctx context.Context, id string) (bool, error)
}

// ListCache defines the cache operations needed by handlers.
type ListCache interface {
	GetPhotos(ctx context.Context) ([]storage.Photo, error)
	SetPhotos(ctx context.Context, photos []storage.Photo) error
	InvalidatePhotos(ctx context.Context) error
	GetMusicRequests(ctx context.Context) ([]storage.MusicRequest, error)
	SetMusicRequests(ctx context.Context, requests []storage.MusicRequest) error
	InvalidateMusicRequests(ctx context.Context) error
}

// WeatherService provides the wedding-date forecast. Failures are reported
// inside the Result, never as an error.
type WeatherService interface {
	Get(ctx context.Context) forecast.Result
}
