package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// musicRequestLimit caps the public song list the way the site displays it.
const musicRequestLimit = 50

// Querier abstracts the subset of pgxpool.Pool used by Repository.
// This allows injection of a mock in tests.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Repository provides database access for RSVPs, music requests and
// gallery photos.
type Repository struct {
	q Querier
}

// NewRepository constructs a Repository backed by the given pool.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{q: pool}
}

// NewRepositoryWithQuerier constructs a Repository with a custom Querier (for tests).
func NewRepositoryWithQuerier(q Querier) *Repository {
	return &Repository{q: q}
}

// InsertRSVP stores one confirmation and returns its generated id.
func (r *Repository) InsertRSVP(ctx context.Context, in NewRSVP) (string, error) {
	const q = `
		INSERT INTO rsvp_responses (name, email, phone, attending, allergies, special_menu, message)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var id string
	err := r.q.QueryRow(ctx, q,
		in.Name, in.Email, in.Phone, in.Attending, in.Allergies, in.SpecialMenu, in.Message,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("inserting rsvp for %s: %w", in.Name, err)
	}

	return id, nil
}

// ListRSVPs returns every confirmation, newest first.
func (r *Repository) ListRSVPs(ctx context.Context) ([]RSVP, error) {
	const q = `
		SELECT id, name, email, phone, attending, allergies, special_menu, message, created_at
		FROM rsvp_responses
		ORDER BY created_at DESC
	`

	rows, err := r.q.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("querying rsvps: %w", err)
	}
	defer rows.Close()

	var results []RSVP
	for rows.Next() {
		var v RSVP
		if err := rows.Scan(
			&v.ID, &v.Name, &v.Email, &v.Phone, &v.Attending,
			&v.Allergies, &v.SpecialMenu, &v.Message, &v.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning rsvp row: %w", err)
		}
		results = append(results, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rsvp rows: %w", err)
	}

	return results, nil
}

// InsertMusicRequest stores one song suggestion and returns the full record.
func (r *Repository) InsertMusicRequest(ctx context.Context, songTitle, artist, requestedBy string) (*MusicRequest, error) {
	const q = `
		INSERT INTO music_requests (song_title, artist, requested_by)
		VALUES ($1, $2, $3)
		RETURNING id, song_title, artist, requested_by, created_at
	`

	var m MusicRequest
	err := r.q.QueryRow(ctx, q, songTitle, artist, requestedBy).Scan(
		&m.ID, &m.SongTitle, &m.Artist, &m.RequestedBy, &m.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting music request %q: %w", songTitle, err)
	}

	return &m, nil
}

// ListMusicRequests returns the most recent song suggestions, newest first.
func (r *Repository) ListMusicRequests(ctx context.Context) ([]MusicRequest, error) {
	const q = `
		SELECT id, song_title, artist, requested_by, created_at
		FROM music_requests
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.q.Query(ctx, q, musicRequestLimit)
	if err != nil {
		return nil, fmt.Errorf("querying music requests: %w", err)
	}
	defer rows.Close()

	var results []MusicRequest
	for rows.Next() {
		var m MusicRequest
		if err := rows.Scan(&m.ID, &m.SongTitle, &m.Artist, &m.RequestedBy, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning music request row: %w", err)
		}
		results = append(results, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating music request rows: %w", err)
	}

	return results, nil
}

// InsertPhoto stores one gallery record and returns it with generated fields.
func (r *Repository) InsertPhoto(ctx context.Context, storagePath, url string, caption *string, uploadedBy string) (*Photo, error) {
	const q = `
		INSERT INTO gallery_photos (storage_path, url, caption, uploaded_by, likes)
		VALUES ($1, $2, $3, $4, 0)
		RETURNING id, storage_path, url, caption, uploaded_by, likes, created_at
	`

	var p Photo
	err := r.q.QueryRow(ctx, q, storagePath, url, caption, uploadedBy).Scan(
		&p.ID, &p.StoragePath, &p.URL, &p.Caption, &p.UploadedBy, &p.Likes, &p.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting photo %s: %w", storagePath, err)
	}

	return &p, nil
}

// ListPhotos returns every gallery record, newest first.
func (r *Repository) ListPhotos(ctx context.Context) ([]Photo, error) {
	const q = `
		SELECT id, storage_path, url, caption, uploaded_by, likes, created_at
		FROM gallery_photos
		ORDER BY created_at DESC
	`

	rows, err := r.q.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("querying photos: %w", err)
	}
	defer rows.Close()

	var results []Photo
	for rows.Next() {
		var p Photo
		if err := rows.Scan(&p.ID, &p.StoragePath, &p.URL, &p.Caption, &p.UploadedBy, &p.Likes, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning photo row: %w", err)
		}
		results = append(results, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating photo rows: %w", err)
	}

	return results, nil
}

// GetPhoto retrieves one gallery record by id.
// Returns nil, nil when the photo does not exist.
func (r *Repository) GetPhoto(ctx context.Context, id string) (*Photo, error) {
	const q = `
		SELECT id, storage_path, url, caption, uploaded_by, likes, created_at
		FROM gallery_photos
		WHERE id = $1
	`

	var p Photo
	err := r.q.QueryRow(ctx, q, id).Scan(
		&p.ID, &p.StoragePath, &p.URL, &p.Caption, &p.UploadedBy, &p.Likes, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying photo %s: %w", id, err)
	}

	return &p, nil
}

// AdjustPhotoLikes changes a photo's like count by delta in a single
// statement, clamping at zero. Returns the new count; found is false when
// the photo does not exist.
func (r *Repository) AdjustPhotoLikes(ctx context.Context, id string, delta int) (likes int, found bool, err error) {
	const q = `
		UPDATE gallery_photos
		SET likes = GREATEST(likes + $2, 0)
		WHERE id = $1
		RETURNING likes
	`

	err = r.q.QueryRow(ctx, q, id, delta).Scan(&likes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("updating likes for photo %s: %w", id, err)
	}

	return likes, true, nil
}

// DeletePhoto removes one gallery record. Returns false when nothing was
// deleted.
func (r *Repository) DeletePhoto(ctx context.Context, id string) (bool, error) {
	const q = `DELETE FROM gallery_photos WHERE id = $1`

	tag, err := r.q.Exec(ctx, q, id)
	if err != nil {
		return false, fmt.Errorf("deleting photo %s: %w", id, err)
	}

	return tag.RowsAffected() > 0, nil
}
