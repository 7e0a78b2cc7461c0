package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/albertobort/boda-api/internal/storage"
)

// rsvpStats summarizes the confirmation list for the dashboard.
type rsvpStats struct {
	Total           int `json:"total"`
	Attending       int `json:"attending"`
	Declined        int `json:"declined"`
	WithAllergies   int `json:"with_allergies"`
	WithSpecialMenu int `json:"with_special_menu"`
}

type dashboardResponse struct {
	RSVP          rsvpStats `json:"rsvp"`
	MusicRequests int       `json:"music_requests"`
	Photos        int       `json:"photos"`
	TotalLikes    int       `json:"total_likes"`
}

// ListRSVPs handles GET /api/v1/admin/rsvps.
func (h *Handlers) ListRSVPs(w http.ResponseWriter, r *http.Request) {
	rsvps, err := h.repo.ListRSVPs(r.Context())
	if err != nil {
		h.log.Error("rsvp list failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if rsvps == nil {
		rsvps = []storage.RSVP{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": rsvps})
}

// Dashboard handles GET /api/v1/admin/dashboard. The three lists are
// independent, so they are fetched in parallel.
func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	var (
		rsvps  []storage.RSVP
		music  []storage.MusicRequest
		photos []storage.Photo
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		rsvps, err = h.repo.ListRSVPs(ctx)
		return err
	})
	g.Go(func() (err error) {
		music, err = h.repo.ListMusicRequests(ctx)
		return err
	})
	g.Go(func() (err error) {
		photos, err = h.repo.ListPhotos(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		h.log.Error("dashboard aggregation failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := dashboardResponse{
		MusicRequests: len(music),
		Photos:        len(photos),
	}
	for _, v := range rsvps {
		resp.RSVP.Total++
		if v.Attending {
			resp.RSVP.Attending++
			if v.Allergies != nil {
				resp.RSVP.WithAllergies++
			}
			if v.SpecialMenu != nil {
				resp.RSVP.WithSpecialMenu++
			}
		} else {
			resp.RSVP.Declined++
		}
	}
	for _, p := range photos {
		resp.TotalLikes += p.Likes
	}

	writeJSON(w, http.StatusOK, resp)
}

// DeletePhoto handles DELETE /api/v1/admin/gallery/{id}.
func (h *Handlers) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := h.repo.DeletePhoto(r.Context(), id)
	if err != nil {
		h.log.Error("photo delete failed", "photo", id, "err", err)
		writeError(w, http.StatusInternalServerError, "Error al eliminar la foto.")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "Foto no encontrada.")
		return
	}

	if err := h.cache.InvalidatePhotos(r.Context()); err != nil {
		h.log.Warn("gallery cache invalidation failed", "err", err)
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
