package api

import (
	"net/http"
	"strings"

	"github.com/albertobort/boda-api/internal/storage"
)

type musicPayload struct {
	SongTitle   string `json:"song_title" validate:"required,max=200"`
	Artist      string `json:"artist" validate:"required,max=200"`
	RequestedBy string `json:"requested_by" validate:"required,max=120"`
}

// SubmitMusicRequest handles POST /api/v1/music.
func (h *Handlers) SubmitMusicRequest(w http.ResponseWriter, r *http.Request) {
	var payload musicPayload
	if err := decodeValid(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	req, err := h.repo.InsertMusicRequest(r.Context(),
		strings.TrimSpace(payload.SongTitle),
		strings.TrimSpace(payload.Artist),
		strings.TrimSpace(payload.RequestedBy),
	)
	if err != nil {
		h.log.Error("music request insert failed", "song", payload.SongTitle, "err", err)
		writeError(w, http.StatusInternalServerError, "Error al guardar la petición. Inténtalo de nuevo.")
		return
	}

	if err := h.cache.InvalidateMusicRequests(r.Context()); err != nil {
		h.log.Warn("music cache invalidation failed", "err", err)
	}

	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "data": req})
}

// ListMusicRequests handles GET /api/v1/music with a cache-aside read.
func (h *Handlers) ListMusicRequests(w http.ResponseWriter, r *http.Request) {
	cached, err := h.cache.GetMusicRequests(r.Context())
	if err != nil {
		h.log.Error("music cache get failed", "err", err)
	}
	if cached != nil {
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": cached})
		return
	}

	requests, err := h.repo.ListMusicRequests(r.Context())
	if err != nil {
		h.log.Error("music list failed", "err", err)
		writeError(w, http.StatusInternalServerError, "Error al cargar las canciones.")
		return
	}
	if requests == nil {
		requests = []storage.MusicRequest{}
	}

	if err := h.cache.SetMusicRequests(r.Context(), requests); err != nil {
		h.log.Warn("music cache set failed", "err", err)
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": requests})
}
