package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/albertobort/boda-api/internal/storage"
)

const galleryNotOpenMsg = "La galería estará disponible a partir del 13 de noviembre de 2026"

type photoPayload struct {
	FileName   string `json:"file_name" validate:"required,max=255"`
	MimeType   string `json:"mime_type" validate:"required,max=100"`
	Caption    string `json:"caption" validate:"max=500"`
	UploadedBy string `json:"uploaded_by" validate:"required,max=120"`
}

// ListPhotos handles GET /api/v1/gallery with a cache-aside read.
func (h *Handlers) ListPhotos(w http.ResponseWriter, r *http.Request) {
	cached, err := h.cache.GetPhotos(r.Context())
	if err != nil {
		h.log.Error("gallery cache get failed", "err", err)
	}
	if cached != nil {
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": cached})
		return
	}

	photos, err := h.repo.ListPhotos(r.Context())
	if err != nil {
		h.log.Error("gallery list failed", "err", err)
		writeError(w, http.StatusInternalServerError, "Error al cargar las fotos.")
		return
	}
	if photos == nil {
		photos = []storage.Photo{}
	}

	if err := h.cache.SetPhotos(r.Context(), photos); err != nil {
		h.log.Warn("gallery cache set failed", "err", err)
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": photos})
}

// UploadPhoto handles POST /api/v1/gallery. Uploads open at the configured
// enablement instant, the day before the wedding.
func (h *Handlers) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	if h.now().Before(h.cfg.GalleryEnabledFrom) {
		writeError(w, http.StatusForbidden, galleryNotOpenMsg)
		return
	}

	var payload photoPayload
	if err := decodeValid(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	storagePath := "photos/" + uuid.NewString() + "." + extensionFor(payload.MimeType)
	url := strings.TrimSuffix(h.cfg.GalleryBaseURL, "/") + "/" + storagePath

	photo, err := h.repo.InsertPhoto(r.Context(), storagePath, url, optional(payload.Caption), strings.TrimSpace(payload.UploadedBy))
	if err != nil {
		h.log.Error("photo insert failed", "path", storagePath, "err", err)
		writeError(w, http.StatusInternalServerError, "Error al guardar la foto. Inténtalo de nuevo.")
		return
	}

	if err := h.cache.InvalidatePhotos(r.Context()); err != nil {
		h.log.Warn("gallery cache invalidation failed", "err", err)
	}

	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "data": photo})
}

// LikePhoto handles POST /api/v1/gallery/{id}/like.
func (h *Handlers) LikePhoto(w http.ResponseWriter, r *http.Request) {
	h.adjustLikes(w, r, +1)
}

// UnlikePhoto handles POST /api/v1/gallery/{id}/unlike. Counts never drop
// below zero.
func (h *Handlers) UnlikePhoto(w http.ResponseWriter, r *http.Request) {
	h.adjustLikes(w, r, -1)
}

func (h *Handlers) adjustLikes(w http.ResponseWriter, r *http.Request, delta int) {
	id := chi.URLParam(r, "id")

	likes, found, err := h.repo.AdjustPhotoLikes(r.Context(), id, delta)
	if err != nil {
		h.log.Error("like update failed", "photo", id, "err", err)
		writeError(w, http.StatusInternalServerError, "Error al guardar el like.")
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "Foto no encontrada.")
		return
	}

	if err := h.cache.InvalidatePhotos(r.Context()); err != nil {
		h.log.Warn("gallery cache invalidation failed", "err", err)
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "new_likes": likes})
}

// extensionFor derives a file extension from a MIME type, defaulting to jpg.
func extensionFor(mimeType string) string {
	if _, sub, ok := strings.Cut(mimeType, "/"); ok && sub != "" {
		return sub
	}
	return "jpg"
}
