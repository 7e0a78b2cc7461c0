package api

import (
	"net/http"
	"strings"

	"github.com/albertobort/boda-api/internal/storage"
)

type rsvpPayload struct {
	Name        string `json:"name" validate:"required,min=2,max=120"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"phone" validate:"omitempty,max=30"`
	Attending   *bool  `json:"attending" validate:"required"`
	Allergies   string `json:"allergies" validate:"max=500"`
	SpecialMenu string `json:"special_menu" validate:"max=500"`
	Message     string `json:"message" validate:"max=2000"`
}

// SubmitRSVP handles POST /api/v1/rsvp.
func (h *Handlers) SubmitRSVP(w http.ResponseWriter, r *http.Request) {
	var payload rsvpPayload
	if err := decodeValid(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	in := storage.NewRSVP{
		Name:        strings.TrimSpace(payload.Name),
		Attending:   *payload.Attending,
		Email:       optional(payload.Email),
		Phone:       optional(payload.Phone),
		Allergies:   optional(payload.Allergies),
		SpecialMenu: optional(payload.SpecialMenu),
		Message:     optional(payload.Message),
	}

	id, err := h.repo.InsertRSVP(r.Context(), in)
	if err != nil {
		h.log.Error("rsvp insert failed", "name", in.Name, "err", err)
		writeError(w, http.StatusInternalServerError, "Error al guardar la confirmación")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "id": id})
}

// optional converts a trimmed form field to a nullable column value.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
