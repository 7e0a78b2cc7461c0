package api

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
)

// AdminAuth returns middleware that validates the X-Admin-Password header.
// Uses crypto/subtle.ConstantTimeCompare to prevent timing attacks.
func AdminAuth(password string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get("X-Admin-Password")

			if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(password)) != 1 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
