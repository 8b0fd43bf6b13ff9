package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/MKhiriev/go-table-sync/internal/app"
	"github.com/MKhiriev/go-table-sync/internal/logger"
	"github.com/MKhiriev/go-table-sync/internal/utils"
)

// auth rejects requests whose "Authorization" header does not equal the
// configured value with HTTP 401. The header is opaque to the server: it
// is compared as a whole, in constant time.
//
// When no value is configured every request passes.
func (h *Handler) auth(next http.Handler) http.Handler {
	if h.authHeader == "" {
		return next
	}
	expected := []byte(h.authHeader)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Err(ErrEmptyAuthorizationHeader).Str("func", "*Handler.auth").Send()
			utils.WriteError(w, app.MsgUnauthorized, http.StatusUnauthorized)
			return
		}

		if subtle.ConstantTimeCompare([]byte(authHeader), expected) != 1 {
			log.Warn().Err(ErrInvalidAuthorizationHeader).Str("func", "*Handler.auth").Send()
			utils.WriteError(w, app.MsgUnauthorized, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
