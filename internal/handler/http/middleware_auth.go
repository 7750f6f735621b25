package http

import (
	"context"
	"crypto/subtle"
	"net/http"

	"github.com/okulikov/go-save-sync/internal/logger"
	"github.com/okulikov/go-save-sync/internal/utils"
)

// auth enforces the static bearer credential. It extracts the token from the
// "Authorization" header, compares it against the configured one, and on
// success stores the owner identity in the request context under
// [utils.OwnerCtxKey] before delegating to the next handler.
//
// Requests are rejected with HTTP 401 Unauthorized when the header is
// absent, cannot be parsed as a bearer token, or carries an unknown token.
// Rejections are logged via the request-scoped logger.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		token, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		if subtle.ConstantTimeCompare([]byte(token), []byte(h.token)) != 1 {
			log.Err(ErrUnknownToken).Send()
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		// The credential doubles as the owner identity: each token names
		// exactly one save slot.
		ctx := context.WithValue(r.Context(), utils.OwnerCtxKey, token)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
