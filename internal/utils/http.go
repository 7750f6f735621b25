package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

var (
	// ErrInvalidAuthorizationHeader is returned by ParseBearerToken when the
	// header value is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
	// ErrEmptyToken is returned when the bearer prefix is present but the
	// token itself is empty.
	ErrEmptyToken = errors.New("empty bearer token")
)

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(header string) (string, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", ErrInvalidAuthorizationHeader
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	if token == "" {
		return "", ErrEmptyToken
	}

	return token, nil
}

// WriteJSON serializes v into the response body with the given status code.
// Serialization failures degrade to a plain 500.
func WriteJSON(w http.ResponseWriter, v any, status int) {
	body, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
