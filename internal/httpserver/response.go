package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	authdomain "fieldcms/backend/internal/domain/auth"
	contentdomain "fieldcms/backend/internal/domain/content"
	pagedomain "fieldcms/backend/internal/domain/page"
	imageusecase "fieldcms/backend/internal/usecase/image"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeUnauthorized is the single body for every authentication failure so
// callers cannot distinguish a missing header from a forged or expired token.
func writeUnauthorized(w http.ResponseWriter) {
	writeError(w, http.StatusUnauthorized, "Unauthorized")
}

func writeMethodNotAllowed(w http.ResponseWriter, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

// writeDomainError maps a domain failure onto a fixed HTTP status. All
// authentication failures collapse into 401 with a generic body; hashing and
// signing faults are internal errors whose detail is never echoed back.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, authdomain.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, authdomain.ErrTokenMalformed),
		errors.Is(err, authdomain.ErrTokenSignatureInvalid),
		errors.Is(err, authdomain.ErrTokenExpired):
		writeUnauthorized(w)
	case errors.Is(err, authdomain.ErrAgentExists):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, authdomain.ErrAgentNotFound),
		errors.Is(err, pagedomain.ErrNotFound),
		errors.Is(err, contentdomain.ErrNotFound),
		errors.Is(err, imageusecase.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, authdomain.ErrHashingFailure):
		writeError(w, http.StatusInternalServerError, "Internal server error")
	default:
		writeError(w, http.StatusBadRequest, err.Error())
	}
}
