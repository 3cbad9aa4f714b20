package common

import (
	"encoding/json"
	"errors"
	"net/http"

	"family-site-go/internal/domain/auth"
	familydomain "family-site-go/internal/domain/family"
	recipesdomain "family-site-go/internal/domain/recipes"
	"family-site-go/internal/domain/validation"
	"family-site-go/pkg/logger"
)

const maxBodyBytes = 1 << 20

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorEnvelope{Error: errorBody{Code: code, Message: message}})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// decodeJSON reads a single JSON object. Unknown fields are ignored so older
// clients that post extra keys keep working.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(dst)
}

func WriteError(w http.ResponseWriter, status int, code, message string) {
	writeError(w, status, code, message)
}

func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	writeJSON(w, status, payload)
}

func DecodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	return decodeJSON(w, r, dst)
}

// WriteInvalidJSON reports a body that could not be decoded.
func WriteInvalidJSON(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, "body_too_large", "request body too large")
		return
	}
	writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
}

// WriteServiceError maps a domain error to the response envelope and logs it.
// Internal failures never leak their message to the client.
func WriteServiceError(w http.ResponseWriter, log logger.Logger, op string, err error, args ...any) {
	if verr, ok := validation.From(err); ok {
		log.BusinessError(op+": invalid request", err, args...)
		writeError(w, http.StatusBadRequest, "invalid_request", verr.Message)
		return
	}

	switch {
	case errors.Is(err, recipesdomain.ErrRecipeNotFound):
		log.BusinessError(op+": recipe not found", err, args...)
		writeError(w, http.StatusNotFound, "recipe_not_found", "Recipe not found")
	case errors.Is(err, familydomain.ErrItemNotFound):
		log.BusinessError(op+": entry not found", err, args...)
		writeError(w, http.StatusNotFound, "entry_not_found", "Entry not found")
	case errors.Is(err, auth.ErrInvalidCredentials):
		log.BusinessError(op+": invalid credentials", err, args...)
		writeError(w, http.StatusUnauthorized, "invalid_credentials", "Invalid credentials")
	case errors.Is(err, auth.ErrUnauthorized):
		log.BusinessError(op+": unauthorized", err, args...)
		writeError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
	case errors.Is(err, auth.ErrNotConfigured):
		log.Critical(op+": admin credentials not configured", args...)
		writeError(w, http.StatusInternalServerError, "auth_not_configured", "Admin credentials missing on server")
	default:
		log.InternalError(op+": failed", err, args...)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}
