package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wonny/scout/backend/internal/contracts"
)

// ErrorResponse is the body of every non-2xx answer
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondErr maps pipeline errors to HTTP status codes
// ErrDataUnavailable → 503, ValidationError → 400, otherwise 500
func respondErr(w http.ResponseWriter, err error) {
	var ve *contracts.ValidationError
	switch {
	case errors.As(err, &ve):
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: ve.Message, Field: ve.Field})
	case errors.Is(err, contracts.ErrDataUnavailable):
		respondError(w, http.StatusServiceUnavailable, "Dataset unavailable")
	default:
		respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}
