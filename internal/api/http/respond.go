package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"pousada-backend/internal/domain"
	"pousada-backend/internal/logger"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// respondError maps the domain error taxonomy onto HTTP statuses:
// validation → 422 with the field map, missing identity → 401, missing
// record → 404, store failure → 502.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		respondJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "validation_failed", Fields: verr.Fields})
		return
	}
	if errors.Is(err, domain.ErrAuthenticationRequired) {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication_required"})
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		respondJSON(w, http.StatusNotFound, errorResponse{Error: "not_found"})
		return
	}
	var perr *domain.PersistenceError
	if errors.As(err, &perr) {
		logger.Error("Persistence failure", "op", perr.Op, "error", perr.Err, "path", r.URL.Path)
		respondJSON(w, http.StatusBadGateway, errorResponse{Error: "persistence_failed"})
		return
	}
	logger.Error("Unhandled error", "error", err, "path", r.URL.Path)
	respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal_error"})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid_json"})
		return false
	}
	return true
}
