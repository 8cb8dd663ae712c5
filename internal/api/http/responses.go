package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"onboarding-backend/internal/domain"
	"onboarding-backend/internal/logger"
	"onboarding-backend/internal/service"
)

type errorResponse struct {
	Error   string               `json:"error"`
	Details []service.FieldError `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func writeError(w http.ResponseWriter, status int, msg string, details []service.FieldError) {
	writeJSON(w, status, errorResponse{Error: msg, Details: details})
}

// writeServiceError maps domain errors onto the HTTP contract. Race losers
// and unknown ids share the same 404 so neither is distinguishable.
func writeServiceError(w http.ResponseWriter, err error) {
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		writeError(w, http.StatusBadRequest, "invalid submission", ve.Fields)
		return
	}

	var me *domain.MaterializationError
	if errors.As(err, &me) {
		writeError(w, http.StatusInternalServerError, "approval could not be completed; the request will be repaired", nil)
		return
	}

	switch {
	case errors.Is(err, domain.ErrDuplicateAdminEmail):
		writeError(w, http.StatusBadRequest, "admin email already used by an active registration request", nil)
	case errors.Is(err, domain.ErrNotFoundOrProcessed), errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "registration request not found or already processed", nil)
	case errors.Is(err, domain.ErrNotRepairable):
		writeError(w, http.StatusConflict, "registration request is not in a repairable state", nil)
	default:
		logger.Error("Unhandled service error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error", nil)
	}
}
