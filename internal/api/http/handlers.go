package http

import (
	"encoding/json"
	"net/http"

	"onboarding-backend/internal/domain"
	"onboarding-backend/internal/service"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// Handler exposes the registration approval workflow over REST.
type Handler struct {
	intake service.IntakeService
	review service.ReviewService
}

func NewHandler(intake service.IntakeService, review service.ReviewService) *Handler {
	return &Handler{intake: intake, review: review}
}

func (h *Handler) SubmitRegistration(w http.ResponseWriter, r *http.Request) {
	var in service.SubmitRegistrationInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	id, err := h.intake.Submit(r.Context(), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"id": id})
}

func (h *Handler) ListRegistrationRequests(w http.ResponseWriter, r *http.Request) {
	statusParam := r.URL.Query().Get("status")
	if statusParam == "" {
		statusParam = "pending"
	}
	status, ok := domain.ParseRequestStatus(statusParam)
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown status: "+statusParam, nil)
		return
	}

	reqs, err := h.review.List(r.Context(), status)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if reqs == nil {
		reqs = []domain.RegistrationRequest{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"requests": reqs})
}

func (h *Handler) GetRegistrationRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := requestID(w, r)
	if !ok {
		return
	}
	req, err := h.review.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *Handler) ApproveRegistrationRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := requestID(w, r)
	if !ok {
		return
	}
	reviewerID, ok := ReviewerIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing reviewer identity", nil)
		return
	}

	records, err := h.review.Approve(r.Context(), reviewerID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *Handler) RejectRegistrationRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := requestID(w, r)
	if !ok {
		return
	}
	reviewerID, ok := ReviewerIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing reviewer identity", nil)
		return
	}

	if err := h.review.Reject(r.Context(), reviewerID, id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"id": id, "status": domain.RequestStatusRejected})
}

func (h *Handler) RepairRegistrationRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := requestID(w, r)
	if !ok {
		return
	}
	records, err := h.review.Repair(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// requestID parses the path id. A malformed id gets the same 404 as an
// unknown one, matching the conflated not-found contract.
func requestID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusNotFound, "registration request not found or already processed", nil)
		return uuid.Nil, false
	}
	return id, true
}
