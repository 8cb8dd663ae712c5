package http

import (
	"net/http"

	"onboarding-backend/internal/security"

	"github.com/gorilla/mux"
)

// NewRouter wires the public intake surface and the authenticated review
// surface. Submission and logo upload are open; everything touching review
// state requires a reviewer token.
func NewRouter(h *Handler, logos *LogoUploadHandler, tm security.TokenManager) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/registration-requests", h.SubmitRegistration).Methods(http.MethodPost)
	api.HandleFunc("/uploads/logo", logos.HandleLogoUpload).Methods(http.MethodPost)
	api.HandleFunc("/uploads/logo/{key}", logos.HandleLogoDownload).Methods(http.MethodGet)

	review := api.PathPrefix("/registration-requests").Subrouter()
	review.Use(AuthMiddleware(tm))
	review.HandleFunc("", h.ListRegistrationRequests).Methods(http.MethodGet)
	review.HandleFunc("/{id}", h.GetRegistrationRequest).Methods(http.MethodGet)
	review.HandleFunc("/{id}/approve", h.ApproveRegistrationRequest).Methods(http.MethodPost)
	review.HandleFunc("/{id}/reject", h.RejectRegistrationRequest).Methods(http.MethodPost)
	review.HandleFunc("/{id}/repair", h.RepairRegistrationRequest).Methods(http.MethodPost)

	return r
}
