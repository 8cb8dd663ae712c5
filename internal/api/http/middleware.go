package http

import (
	"context"
	"net/http"
	"strings"

	"onboarding-backend/internal/security"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type contextKey string

const reviewerIDKey contextKey = "reviewer_id"

// AuthMiddleware validates the reviewer bearer token and stores the
// reviewer id in the request context for reviewed_by stamping.
func AuthMiddleware(tm security.TokenManager) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const prefix = "Bearer "
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, prefix) {
				writeError(w, http.StatusUnauthorized, "missing bearer token", nil)
				return
			}
			claims, err := tm.ValidateToken(strings.TrimPrefix(header, prefix))
			if err != nil {
				writeError(w, http.StatusUnauthorized, "invalid token", nil)
				return
			}
			ctx := context.WithValue(r.Context(), reviewerIDKey, claims.ReviewerID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ReviewerIDFromContext extracts the reviewer identity placed by
// AuthMiddleware.
func ReviewerIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(reviewerIDKey).(uuid.UUID)
	return id, ok
}
