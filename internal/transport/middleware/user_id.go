package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/K-svg-lab/palabra-sub002/pkg/ctxutil"
)

// UserIDHeader carries the learner's ID, set by the upstream gateway after it
// has authenticated the caller.
const UserIDHeader = "X-User-ID"

// UserID returns middleware that copies the learner's ID from UserIDHeader
// into the request context. Requests without the header pass through
// anonymously; services reject them where identity is required. A header
// that is not a UUID is rejected with 401.
func UserID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get(UserIDHeader))
			if raw == "" {
				next.ServeHTTP(w, r)
				return
			}

			id, err := uuid.Parse(raw)
			if err != nil || id == uuid.Nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"error": "invalid user id"}) //nolint:errcheck
				return
			}

			next.ServeHTTP(w, r.WithContext(ctxutil.WithUserID(r.Context(), id)))
		})
	}
}
