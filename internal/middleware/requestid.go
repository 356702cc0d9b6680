package middleware

import (
	"net/http"

	"github.com/Rynhardt5/forest-and-flow/internal/reqctx"

	"github.com/google/uuid"
)

// RequestID tags every request with an ID for log correlation, honouring an
// inbound X-Request-ID from the fronting proxy when present.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(reqctx.WithRequestID(r.Context(), id)))
	})
}
