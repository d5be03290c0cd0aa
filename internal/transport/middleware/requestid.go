package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/medikacare/terapis-management/pkg/logger"
)

const traceHeader = "X-Trace-ID"

// RequestID reuses a caller-supplied trace id or mints one, tags the
// request-scoped logger with it and echoes it back in the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		w.Header().Set(traceHeader, traceID)

		ctx := logger.With(r.Context(), "traceID", traceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
