package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// requestIDContextKey is the type for request id context keys
type requestIDContextKey string

// requestIDKey is the context key for storing the request id
const requestIDKey requestIDContextKey = "request_id"

// RequestIDHeader is the header the id is read from and echoed back on
const RequestIDHeader = "X-Request-ID"

// RequestID assigns each request a uuid (or propagates the caller's) and
// echoes it on the response for log correlation
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID retrieves the request id from the context.
// Returns an empty string if none is present.
func GetRequestID(ctx context.Context) string {
	id, ok := ctx.Value(requestIDKey).(string)
	if !ok {
		return ""
	}
	return id
}
