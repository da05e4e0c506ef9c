package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/xy-planning-network/folio"
)

// RequestIDHeader carries the request id to and from a folio server.
const RequestIDHeader = "X-Request-Id"

// RequestID adds a uuid to the request context under folio.RequestIDKey
// and echoes it in the response.
//
// A uuid a proxy already assigned in RequestIDHeader is kept.
func RequestID() Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if _, err := uuid.Parse(id); err != nil {
				id = uuid.NewString()
			}

			w.Header().Set(RequestIDHeader, id)
			ctx := context.WithValue(r.Context(), folio.RequestIDKey, id)
			h.ServeHTTP(w, r.Clone(ctx))
		})
	}
}
