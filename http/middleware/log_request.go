package middleware

import (
	"net/http"
	"strings"

	"github.com/felixge/httpsnoop"
	"github.com/xy-planning-network/folio"
	"github.com/xy-planning-network/folio/logger"
)

// LogRequest logs the request's originating IP address, method and requested URL,
// after it is handled, with the status and size of the response,
// using the enclosed implementation of logger.Logger.
//
// If logger.Logger is nil, NoopAdapter returns and this middleware does nothing.
func LogRequest(ls logger.Logger) Adapter {
	if ls == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m := httpsnoop.CaptureMetrics(h, w, r)

			strs := []string{r.Method, r.URL.RequestURI()}
			if ip, ok := r.Context().Value(folio.IpAddrKey).(string); ok {
				strs = append([]string{ip}, strs...)
			}

			data := map[string]any{
				"bytes":    m.Written,
				"duration": m.Duration.String(),
				"status":   m.Code,
			}
			if id := folio.RequestIDFromContext(r.Context()); id != "" {
				data["requestID"] = id
			}
			if ua := r.UserAgent(); ua != "" {
				data["userAgent"] = ua
			}

			ls.Info(strings.Join(strs, " "), &logger.LogContext{Caller: "http/middleware", Data: data})
		})
	}
}
