package middleware

import (
	"net/http"

	"github.com/felixge/httpsnoop"
	"github.com/xy-planning-network/folio/metrics"
)

// Metrics records every request with c, labeled by the path template of the route it matched.
//
// If c is nil, NoopAdapter returns and this middleware does nothing.
func Metrics(c *metrics.Collector) Adapter {
	if c == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m := httpsnoop.CaptureMetrics(h, w, r)
			c.ObserveRequest(r.Method, routeOf(r), m.Code, m.Written, m.Duration)
		})
	}
}
