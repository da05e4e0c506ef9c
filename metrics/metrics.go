/*
Package metrics collects prometheus metrics about the HTTP traffic a folio server handles.

Collectors register with their own registry rather than the global one,
so more than one [*Collector] can live in a process, as they do in tests.
*/
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "folio"

// A Collector records requests served and the responses sent for them.
type Collector struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	responseBytes   *prometheus.CounterVec
	rateLimited     prometheus.Counter
}

// New constructs a *Collector that also reports the go runtime and process.
func New() *Collector {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(reg)

	return &Collector{
		registry: reg,
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests handled",
		}, []string{"method", "route", "status"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		responseBytes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_response_bytes_total",
			Help:      "Total number of body bytes written in HTTP responses",
		}, []string{"route"}),
		rateLimited: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_rate_limited_total",
			Help:      "Total number of HTTP requests rejected for exceeding the rate limit",
		}),
	}
}

// Handler serves the collected metrics in the prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// ObserveRequest records a request to route answered with status after d,
// writing n bytes of body.
//
// route should be a path template, not the requested path,
// to keep the number of series bounded.
func (c *Collector) ObserveRequest(method, route string, status int, n int64, d time.Duration) {
	c.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.requestDuration.WithLabelValues(route).Observe(d.Seconds())
	c.responseBytes.WithLabelValues(route).Add(float64(n))
}

// RateLimited records a request rejected for exceeding the rate limit.
func (c *Collector) RateLimited() { c.rateLimited.Inc() }

// Registry exposes the registry the Collector's metrics live in.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }
