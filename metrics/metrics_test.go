package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/folio/metrics"
)

func TestObserveRequest(t *testing.T) {
	// Arrange
	c := metrics.New()

	// Act
	c.ObserveRequest(http.MethodGet, "/content/{book}/{path:.*}", http.StatusOK, 512, 20*time.Millisecond)
	c.ObserveRequest(http.MethodGet, "/content/{book}/{path:.*}", http.StatusOK, 256, 10*time.Millisecond)
	c.ObserveRequest(http.MethodGet, "/search", http.StatusNotFound, 64, time.Millisecond)
	c.RateLimited()

	// Assert
	expected := `
# HELP folio_http_requests_total Total number of HTTP requests handled
# TYPE folio_http_requests_total counter
folio_http_requests_total{method="GET",route="/content/{book}/{path:.*}",status="200"} 2
folio_http_requests_total{method="GET",route="/search",status="404"} 1
# HELP folio_http_response_bytes_total Total number of body bytes written in HTTP responses
# TYPE folio_http_response_bytes_total counter
folio_http_response_bytes_total{route="/content/{book}/{path:.*}"} 768
folio_http_response_bytes_total{route="/search"} 64
# HELP folio_http_rate_limited_total Total number of HTTP requests rejected for exceeding the rate limit
# TYPE folio_http_rate_limited_total counter
folio_http_rate_limited_total 1
`
	err := testutil.GatherAndCompare(
		c.Registry(),
		strings.NewReader(expected),
		"folio_http_requests_total",
		"folio_http_response_bytes_total",
		"folio_http_rate_limited_total",
	)
	require.Nil(t, err)

	n, err := testutil.GatherAndCount(c.Registry(), "folio_http_request_duration_seconds")
	require.Nil(t, err)
	require.Equal(t, 2, n)
}

func TestHandler(t *testing.T) {
	// Arrange
	c := metrics.New()
	c.ObserveRequest(http.MethodHead, "/random", http.StatusFound, 0, time.Millisecond)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/metrics", nil)

	// Act
	c.Handler().ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `folio_http_requests_total{method="HEAD",route="/random",status="302"} 1`)
	require.Contains(t, w.Body.String(), "go_goroutines")
}
