package middleware_test

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/folio"
	"github.com/xy-planning-network/folio/http/middleware"
	"github.com/xy-planning-network/folio/logger"
)

func TestLogRequest(t *testing.T) {
	// Arrange + Act
	actual := middleware.LogRequest(nil)

	// Assert
	require.Equal(t, fmt.Sprintf("%p", middleware.NoopAdapter), fmt.Sprintf("%p", actual))

	tcs := []struct {
		name     string
		method   string
		target   string
		ip       string
		status   int
		expected []string
	}{
		{
			name:     "Zero-Value",
			method:   http.MethodGet,
			target:   "/",
			status:   http.StatusOK,
			expected: []string{`'GET /'`, `"status":200`, `"bytes":4`, `"requestID":"test-id"`},
		},
		{
			name:     "With-IP",
			method:   http.MethodHead,
			target:   "/content/wiki/A/Paris.html",
			ip:       "8.8.8.8",
			status:   http.StatusNotFound,
			expected: []string{`'8.8.8.8 HEAD /content/wiki/A/Paris.html'`, `"status":404`},
		},
		{
			name:     "With-Query-Params",
			method:   http.MethodGet,
			target:   "/search?pattern=paris&start=25",
			status:   http.StatusOK,
			expected: []string{`'GET /search?pattern=paris&start=25'`, `"userAgent":"folio/test"`},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			b := new(bytes.Buffer)
			l := logger.New(logger.WithLogger(log.New(b, "", 0)))

			w := httptest.NewRecorder()
			r := httptest.NewRequest(tc.method, tc.target, nil)
			r.Header.Set("User-Agent", "folio/test")
			r = r.Clone(context.WithValue(r.Context(), folio.RequestIDKey, "test-id"))
			if tc.ip != "" {
				r = r.Clone(context.WithValue(r.Context(), folio.IpAddrKey, tc.ip))
			}

			// Act
			middleware.LogRequest(l)(http.HandlerFunc(func(wx http.ResponseWriter, rx *http.Request) {
				wx.WriteHeader(tc.status)
				fmt.Fprint(wx, "test")
			})).ServeHTTP(w, r)

			// Assert
			require.Equal(t, tc.status, w.Code)
			for _, s := range tc.expected {
				require.Contains(t, b.String(), s)
			}
		})
	}
}
