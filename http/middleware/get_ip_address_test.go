package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/folio"
	"github.com/xy-planning-network/folio/http/middleware"
)

func TestGetIPAddress(t *testing.T) {
	tcs := []struct {
		name       string
		header     string
		value      string
		remoteAddr string
		expected   string
	}{
		{name: "Remote-Addr", remoteAddr: "203.0.113.7:51234", expected: "203.0.113.7"},
		{name: "Bad-Remote-Addr", remoteAddr: "pipe", expected: "0.0.0.0"},
		{name: "Only-Private-IP", header: "X-Forwarded-For", value: "192.168.0.0", remoteAddr: "pipe", expected: "0.0.0.0"},
		{name: "Private-Range-End", header: "X-Forwarded-For", value: "10.255.255.255", remoteAddr: "pipe", expected: "0.0.0.0"},
		{name: "Only-Public-IP", header: "X-Forwarded-For", value: "1.1.1.1", remoteAddr: "10.0.0.2:80", expected: "1.1.1.1"},
		{name: "Get-Before-Proxy", header: "X-Real-Ip", value: "10.0.0.1,1.1.1.1", expected: "1.1.1.1"},
		{name: "Get-First-Public", header: "X-Real-Ip", value: "10.255.255.255,8.8.8.8,1.1.1.1,172.16.0.0", expected: "1.1.1.1"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
			if tc.header != "" {
				r.Header.Set(tc.header, tc.value)
			}
			if tc.remoteAddr != "" {
				r.RemoteAddr = tc.remoteAddr
			}

			// Act
			actual := middleware.GetIPAddress(r)

			// Assert
			require.Equal(t, tc.expected, actual)
		})
	}
}

func TestInjectIPAddress(t *testing.T) {
	// Arrange
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
	r.Header.Set("X-Forwarded-For", "8.8.8.8")

	var actual string

	// Act
	middleware.InjectIPAddress()(http.HandlerFunc(func(wx http.ResponseWriter, rx *http.Request) {
		actual, _ = rx.Context().Value(folio.IpAddrKey).(string)
	})).ServeHTTP(w, r)

	// Assert
	require.Equal(t, "8.8.8.8", actual)
}
