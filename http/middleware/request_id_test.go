package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/folio"
	"github.com/xy-planning-network/folio/http/middleware"
)

func TestRequestID(t *testing.T) {
	assigned := uuid.NewString()

	tcs := []struct {
		name   string
		header string
		assert func(t *testing.T, id string)
	}{
		{
			name: "Generated",
			assert: func(t *testing.T, id string) {
				_, err := uuid.Parse(id)
				require.Nil(t, err)
			},
		},
		{
			name:   "Not-A-UUID",
			header: "<script>",
			assert: func(t *testing.T, id string) {
				require.NotEqual(t, "<script>", id)
				_, err := uuid.Parse(id)
				require.Nil(t, err)
			},
		},
		{
			name:   "Proxy-Assigned",
			header: assigned,
			assert: func(t *testing.T, id string) {
				require.Equal(t, assigned, id)
			},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
			if tc.header != "" {
				r.Header.Set(middleware.RequestIDHeader, tc.header)
			}

			var actual string

			// Act
			middleware.RequestID()(http.HandlerFunc(func(wx http.ResponseWriter, rx *http.Request) {
				actual = folio.RequestIDFromContext(rx.Context())
			})).ServeHTTP(w, r)

			// Assert
			tc.assert(t, actual)
			require.Equal(t, actual, w.Header().Get(middleware.RequestIDHeader))
		})
	}
}
