package logger_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/folio"
	"github.com/xy-planning-network/folio/logger"
)

func TestLogContextMarshalText(t *testing.T) {
	tcs := []struct {
		name     string
		lc       logger.LogContext
		expected string
	}{
		{"Zero-Value", logger.LogContext{}, `{}`},
		{"Data", logger.LogContext{Data: map[string]any{"test": "data"}}, `{"data":{"test":"data"}}`},
		{"Error", logger.LogContext{Error: errors.New("test")}, `{"error":"test"}`},
		{"Book", logger.LogContext{Book: "wiki"}, `{"book":"wiki"}`},
		{"Caller-Elided", logger.LogContext{Caller: "x.go:1"}, `{}`},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			b, err := tc.lc.MarshalText()
			require.Nil(t, err)
			require.Equal(t, tc.expected, string(b))
			require.Equal(t, tc.expected, tc.lc.String())
		})
	}

	t.Run("Request", func(t *testing.T) {
		// Arrange
		r := httptest.NewRequest(http.MethodGet, "https://example.com/content/wiki/A", nil)
		r.Header.Set("Range", "bytes=0-4")
		r.Header.Set("Cookie", "secret")
		r = r.WithContext(context.WithValue(r.Context(), folio.RequestIDKey, "req-1"))
		lc := logger.LogContext{Request: r}

		// Act
		b, err := lc.MarshalText()

		// Assert
		require.Nil(t, err)
		m := make(map[string]map[string]any)
		require.Nil(t, json.Unmarshal(b, &m))
		require.Equal(t, map[string]any{
			"method": http.MethodGet,
			"url":    "https://example.com/content/wiki/A",
			"id":     "req-1",
			"Range":  "bytes=0-4",
		}, m["request"])
	})

	t.Run("Unmarshalable", func(t *testing.T) {
		lc := logger.LogContext{Data: map[string]any{"fn": func() {}}}
		_, err := lc.MarshalText()
		require.NotNil(t, err)
		require.Contains(t, lc.String(), "error")
	})
}

func TestCurrentCaller(t *testing.T) {
	var caller string
	func() { caller = logger.CurrentCaller() }()
	require.Regexp(t, `logger/context_test\.go:\d+`, caller)
}
