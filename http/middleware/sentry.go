package middleware

import (
	"fmt"
	"net/http"
	"time"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/xy-planning-network/folio"
	"github.com/xy-planning-network/folio/logger"
)

// ReportPanic recovers panics raised while handling a request,
// logging them and answering 500 Internal Server Error.
//
// Outside development, panics are first reported to Sentry using sentryhttp.
func ReportPanic(env folio.Environment, ls logger.Logger) Adapter {
	return func(handler http.Handler) http.Handler {
		if !env.IsDevelopment() {
			handler = sentryhttp.New(sentryhttp.Options{
				Repanic:         true,
				WaitForDelivery: true,
				Timeout:         2 * time.Second,
			}).Handle(handler)
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}

				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				if ls != nil {
					ls.Error("recovered from panic", &logger.LogContext{
						Error:   fmt.Errorf("%v", rec),
						Request: r,
					})
				}

				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}()

			handler.ServeHTTP(w, r)
		})
	}
}
