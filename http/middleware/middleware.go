package middleware

import (
	"net/http"

	"github.com/gorilla/mux"
)

// An Adapter allows chaining middlewares together.
type Adapter func(http.Handler) http.Handler

// Chain glues the set of adapters to the handler.
func Chain(handler http.Handler, adapters ...Adapter) http.Handler {
	// reverse, so the first adapter is the outermost
	for i := len(adapters) - 1; i >= 0; i-- {
		handler = adapters[i](handler)
	}

	return handler
}

// NoopAdapter passes the request along untouched.
func NoopAdapter(h http.Handler) http.Handler { return h }

const unmatchedRoute = "unmatched"

// routeOf names the route r matched by its path template.
func routeOf(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tmpl, err := route.GetPathTemplate(); err == nil {
			return tmpl
		}
	}

	return unmatchedRoute
}
