package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/xy-planning-network/folio"
	"github.com/xy-planning-network/folio/http/middleware"
	"github.com/xy-planning-network/folio/logger"
)

// A Route maps a path and HTTP method to an [http.HandlerFunc].
// Additional [middleware.Adapter] can be called when a server handles
// a request matching the Route.
type Route struct {
	Path        string
	Method      string
	Handler     http.HandlerFunc
	Middlewares []middleware.Adapter
}

// Router routes requests for books, searches and the catalog to their handlers.
type Router struct {
	env           folio.Environment
	everyReqStack []middleware.Adapter
	logger        logger.Logger
	mux           *mux.Router
	r             *mux.Router
}

// New constructs a [*Router] for the given environment,
// serving every route under root, e.g., "/library".
//
// Panics raised by handlers are logged with ls.
func New(env folio.Environment, root string, ls logger.Logger) *Router {
	m := mux.NewRouter()
	r := m
	if root != "" && root != "/" {
		r = m.PathPrefix(root).Subrouter()
	}

	return &Router{env: env, logger: ls, mux: m, r: r}
}

// Handle applies the [Route] to the [*Router].
func (r *Router) Handle(route Route) {
	r.HandleRoutes([]Route{route})
}

// HandleNotFound sets the provided [http.HandlerFunc] as the default function
// for when no other registered Route is matched.
func (r *Router) HandleNotFound(handler http.HandlerFunc) {
	r.mux.NotFoundHandler = middleware.Chain(
		middleware.ReportPanic(r.env, r.logger)(handler),
		r.everyReqStack...,
	)
}

// HandleRoutes registers the set of Routes on the Router
// and includes all the [middleware.Adapter] on each Route.
// Any [middleware.Adapter] already assigned to a Route is appended to middlewares,
// so are called after the default set.
func (r *Router) HandleRoutes(routes []Route, middlewares ...middleware.Adapter) {
	for _, route := range routes {
		mws := append([]middleware.Adapter{}, r.everyReqStack...)
		mws = append(mws, middlewares...)
		mws = append(mws, route.Middlewares...)
		handler := middleware.Chain(middleware.ReportPanic(r.env, r.logger)(route.Handler), mws...)

		methods := []string{route.Method}
		if route.Method == http.MethodGet {
			methods = append(methods, http.MethodHead)
		}

		r.r.Handle(route.Path, handler).Methods(methods...)
	}
}

// OnEveryRequest appends the middlewares to the existing stack
// that the [*Router] will apply to every request.
//
// Only routes registered afterwards go through them.
func (r *Router) OnEveryRequest(middlewares ...middleware.Adapter) {
	r.everyReqStack = append(r.everyReqStack, middlewares...)
}

// ServeHTTP responds to an HTTP request.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}
