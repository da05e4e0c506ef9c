package librarian

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/xy-planning-network/folio"
	"github.com/xy-planning-network/folio/catalog"
	"github.com/xy-planning-network/folio/http/middleware"
	"github.com/xy-planning-network/folio/http/req"
	"github.com/xy-planning-network/folio/http/resp"
	"github.com/xy-planning-network/folio/http/router"
	"github.com/xy-planning-network/folio/http/template"
	"github.com/xy-planning-network/folio/logger"
	"github.com/xy-planning-network/folio/metrics"
	"github.com/xy-planning-network/folio/render"
	"golang.org/x/time/rate"
)

const shutdownTimeout = 5 * time.Second

// A Catalog is everything a Librarian needs to know about the books it serves.
type Catalog interface {
	catalog.Library
	catalog.NameMapper
	catalog.Archive
	catalog.Searcher
}

// A Librarian serves the books of a Catalog over HTTP.
type Librarian struct {
	catalog   Catalog
	cfg       Config
	collector *metrics.Collector
	listing   *render.ListingRenderer
	logger    logger.Logger
	parser    *req.Parser
	registry  *template.Registry
	responder *resp.Responder
	router    *router.Router
	search    []render.OptFn
	srv       *http.Server
}

// New constructs a *Librarian from cfg and the options passed in.
//
// Absent WithCatalog, the books described in cfg.LibraryFile are loaded.
func New(cfg Config, opts ...OptFn) (*Librarian, error) {
	if err := cfg.Valid(); err != nil {
		return nil, err
	}

	l := &Librarian{cfg: cfg, collector: metrics.New(), parser: req.NewParser()}
	for _, opt := range opts {
		opt(l)
	}

	if l.logger == nil {
		fl := logger.New(
			logger.WithEnv(cfg.Env.String()),
			logger.WithLevel(logger.NewLogLevel(cfg.LogLevel)),
		)

		l.logger = fl
		if cfg.SentryDSN != "" {
			l.logger = logger.NewSentryLogger(fl, cfg.SentryDSN)
		}
	}

	if l.catalog == nil {
		mem, err := catalog.Load(cfg.LibraryFile)
		if err != nil {
			return nil, err
		}
		l.catalog = mem
	}

	if l.registry == nil {
		reg, err := template.NewRegistry()
		if err != nil {
			return nil, fmt.Errorf("%w: %s", folio.ErrBadConfig, err)
		}
		l.registry = reg
	}

	l.responder = resp.NewResponder(
		resp.WithBlockExternalLinks(cfg.BlockExternalLinks),
		resp.WithCompress(cfg.Compress),
		resp.WithLibraryButton(cfg.LibraryButton),
		resp.WithLogger(l.logger),
		resp.WithRenderer(l.registry),
		resp.WithRoot(cfg.RootPath),
		resp.WithTaskbar(cfg.Taskbar),
		resp.WithVerbose(cfg.Verbose),
	)

	l.search = []render.OptFn{
		render.WithLibrary(l.catalog),
		render.WithLogger(l.logger),
		render.WithPageLength(cfg.SearchPageLength),
		render.WithProtocolPrefix(cfg.RootPath + "/content/"),
		render.WithSearchProtocolPrefix(cfg.RootPath + "/search?"),
	}
	l.listing = render.NewListingRenderer(
		l.registry,
		l.catalog,
		l.catalog,
		render.WithLogger(l.logger),
		render.WithRoot(cfg.RootPath),
	)

	l.router = l.routes()

	if l.srv == nil {
		l.srv = &http.Server{
			Addr:         cfg.Addr(),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		}
	}
	l.srv.Handler = l.router

	return l, nil
}

// routes registers every handler behind the middlewares every request goes through.
func (l *Librarian) routes() *router.Router {
	rt := router.New(l.cfg.Env, l.cfg.RootPath, l.logger)
	rt.OnEveryRequest(
		middleware.ForceHTTPS(l.cfg.Env),
		middleware.RequestID(),
		middleware.InjectIPAddress(),
		middleware.LogRequest(l.logger),
		middleware.Metrics(l.collector),
		middleware.RateLimit(middleware.NewVisitors(rate.Limit(l.cfg.RateLimit), l.cfg.RateBurst), l.collector),
		middleware.CORS(l.cfg.CORSOrigin),
		middleware.InjectUserLang(),
	)

	rt.HandleRoutes([]router.Route{
		{Path: "/", Method: http.MethodGet, Handler: l.handleHome},
		{Path: "/catalog/v2/illustration/{bookID}/", Method: http.MethodGet, Handler: l.handleIllustration},
		{Path: "/catch/external", Method: http.MethodGet, Handler: l.handleExternal},
		{Path: "/content/{book}", Method: http.MethodGet, Handler: l.handleBook},
		{Path: "/content/{book}/{path:.*}", Method: http.MethodGet, Handler: l.handleContent},
		{Path: "/metrics", Method: http.MethodGet, Handler: l.collector.Handler().ServeHTTP},
		{Path: "/nojs", Method: http.MethodGet, Handler: l.handleListing},
		{Path: "/nojs/download/{book}", Method: http.MethodGet, Handler: l.handleDownload},
		{Path: "/random", Method: http.MethodGet, Handler: l.handleRandom},
		{Path: "/search", Method: http.MethodGet, Handler: l.handleSearch},
	})
	rt.HandleNotFound(l.handleNotFound)

	return rt
}

// Handler is what the Librarian serves requests with.
func (l *Librarian) Handler() http.Handler { return l.router }

// Serve begins the web server.
//
// These, and (*Librarian).Shutdown, stop Serve:
//
// - os.Interrupt
// - syscall.SIGHUP
// - syscall.SIGQUIT
// - syscall.SIGTERM
func (l *Librarian) Serve(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGHUP, syscall.SIGQUIT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		l.logger.Info(fmt.Sprintf("serving the library at %s%s", l.srv.Addr, l.cfg.RootPath), nil)
		if err := l.srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("could not listen: %w", err)
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			l.logger.Error(err.Error(), &logger.LogContext{Error: err})
			return err
		}
		return nil
	case <-ctx.Done():
		l.logger.Info("received shutdown signal", nil)
	}

	return l.Shutdown()
}

// Shutdown shuts the web server down, waiting for requests in flight to be answered.
func (l *Librarian) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	l.logger.Info("shutting down web server", nil)
	if err := l.srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("could not shutdown: %w", err)
	}

	l.logger.Info("web server shutdown successfully", nil)
	return nil
}
