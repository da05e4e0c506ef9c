package render

import (
	"strings"

	"github.com/xy-planning-network/folio/catalog"
	"github.com/xy-planning-network/folio/logger"
)

const (
	defaultPageLength           = 25
	defaultProtocolPrefix       = "zim://"
	defaultSearchProtocolPrefix = "search://?"
)

type config struct {
	library              catalog.Library
	logger               logger.Logger
	pageLength           int
	protocolPrefix       string
	root                 string
	searchProtocolPrefix string
}

func newConfig(opts []OptFn) config {
	cfg := config{
		pageLength:           defaultPageLength,
		protocolPrefix:       defaultProtocolPrefix,
		searchProtocolPrefix: defaultSearchProtocolPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.logger == nil {
		cfg.logger = logger.New()
	}

	return cfg
}

// An OptFn configures a SearchRenderer or ListingRenderer when constructing it.
type OptFn func(*config)

// WithLibrary sets the Library search results look their book's title up in.
func WithLibrary(lib catalog.Library) OptFn {
	return func(c *config) {
		c.library = lib
	}
}

// WithLogger sets the Logger reporting rows that could not be completed.
func WithLogger(l logger.Logger) OptFn {
	return func(c *config) {
		c.logger = l
	}
}

// WithPageLength sets the number of search results per page.
// Non-positive lengths are ignored.
func WithPageLength(n int) OptFn {
	return func(c *config) {
		if n > 0 {
			c.pageLength = n
		}
	}
}

// WithProtocolPrefix sets what links to a search result start with.
func WithProtocolPrefix(prefix string) OptFn {
	return func(c *config) {
		c.protocolPrefix = prefix
	}
}

// WithRoot sets the path prefix the server is mounted under.
func WithRoot(root string) OptFn {
	return func(c *config) {
		c.root = strings.TrimRight(root, "/")
	}
}

// WithSearchProtocolPrefix sets what links to another page of search results start with.
func WithSearchProtocolPrefix(prefix string) OptFn {
	return func(c *config) {
		c.searchProtocolPrefix = prefix
	}
}
