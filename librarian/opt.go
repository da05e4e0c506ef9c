package librarian

import (
	"net/http"

	"github.com/xy-planning-network/folio/http/template"
	"github.com/xy-planning-network/folio/logger"
)

// An OptFn configures a Librarian when constructing it.
type OptFn func(*Librarian)

// WithCatalog serves the books of c instead of those in Config.LibraryFile.
func WithCatalog(c Catalog) OptFn {
	return func(l *Librarian) {
		l.catalog = c
	}
}

// WithLogger sets the Logger the Librarian, and everything it wires together, logs with.
func WithLogger(ls logger.Logger) OptFn {
	return func(l *Librarian) {
		l.logger = ls
	}
}

// WithRegistry renders pages with reg instead of the embedded templates.
func WithRegistry(reg *template.Registry) OptFn {
	return func(l *Librarian) {
		l.registry = reg
	}
}

// WithServer serves with s instead of a server configured from Config.
// The Librarian sets the handler of s.
func WithServer(s *http.Server) OptFn {
	return func(l *Librarian) {
		l.srv = s
	}
}
