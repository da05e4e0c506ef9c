package resp

import (
	"strings"
	"time"

	"github.com/xy-planning-network/folio/http/template"
	"github.com/xy-planning-network/folio/logger"
)

// A ResponderOptFn mutates the provided *Responder in some way.
// A ResponderOptFn is used when constructing a new Responder.
type ResponderOptFn func(*Responder)

// WithBlockExternalLinks sets whether HTML responses have links leaving the server
// routed through a confirmation page.
func WithBlockExternalLinks(block bool) ResponderOptFn {
	return func(d *Responder) {
		d.blockExternalLinks = block
	}
}

// WithCacheMaxAge sets the max-age cacheable responses advertise.
//
// Non-positive durations are ignored.
func WithCacheMaxAge(age time.Duration) ResponderOptFn {
	return func(d *Responder) {
		if age > 0 {
			d.maxAge = age
		}
	}
}

// WithCompress sets whether responses are gzipped for clients accepting it.
func WithCompress(compress bool) ResponderOptFn {
	return func(d *Responder) {
		d.compress = compress
	}
}

// WithLibraryButton sets whether the taskbar links back to the library.
func WithLibraryButton(button bool) ResponderOptFn {
	return func(d *Responder) {
		d.libraryButton = button
	}
}

// WithLogger sets the provided implementation of Logger in order to log all statements through it.
//
// If no Logger is provided through this option, a default logger.FolioLogger will be configured.
func WithLogger(log logger.Logger) ResponderOptFn {
	return func(d *Responder) {
		d.logger = log
	}
}

// WithRenderer sets the template.Renderer used by Template, the taskbar and error pages.
func WithRenderer(r template.Renderer) ResponderOptFn {
	return func(d *Responder) {
		d.renderer = r
	}
}

// WithRoot sets the path prefix the server is mounted under, e.g., "/folio".
// Trailing slashes are dropped, so "/" mounts the server at the root.
func WithRoot(root string) ResponderOptFn {
	return func(d *Responder) {
		d.root = strings.TrimRight(root, "/")
	}
}

// WithServerID overrides the identifier of this server process embedded into every ETag.
//
// Empty ids are ignored.
func WithServerID(id string) ResponderOptFn {
	return func(d *Responder) {
		if id != "" {
			d.serverID = id
		}
	}
}

// WithTaskbar sets whether HTML from a book gets the taskbar.
func WithTaskbar(taskbar bool) ResponderOptFn {
	return func(d *Responder) {
		d.taskbar = taskbar
	}
}

// WithVerbose sets whether internal error messages are shown to clients.
func WithVerbose(verbose bool) ResponderOptFn {
	return func(d *Responder) {
		d.verbose = verbose
	}
}
