package resp

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/xy-planning-network/folio"
	"github.com/xy-planning-network/folio/http/byterange"
	"github.com/xy-planning-network/folio/http/template"
	"github.com/xy-planning-network/folio/logger"
)

const (
	responderFrames = 1

	defaultMaxAge = 24 * time.Hour
	genericErrMsg = "An internal server error occurred. We are sorry about that :/"

	htmlMime = "text/html; charset=utf-8"
	textMime = "text/plain; charset=utf-8"

	errorTmpl   = "error.html"
	taskbarTmpl = "taskbar.html"
)

// Responder maintains the server-wide settings every response starts from.
//
// Most oftentimes, setting up a single instance of a Responder suffices for an application.
// A Responder is read-only after NewResponder returns
// and may be shared by any number of goroutines.
//
// When handling a specific HTTP request, calling code adjusts a response through Fn functions
// passed to a factory, e.g., Entry or Template.
type Responder struct {
	logger   logger.Logger
	renderer template.Renderer

	// Path prefix the server is mounted under, without a trailing slash
	root string

	// Identifies this server process in every ETag
	serverID string

	// Max-age of cacheable responses
	maxAge time.Duration

	blockExternalLinks bool
	compress           bool
	libraryButton      bool
	taskbar            bool
	verbose            bool
}

// NewResponder constructs a *Responder using the ResponderOptFns passed in.
//
// Absent WithRenderer, the Responder renders the templates embedded in package template.
// Absent WithServerID, a fresh ULID identifies the server.
func NewResponder(opts ...ResponderOptFn) *Responder {
	d := &Responder{
		maxAge:   defaultMaxAge,
		serverID: ulid.Make().String(),
	}
	for _, opt := range opts {
		opt(d)
	}

	if d.logger == nil {
		d.logger = logger.New()
	}

	if l, ok := d.logger.(logger.SkipLogger); ok {
		d.logger = l.AddSkip(responderFrames)
	}

	if d.renderer == nil {
		reg, err := template.NewRegistry()
		if err != nil {
			d.logger.Error("cannot load embedded templates", &logger.LogContext{Error: err})
		} else {
			d.renderer = reg
		}
	}

	return d
}

// Root returns the path prefix the server is mounted under.
func (d *Responder) Root() string { return d.root }

// Build constructs a raw HTML response seeded from the Responder's settings.
func (d *Responder) Build(opts ...Fn) (*Response, error) {
	rr := d.base()
	if err := d.apply(rr, opts); err != nil {
		return nil, err
	}

	if err := d.decorate(rr); err != nil {
		return nil, err
	}

	return rr, nil
}

// Content constructs a response serving content verbatim as mimeType.
// HTML content is decorated as the Responder's settings and opts call for.
func (d *Responder) Content(content []byte, mimeType string, opts ...Fn) (*Response, error) {
	return d.Build(append([]Fn{contentOf(content), Mime(mimeType)}, opts...)...)
}

// Template constructs an HTML response from the template called name rendered with data.
//
// Template returns ErrRender if rendering fails; no part of the rendered output is kept.
// The failure is left for Err to log.
func (d *Responder) Template(name string, data any, opts ...Fn) (*Response, error) {
	if d.renderer == nil {
		return nil, fmt.Errorf("%w: %w: no renderer", ErrRender, folio.ErrBadConfig)
	}

	b, err := d.renderer.Render(name, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRender, err)
	}

	return d.Content(b, htmlMime, opts...)
}

// Entry constructs a cacheable response serving a resource from a book.
//
// A Range header on r is checked against the length of the decorated content.
// A range that cannot be served returns a *RangeError, which wraps ErrRangeNotSatisfiable.
// A satisfiable range gets a 206 serving exactly that span, never compressed.
func (d *Responder) Entry(r *http.Request, content []byte, mimeType string, opts ...Fn) (*Response, error) {
	rr, err := d.Build(append([]Fn{contentOf(content), Mime(mimeType), Cacheable(true)}, opts...)...)
	if err != nil {
		return nil, err
	}
	rr.variant = entryVariant{}

	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		return rr, nil
	}

	total := int64(len(rr.content))
	br, err := byterange.Parse(r.Header.Get("Range"))
	if err != nil {
		return nil, &RangeError{Length: total, Err: err}
	}

	if rr.byteRange, err = br.Resolve(total); err != nil {
		return nil, &RangeError{Length: total, Err: err}
	}

	return rr, nil
}

// Redirect constructs a response sending the client to url.
//
// The default status code is 302.
// If Code set the status code to something other than standard redirect 3xx statuses,
// Redirect overwrites the status code with an appropriate 3xx status code.
//
// Redirects carry no ETag and are never compressed or decorated.
func (d *Responder) Redirect(url string, opts ...Fn) (*Response, error) {
	if url == "" {
		return nil, fmt.Errorf("%w: cannot redirect, no url", ErrInvalid)
	}

	rr := d.base()
	rr.code = 0
	rr.mimeType = ""
	if err := d.apply(rr, opts); err != nil {
		return nil, err
	}

	switch {
	case rr.code >= http.StatusMultipleChoices && rr.code <= http.StatusPermanentRedirect:
		// already a redirect
	case rr.code >= http.StatusBadRequest && rr.code < http.StatusInternalServerError:
		rr.code = http.StatusSeeOther
	case rr.code >= http.StatusInternalServerError:
		rr.code = http.StatusTemporaryRedirect
	default:
		rr.code = http.StatusFound
	}

	rr.settings = settings{}
	rr.variant = redirectVariant{location: url}

	return rr, nil
}

// Build304 constructs a 304 Not Modified response standing in for fresh.
//
// Build304 returns ErrNotModified unless a tag in the If-None-Match header of r
// decodes to the tag fresh carries in reply to r.
func (d *Responder) Build304(r *http.Request, fresh *Response) (*Response, error) {
	tag := fresh.ETag(r)
	if !tag.MatchAny(r.Header.Get("If-None-Match")) {
		return nil, ErrNotModified
	}

	rr := d.base()
	rr.code = http.StatusNotModified
	rr.mimeType = ""
	rr.bookName = fresh.bookName
	rr.variant = notModifiedVariant{fresh: fresh}

	return rr, nil
}

// Build400 constructs a 400 Bad Request response explaining why the request is not valid.
func (d *Responder) Build400(msg string) *Response {
	return d.errorPage(http.StatusBadRequest, "Invalid request", msg)
}

// Build404 constructs a 404 Not Found response for r.
// When bookName is set, the message reports there is no such book;
// otherwise, it reports the URL requested.
func (d *Responder) Build404(r *http.Request, bookName string) *Response {
	msg := fmt.Sprintf("The requested URL %q was not found on this server.", r.URL.Path)
	if bookName != "" {
		msg = fmt.Sprintf("No such book: %s", bookName)
	}

	rr := d.errorPage(http.StatusNotFound, "Content not found", msg)
	rr.bookName = bookName

	return rr
}

// Build416 constructs a 416 Range Not Satisfiable response for a resource of total bytes.
func (d *Responder) Build416(total int64) *Response {
	rr := d.base()
	rr.mode = modeError
	rr.code = http.StatusRequestedRangeNotSatisfiable
	rr.mimeType = ""
	rr.settings = settings{}
	rr.variant = unsatisfiableVariant{total: total}

	return rr
}

// Build500 constructs a 500 Internal Server Error response, logging msg.
//
// Clients see msg only if the Responder is verbose.
func (d *Responder) Build500(r *http.Request, msg string) *Response {
	d.logger.Error(msg, &logger.LogContext{Request: r})

	shown := genericErrMsg
	if d.verbose {
		shown = msg
	}

	return d.errorPage(http.StatusInternalServerError, "Internal Server Error", shown)
}

// Err sends the error response matching err.
//
// Use when no other response can be formed.
func (d *Responder) Err(w http.ResponseWriter, r *http.Request, err error) {
	var (
		rr       *Response
		rangeErr *RangeError
	)

	switch {
	case errors.As(err, &rangeErr):
		rr = d.Build416(rangeErr.Length)
	case errors.Is(err, ErrRangeNotSatisfiable):
		rr = d.Build416(0)
	case errors.Is(err, ErrNoSuchBook):
		book, _ := r.Context().Value(folio.BookKey).(string)
		rr = d.Build404(r, book)
	case errors.Is(err, ErrNotFound):
		rr = d.Build404(r, "")
	case errors.Is(err, folio.ErrNotValid):
		rr = d.Build400(err.Error())
	default:
		msg := genericErrMsg
		if err != nil {
			msg = err.Error()
		}
		rr = d.Build500(r, msg)
	}

	_ = rr.Send(w, r)
}

// apply applies opts to rr, stopping at the first failure.
func (d *Responder) apply(rr *Response, opts []Fn) error {
	for _, opt := range opts {
		if err := opt(*d, rr); err != nil {
			return err
		}
	}

	return nil
}

// base seeds a raw HTML response from the Responder's settings.
func (d *Responder) base() *Response {
	return &Response{
		mode:     modeRawContent,
		code:     http.StatusOK,
		mimeType: htmlMime,
		settings: settings{
			blockExternalLinks: d.blockExternalLinks,
			compress:           d.compress,
			libraryButton:      d.libraryButton,
			taskbar:            d.taskbar,
			verbose:            d.verbose,
		},
		logger:   d.logger,
		maxAge:   d.maxAge,
		root:     d.root,
		serverID: d.serverID,
		variant:  contentVariant{},
	}
}

// decorate adds the taskbar and blocks external links in rr, as its settings allow.
func (d *Responder) decorate(rr *Response) error {
	if !rr.ContentDecorationAllowed() {
		return nil
	}

	if rr.settings.taskbar && rr.bookName != "" {
		if d.renderer == nil {
			return fmt.Errorf("%w: %w: no renderer for taskbar", ErrRender, folio.ErrBadConfig)
		}

		markup, err := d.renderer.Render(taskbarTmpl, struct {
			Root          string
			BookName      string
			BookTitle     string
			LibraryButton bool
		}{rr.root, rr.bookName, rr.bookTitle, rr.settings.libraryButton})
		if err != nil {
			return fmt.Errorf("%w: %s", ErrRender, err)
		}

		rr.content = introduceTaskbar(rr.content, markup)
	}

	if rr.settings.blockExternalLinks {
		content, err := injectExternalLinksBlocker(rr.content, rr.root)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInternal, err)
		}

		rr.content = content
	}

	return nil
}

// errorPage constructs an error response rendered through the error template,
// falling back to plain text.
func (d *Responder) errorPage(code int, title, msg string) *Response {
	rr := d.base()
	rr.mode = modeError
	rr.code = code
	rr.settings.taskbar = false
	rr.settings.blockExternalLinks = false
	rr.settings.cacheable = false

	if d.renderer != nil {
		b, err := d.renderer.Render(errorTmpl, struct {
			Title   string
			Heading string
			Message string
		}{title, title, msg})
		if err == nil {
			rr.content = b
			return rr
		}

		d.logger.Error("cannot render error page", &logger.LogContext{Error: err})
	}

	rr.mimeType = textMime
	rr.content = []byte(msg)

	return rr
}

// contentOf sets the content of a response being built.
func contentOf(content []byte) Fn {
	return func(_ Responder, r *Response) error {
		r.content = content
		return nil
	}
}
