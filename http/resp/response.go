package resp

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/xy-planning-network/folio/http/byterange"
	"github.com/xy-planning-network/folio/http/etag"
	"github.com/xy-planning-network/folio/logger"
)

// A Fn is a functional option that configures a Response while a Responder builds it.
type Fn func(Responder, *Response) error

type mode uint8

const (
	modeRawContent mode = iota
	modeError
)

type settings struct {
	blockExternalLinks bool
	cacheable          bool
	compress           bool
	libraryButton      bool
	taskbar            bool
	verbose            bool
}

// A Response is built by a Responder for a single request and sent once.
//
// A Response is immutable after it is built:
// every setting is applied through a Fn before the factory returns.
type Response struct {
	mode     mode
	code     int
	mimeType string
	content  []byte
	settings settings

	bookName  string
	bookTitle string
	byteRange byterange.ByteRange

	logger   logger.Logger
	maxAge   time.Duration
	root     string
	serverID string

	variant variant
}

// Book names the book the content comes from and the title the taskbar shows for it.
func Book(name, title string) Fn {
	return func(_ Responder, r *Response) error {
		r.bookName = name
		r.bookTitle = title
		if title == "" {
			r.bookTitle = name
		}
		return nil
	}
}

// BlockExternalLinks overrides whether links leaving the server are routed through a confirmation page.
func BlockExternalLinks(block bool) Fn {
	return func(_ Responder, r *Response) error {
		r.settings.blockExternalLinks = block
		return nil
	}
}

// Cacheable sets whether the response carries an ETag clients may revalidate.
func Cacheable(cacheable bool) Fn {
	return func(_ Responder, r *Response) error {
		r.settings.cacheable = cacheable
		return nil
	}
}

// Code sets the response status code.
func Code(c int) Fn {
	return func(_ Responder, r *Response) error {
		if c < 100 || c > 599 {
			return fmt.Errorf("%w: status code %d", ErrInvalid, c)
		}

		r.code = c
		return nil
	}
}

// Compress overrides whether the response is gzipped for clients accepting it.
func Compress(compress bool) Fn {
	return func(_ Responder, r *Response) error {
		r.settings.compress = compress
		return nil
	}
}

// Mime sets the Content-Type of the response.
func Mime(mimeType string) Fn {
	return func(_ Responder, r *Response) error {
		if mimeType == "" {
			return fmt.Errorf("%w: empty mimetype", ErrInvalid)
		}

		r.mimeType = mimeType
		return nil
	}
}

// Taskbar overrides whether HTML from a book gets the taskbar.
func Taskbar(taskbar bool) Fn {
	return func(_ Responder, r *Response) error {
		r.settings.taskbar = taskbar
		return nil
	}
}

// Body returns the content of the response, decorated but never compressed.
// Callers must not modify it.
func (rr *Response) Body() []byte { return rr.content }

// ByteRange returns the resolved span an Entry response serves, or byterange.None.
func (rr *Response) ByteRange() byterange.ByteRange { return rr.byteRange }

// IsError reports whether rr reports an error condition.
func (rr *Response) IsError() bool { return rr.mode == modeError }

// MimeType returns the Content-Type of the response.
func (rr *Response) MimeType() string { return rr.mimeType }

// StatusCode returns the status code Send writes.
func (rr *Response) StatusCode() int {
	if rr.byteRange.IsResolved() {
		return http.StatusPartialContent
	}
	return rr.code
}

// CanCompress reports whether rr is gzipped when sent in reply to r.
//
// Compression requires a compressible mimetype, no byte range,
// compression to be switched on, and r to accept gzip.
func (rr *Response) CanCompress(r *http.Request) bool {
	return rr.compressible() && acceptsGzip(r.Header.Get("Accept-Encoding"))
}

// ContentDecorationAllowed reports whether rr is HTML content that gets a taskbar
// or external link blocking.
func (rr *Response) ContentDecorationAllowed() bool {
	return rr.mode == modeRawContent &&
		isHTML(rr.mimeType) &&
		(rr.settings.taskbar || rr.settings.blockExternalLinks)
}

// ETag computes the tag rr carries when sent in reply to r.
//
// Responses that are not cacheable carry the empty tag.
// The gzipped variant of a response carries a tag distinct from the identity variant.
func (rr *Response) ETag(r *http.Request) etag.ETag {
	if !rr.settings.cacheable || rr.mode != modeRawContent {
		return etag.ETag{}
	}

	tag := etag.New(rr.serverID+"-"+strconv.FormatUint(xxhash.Sum64(rr.content), 16), etag.Cacheable)
	if rr.CanCompress(r) {
		tag = tag.With(etag.Compressed)
	}

	return tag
}

// Send writes rr to w in reply to r.
//
// HEAD requests get every header GET would but no body.
// A failure writing the body aborts the send and returns ErrWrite; nothing is retried.
func (rr *Response) Send(w http.ResponseWriter, r *http.Request) error {
	p, err := rr.variant.payload(rr, r)
	if err != nil {
		rr.logger.Error(err.Error(), &logger.LogContext{Book: rr.bookName, Error: err, Request: r})
		http.Error(w, genericErrMsg, http.StatusInternalServerError)
		return err
	}

	h := w.Header()
	for k, vs := range p.header {
		h[k] = vs
	}

	if p.code != http.StatusNotModified {
		h.Set("Content-Length", strconv.Itoa(len(p.body)))
	}

	w.WriteHeader(p.code)
	if r.Method == http.MethodHead || len(p.body) == 0 {
		return nil
	}

	if _, err := w.Write(p.body); err != nil {
		err = fmt.Errorf("%w: %s", ErrWrite, err)
		rr.logger.Warn(err.Error(), &logger.LogContext{Book: rr.bookName, Error: err, Request: r})
		return err
	}

	return nil
}

// cacheHeaders sets the validation headers for rr sent in reply to r.
func (rr *Response) cacheHeaders(h http.Header, r *http.Request) {
	if tag := rr.ETag(r); !tag.Empty() {
		h.Set("ETag", tag.String())
		h.Set("Cache-Control", "public, max-age="+strconv.Itoa(int(rr.maxAge.Seconds())))
	} else {
		h.Set("Cache-Control", "no-cache")
	}

	if rr.compressible() {
		h.Set("Vary", "Accept-Encoding")
	}
}

// compressible reports whether rr is gzipped for clients accepting gzip.
func (rr *Response) compressible() bool {
	return rr.settings.compress && rr.byteRange.IsNone() && isCompressible(rr.mimeType)
}
