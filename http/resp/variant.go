package resp

import (
	"fmt"
	"net/http"

	"github.com/xy-planning-network/folio/http/byterange"
)

// payload is what a Response puts on the wire.
type payload struct {
	code   int
	header http.Header
	body   []byte
}

// variant produces the payload for one kind of Response.
// The set of variants is closed: only this package implements it.
type variant interface {
	payload(rr *Response, r *http.Request) (payload, error)
}

var (
	_ variant = contentVariant{}
	_ variant = entryVariant{}
	_ variant = notModifiedVariant{}
	_ variant = redirectVariant{}
	_ variant = unsatisfiableVariant{}
)

// contentVariant serves the whole content, gzipped when the request allows.
type contentVariant struct{}

func (contentVariant) payload(rr *Response, r *http.Request) (payload, error) {
	h := make(http.Header)
	if rr.mimeType != "" {
		h.Set("Content-Type", rr.mimeType)
	}
	rr.cacheHeaders(h, r)

	body := rr.content
	if rr.CanCompress(r) {
		z, err := gzipBytes(body)
		if err != nil {
			return payload{}, fmt.Errorf("%w: %s", ErrInternal, err)
		}

		body = z
		h.Set("Content-Encoding", "gzip")
	}

	return payload{code: rr.code, header: h, body: body}, nil
}

// entryVariant serves a resource from a book, whole or the resolved byte range.
type entryVariant struct{}

func (entryVariant) payload(rr *Response, r *http.Request) (payload, error) {
	if !rr.byteRange.IsResolved() {
		p, err := contentVariant{}.payload(rr, r)
		if err != nil {
			return payload{}, err
		}

		p.header.Set("Accept-Ranges", "bytes")
		return p, nil
	}

	h := make(http.Header)
	h.Set("Content-Type", rr.mimeType)
	h.Set("Accept-Ranges", "bytes")
	h.Set("Content-Range", rr.byteRange.ContentRange(int64(len(rr.content))))
	rr.cacheHeaders(h, r)

	return payload{
		code:   http.StatusPartialContent,
		header: h,
		body:   rr.content[rr.byteRange.First() : rr.byteRange.Last()+1],
	}, nil
}

// notModifiedVariant confirms the client's cached copy of fresh is current.
type notModifiedVariant struct {
	fresh *Response
}

func (v notModifiedVariant) payload(_ *Response, r *http.Request) (payload, error) {
	h := make(http.Header)
	v.fresh.cacheHeaders(h, r)

	return payload{code: http.StatusNotModified, header: h}, nil
}

// redirectVariant points the client elsewhere.
type redirectVariant struct {
	location string
}

func (v redirectVariant) payload(rr *Response, _ *http.Request) (payload, error) {
	h := make(http.Header)
	h.Set("Location", v.location)

	return payload{code: rr.code, header: h}, nil
}

// unsatisfiableVariant reports a Range header that cannot be served.
type unsatisfiableVariant struct {
	total int64
}

func (v unsatisfiableVariant) payload(rr *Response, _ *http.Request) (payload, error) {
	h := make(http.Header)
	h.Set("Content-Range", byterange.UnsatisfiedContentRange(v.total))

	return payload{code: rr.code, header: h}, nil
}
