/*
Package byterange parses the Range header of an HTTP request
and resolves it against the length of the resource it addresses.

A ByteRange is either None, meaning the whole resource is served,
or an inclusive span [First, Last] satisfying 0 <= First <= Last < length.
Spans reaching past the end of a resource are rejected, never clamped.
*/
package byterange

import (
	"fmt"
	"strconv"
	"strings"
)

const unitPrefix = "bytes="

type kind uint8

const (
	kindNone kind = iota

	// kindParsed is a span read from a header, not yet checked against a length.
	// A negative last marks an open-ended span.
	kindParsed

	// kindSuffix selects the final first bytes of a resource.
	kindSuffix

	kindResolved
)

// A ByteRange is an immutable, possibly unresolved, byte span.
type ByteRange struct {
	kind  kind
	first int64
	last  int64
}

// None is the range selecting the whole resource.
var None = ByteRange{}

// New constructs the inclusive span [first, last],
// returning ErrSyntax if first is negative or last precedes first.
//
// The span is not resolved; call Resolve before using it.
func New(first, last int64) (ByteRange, error) {
	if first < 0 || last < first {
		return None, fmt.Errorf("%w: %d-%d", ErrSyntax, first, last)
	}

	return ByteRange{kind: kindParsed, first: first, last: last}, nil
}

// Parse reads the value of a Range header.
//
// Supported forms are "bytes=a-b", "bytes=a-" and the suffix form "bytes=-n".
// An empty header, a unit other than bytes, or a set of several ranges yields None:
// a server is free to ignore such requests and serve the whole resource.
// Any other malformed value returns ErrSyntax.
func Parse(header string) (ByteRange, error) {
	header = strings.TrimSpace(header)
	if header == "" || !strings.HasPrefix(header, unitPrefix) {
		return None, nil
	}

	spec := strings.TrimSpace(strings.TrimPrefix(header, unitPrefix))
	if strings.Contains(spec, ",") {
		return None, nil
	}

	dash := strings.IndexByte(spec, '-')
	if dash < 0 {
		return None, fmt.Errorf("%w: %q", ErrSyntax, header)
	}

	rawFirst, rawLast := strings.TrimSpace(spec[:dash]), strings.TrimSpace(spec[dash+1:])
	switch {
	case rawFirst == "" && rawLast == "":
		return None, fmt.Errorf("%w: %q", ErrSyntax, header)

	case rawFirst == "":
		n, err := parseOffset(rawLast)
		if err != nil {
			return None, fmt.Errorf("%w: %q", ErrSyntax, header)
		}
		return ByteRange{kind: kindSuffix, first: n, last: -1}, nil

	case rawLast == "":
		first, err := parseOffset(rawFirst)
		if err != nil {
			return None, fmt.Errorf("%w: %q", ErrSyntax, header)
		}
		return ByteRange{kind: kindParsed, first: first, last: -1}, nil

	default:
		first, err := parseOffset(rawFirst)
		if err != nil {
			return None, fmt.Errorf("%w: %q", ErrSyntax, header)
		}

		last, err := parseOffset(rawLast)
		if err != nil {
			return None, fmt.Errorf("%w: %q", ErrSyntax, header)
		}

		return New(first, last)
	}
}

// Resolve checks br against a resource of the given length.
//
// None resolves to None.
// An open-ended span ends at the last byte.
// A suffix span of n bytes selects the final n bytes.
// Any span starting or ending at or beyond length, or an empty suffix,
// returns ErrUnsatisfiable.
func (br ByteRange) Resolve(length int64) (ByteRange, error) {
	first, last := br.first, br.last
	switch br.kind {
	case kindNone:
		return br, nil

	case kindSuffix:
		if first == 0 || first > length {
			return None, fmt.Errorf("%w: final %d of %d", ErrUnsatisfiable, first, length)
		}
		first, last = length-first, length-1

	case kindParsed:
		if last < 0 {
			last = length - 1
		}
	}

	if first < 0 || first >= length || last >= length || first > last {
		return None, fmt.Errorf("%w: %d-%d of %d", ErrUnsatisfiable, br.first, br.last, length)
	}

	return ByteRange{kind: kindResolved, first: first, last: last}, nil
}

// IsNone reports whether br selects the whole resource.
func (br ByteRange) IsNone() bool { return br.kind == kindNone }

// IsResolved reports whether br is a span checked against a length by Resolve.
func (br ByteRange) IsResolved() bool { return br.kind == kindResolved }

// First returns the offset of the first byte of a resolved span.
func (br ByteRange) First() int64 { return br.first }

// Last returns the offset of the last byte of a resolved span.
func (br ByteRange) Last() int64 { return br.last }

// Len returns the number of bytes a resolved span selects.
func (br ByteRange) Len() int64 {
	if br.kind != kindResolved {
		return 0
	}
	return br.last - br.first + 1
}

// ContentRange formats the Content-Range header value for a resolved span of a resource of total bytes.
func (br ByteRange) ContentRange(total int64) string {
	return fmt.Sprintf("bytes %d-%d/%d", br.first, br.last, total)
}

// UnsatisfiedContentRange formats the Content-Range header value accompanying a 416.
func UnsatisfiedContentRange(total int64) string {
	return fmt.Sprintf("bytes */%d", total)
}

func parseOffset(s string) (int64, error) {
	if s == "" || s[0] == '+' || s[0] == '-' {
		return 0, ErrSyntax
	}
	return strconv.ParseInt(s, 10, 64)
}
