package etag

import (
	"fmt"
	"strings"
)

// An Option is a bit describing the variant of a resource an ETag validates.
type Option uint8

const (
	// Cacheable marks a resource clients may cache and revalidate.
	Cacheable Option = 1 << iota

	// Compressed marks the content-encoded variant of a resource,
	// so its tag never validates the identity-encoded variant.
	Compressed

	// bits above Compressed are reserved for further negotiation axes
	optionCount = iota
)

// optionLetters is indexed by bit position.
const optionLetters = "cz"

// An ETag is an immutable cache validator.
// The zero value is the empty tag, which validates nothing.
type ETag struct {
	id   string
	opts Option
}

// New constructs an ETag for the resource id with the given options set.
func New(id string, opts ...Option) ETag {
	e := ETag{id: id}
	for _, o := range opts {
		e.opts |= o
	}

	return e
}

// ID returns the resource identifier.
func (e ETag) ID() string { return e.id }

// Empty reports whether e carries no resource identifier.
func (e ETag) Empty() bool { return e.id == "" }

// Has reports whether every bit in o is set on e.
func (e ETag) Has(o Option) bool { return o != 0 && e.opts&o == o }

// With returns a copy of e with o set.
func (e ETag) With(o Option) ETag {
	e.opts |= o
	return e
}

// Without returns a copy of e with o cleared.
func (e ETag) Without(o Option) ETag {
	e.opts &^= o
	return e
}

// Equal reports whether e and other identify the same resource variant.
func (e ETag) Equal(other ETag) bool {
	return !e.Empty() && e.id == other.id && e.opts == other.opts
}

// String serializes e in its quoted wire form, or returns the empty string for the empty tag.
func (e ETag) String() string {
	if e.Empty() {
		return ""
	}

	var b strings.Builder
	b.WriteByte('"')
	b.WriteString(e.id)
	b.WriteByte('/')
	for i := 0; i < optionCount; i++ {
		if e.opts&(1<<i) != 0 {
			b.WriteByte(optionLetters[i])
		}
	}
	b.WriteByte('"')

	return b.String()
}

// Parse decodes a single tag as it appears in an ETag, If-None-Match or If-Match header.
// Surrounding whitespace, a weak "W/" prefix and the double quotes are stripped.
//
// Parse returns ErrInvalid if the tag is not in the wire form String produces.
func Parse(raw string) (ETag, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "W/")
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimSuffix(s, `"`)

	sep := strings.LastIndexByte(s, '/')
	if sep <= 0 {
		return ETag{}, fmt.Errorf("%w: %q has no resource id", ErrInvalid, raw)
	}

	e := ETag{id: s[:sep]}
	if strings.ContainsAny(e.id, "\" ") {
		return ETag{}, fmt.Errorf("%w: %q has an illegal resource id", ErrInvalid, raw)
	}

	for _, r := range s[sep+1:] {
		i := strings.IndexRune(optionLetters, r)
		if i < 0 {
			return ETag{}, fmt.Errorf("%w: unknown option %q in %q", ErrInvalid, r, raw)
		}
		e.opts |= 1 << i
	}

	return e, nil
}

// MatchAny reports whether any of the comma separated tags in header,
// e.g., the value of an If-None-Match header,
// decodes to a tag equal to e.
// The wildcard "*" matches any non-empty tag.
//
// Tags that fail to decode are skipped.
func (e ETag) MatchAny(header string) bool {
	if e.Empty() {
		return false
	}

	for _, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if part == "*" {
			return true
		}

		candidate, err := Parse(part)
		if err != nil {
			continue
		}

		if e.Equal(candidate) {
			return true
		}
	}

	return false
}
