/*
Package etag encodes and decodes the entity tags folio emits for cache validation.

An ETag pairs an opaque resource identifier with a set of Option bits.
Two tags are equal when both the identifier and the option bits are equal,
regardless of the quoting or weak-validator prefix a client used when echoing them back.

The wire form is:

	"<id>/<options>"

where options is a string of single-letter flags in a fixed order:

	c	Cacheable
	z	Compressed
*/
package etag
