/*
Package req parses the query parameters of an HTTP request into a pointer to a struct.

The struct leverages struct tags for two tasks.
First, "schema" tags match query parameters to fields.
Second, "validate" tags set the rules the values must meet.

	type searchParams struct {
		Pattern string `schema:"pattern"`
		Start   int    `schema:"start" validate:"gte=0"`
	}

Values that cannot be converted or fail validation return ValidationErrors,
which wrap folio.ErrNotValid.
A struct the decoder cannot fill in is a programming error,
returning folio.ErrBadAny, folio.ErrNotImplemented or folio.ErrUnexpected.
*/
package req
