package resp

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/xy-planning-network/folio"
	"github.com/xy-planning-network/folio/http/byterange"
)

var (
	ErrInternal            = errors.New("internal error")
	ErrInvalid             = errors.New("invalid")
	ErrNotFound            = errors.New("not found")
	ErrNoSuchBook          = fmt.Errorf("%w: no such book", ErrNotFound)
	ErrNotModified         = errors.New("not modified")
	ErrRangeNotSatisfiable = errors.New("range not satisfiable")
	ErrRender              = errors.New("cannot render")
	ErrWrite               = errors.New("cannot write response")
)

// A RangeError reports a Range header that cannot be served
// from a resource of Length bytes.
type RangeError struct {
	Length int64
	Err    error
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrRangeNotSatisfiable, byterange.UnsatisfiedContentRange(e.Length), e.Err)
}

// Unwrap returns ErrRangeNotSatisfiable and the underlying byterange error.
func (e *RangeError) Unwrap() []error { return []error{ErrRangeNotSatisfiable, e.Err} }

// StatusFor maps err to the status code of the response reporting it.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrRangeNotSatisfiable):
		return http.StatusRequestedRangeNotSatisfiable
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, folio.ErrNotValid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
