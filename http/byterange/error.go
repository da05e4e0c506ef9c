package byterange

import "errors"

var (
	ErrSyntax        = errors.New("malformed byte range")
	ErrUnsatisfiable = errors.New("range not satisfiable")
)
