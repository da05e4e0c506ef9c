package folio

import "errors"

var (
	ErrBadAny         = errors.New("bad argument")
	ErrBadConfig      = errors.New("bad config")
	ErrNotExist       = errors.New("not exist")
	ErrNotImplemented = errors.New("not implemented")
	ErrNotValid       = errors.New("invalid")
	ErrUnexpected     = errors.New("unexpected")
)
