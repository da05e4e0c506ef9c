package template

import "errors"

var (
	ErrNoFiles  = errors.New("no files provided")
	ErrNotFound = errors.New("no such template")
	ErrParse    = errors.New("cannot parse template")
	ErrRender   = errors.New("cannot render template")
)
