package render

import "errors"

var (
	ErrCatalog = errors.New("cannot read catalog")
	ErrRender  = errors.New("cannot render")
)
