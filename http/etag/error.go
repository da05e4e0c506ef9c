package etag

import "errors"

var ErrInvalid = errors.New("invalid etag")
