package maskapi

import "errors"

var (
	ErrInvalidJSON          = errors.New("invalid JSON body")
	ErrMissingContentType   = errors.New("missing content type")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrRateLimited          = errors.New("too many requests")
)
