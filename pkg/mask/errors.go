package mask

import "errors"

var (
	// ErrInvalidPattern is returned by Compile for malformed pattern strings.
	ErrInvalidPattern = errors.New("invalid mask pattern")
)
