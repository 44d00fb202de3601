package fields

import "errors"

var (
	ErrNoMaskAvailable = errors.New("no mask available")
	ErrUnknownField    = errors.New("unknown field")
	ErrDuplicateField  = errors.New("field already registered")
	ErrInvalidLayout   = errors.New("invalid date layout")
	ErrInvalidTable    = errors.New("invalid mask table")
)
