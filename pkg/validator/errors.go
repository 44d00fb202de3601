package validator

import "errors"

var (
	// ErrValidationFailed matches any ValidationErrors via errors.Is.
	ErrValidationFailed = errors.New("validation failed")
)
