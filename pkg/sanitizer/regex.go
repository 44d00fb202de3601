package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	nonDigitRegex        = regexp.MustCompile(`\D`)
	nonAlphanumericRegex = regexp.MustCompile(`[^a-zA-Z0-9]`)
)
