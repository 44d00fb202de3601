package sanitizer

import "unicode/utf8"

// Digits keeps ASCII digits only. It is the clean step of every numeric mask.
func Digits(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}

// Alphanumeric keeps ASCII letters and digits, e.g. for vehicle plates.
func Alphanumeric(s string) string {
	return nonAlphanumericRegex.ReplaceAllString(s, "")
}

// Truncate cuts s to at most n runes. A negative n leaves s untouched.
func Truncate(s string, n int) string {
	if n < 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// Limit returns a transform truncating its input to n runes, suitable for Compose.
func Limit(n int) func(string) string {
	return func(s string) string {
		return Truncate(s, n)
	}
}
