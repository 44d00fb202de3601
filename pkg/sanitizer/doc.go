// Package sanitizer provides the small, stateless string transforms used to
// reduce raw user input to the clean value of a mask: keeping digits or
// alphanumerics and truncating to a fixed capacity.
//
// Transforms are plain func(string) string values that can be combined with
// Apply and Compose:
//
//	cleanCEP := sanitizer.Compose(sanitizer.Digits, sanitizer.Limit(8))
//	cleanCEP("12345-6789") // "12345678"
//
// None of the helpers returns an error and there is no global state, so they
// are safe for concurrent use.
package sanitizer
