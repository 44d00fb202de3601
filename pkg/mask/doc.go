// Package mask implements a small interpreter for input masks: literal-and-placeholder
// pattern strings such as "00000-000", "(00) 0000-0000" or right-anchored
// currency patterns like "#.##0,00".
//
// A pattern is compiled once into an immutable Pattern and then applied to raw
// input on every edit. Applying a pattern walks its tokens, copying literals to
// the output and filling placeholder slots with matching raw runes.
//
// # Placeholders
//
//   - 0 – mandatory digit
//   - 9 – optional digit
//   - # – optional digit that repeats its group while input remains
//   - A – letter or digit
//   - S – letter
//   - U – letter, upper-cased on output
//   - L – letter, lower-cased on output
//   - \ – escapes the next rune so it is emitted as a literal
//
// Every other rune is a literal.
//
// # Directions
//
// Forward patterns are filled left to right and stop right after the last
// filled slot, which produces the familiar partial rendering while the user is
// typing:
//
//	p := mask.MustCompile("000.000.000-00", mask.Forward)
//	p.ApplyOrEmpty("1234") // "123.4"
//
// Reverse patterns are anchored to the end of the input, so numeric values grow
// leftwards from the decimal separator. Unfilled mandatory digit slots are
// zero-filled in this mode:
//
//	p, _ := mask.NewViewPattern(2, ",", ".")
//	p.ApplyOrEmpty("1234567") // "12.345,67"
//	p.ApplyOrEmpty("5")       // "0,05"
//
// # Round trip
//
// Format combines ApplyOrEmpty with the Trim convention used by every field:
// surrounding whitespace is removed, then a single trailing rune that no slot
// of the pattern accepts is dropped ("12345-" becomes "12345").
//
// # Error handling
//
// Compile is the only operation that fails; it returns an error wrapping
// ErrInvalidPattern. Applying a pattern never fails: mismatching input ends
// the walk and is reported through ApplyResult.Remaining and ApplyResult.Valid.
//
// # Concurrency
//
// Patterns are read-only after Compile and may be shared between goroutines.
package mask
