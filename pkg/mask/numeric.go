package mask

import "strings"

// ViewPattern builds the display pattern for grouped decimal numbers:
// an unbounded leading group, the group separator, three integer digits and,
// when decimals > 0, the decimal separator followed by decimals digit slots.
//
//	ViewPattern(2, ",", ".") // "#.##0,00"
//	ViewPattern(0, ",", "")  // "###0"
func ViewPattern(decimals int, decimalSep, groupSep string) string {
	var b strings.Builder
	b.WriteString("#")
	b.WriteString(Escape(groupSep))
	b.WriteString("##0")
	writeFraction(&b, decimals, decimalSep)
	return b.String()
}

// ModelPattern builds the machine-parseable counterpart of ViewPattern: no
// group separator and "." as the decimal separator.
func ModelPattern(decimals int) string {
	var b strings.Builder
	b.WriteString("###0")
	writeFraction(&b, decimals, ".")
	return b.String()
}

// NewViewPattern compiles ViewPattern in Reverse direction.
func NewViewPattern(decimals int, decimalSep, groupSep string) (*Pattern, error) {
	return Compile(ViewPattern(decimals, decimalSep, groupSep), Reverse)
}

// NewModelPattern compiles ModelPattern in Reverse direction.
func NewModelPattern(decimals int) (*Pattern, error) {
	return Compile(ModelPattern(decimals), Reverse)
}

// Escape quotes every placeholder glyph in s so the whole string compiles to literals.
func Escape(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if _, ok := placeholders[r]; ok || r == escapeRune {
			b.WriteRune(escapeRune)
		}
		b.WriteRune(r)
	}
	return b.String()
}

func writeFraction(b *strings.Builder, decimals int, sep string) {
	if decimals <= 0 {
		return
	}
	b.WriteString(Escape(sep))
	b.WriteString(strings.Repeat("0", decimals))
}
