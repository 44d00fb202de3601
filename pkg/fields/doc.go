// Package fields pairs mask patterns with the clean, format and validate steps
// of concrete input fields: Brazilian documents (CEP, CPF, CNPJ, IE, boleto,
// NF-e), phones, plates, cards, times, dates and locale-aware numbers.
//
// Every field follows the same round trip. Clean strips a raw keystroke value
// down to what the pattern consumes, Format renders a clean value for display,
// and formatting an already formatted value changes nothing:
//
//	f := fields.CEP()
//	display, clean := fields.Reformat(f, "12345678") // "12345-678", "12345678"
//
// Composite fields (CPFCNPJ, Phone, IE) pick a pattern per value. When no
// pattern applies the value is passed through unchanged.
//
// Fields are immutable and safe for concurrent use.
package fields
