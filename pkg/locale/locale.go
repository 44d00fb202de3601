// Package locale resolves the separators, currency symbol and date layout that
// numeric and date masks need for a language tag.
//
// Only a handful of locales are known; anything else falls back to en-US.
package locale

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Format is the locale data consumed by mask fields.
type Format struct {
	Tag            language.Tag
	DecimalSep     string
	GroupSep       string
	CurrencySymbol string
	// DateLayout uses DD, MM and YYYY placeholders, e.g. "DD/MM/YYYY".
	DateLayout string
}

const isoDateLayout = "YYYY-MM-DD"

// supported[0] is the fallback.
var supported = []Format{
	{Tag: language.AmericanEnglish, DecimalSep: ".", GroupSep: ",", DateLayout: isoDateLayout},
	{Tag: language.BrazilianPortuguese, DecimalSep: ",", GroupSep: ".", DateLayout: "DD/MM/YYYY"},
	{Tag: language.EuropeanPortuguese, DecimalSep: ",", GroupSep: " ", DateLayout: isoDateLayout},
	{Tag: language.BritishEnglish, DecimalSep: ".", GroupSep: ",", DateLayout: isoDateLayout},
	{Tag: language.German, DecimalSep: ",", GroupSep: ".", DateLayout: isoDateLayout},
	{Tag: language.French, DecimalSep: ",", GroupSep: " ", DateLayout: isoDateLayout},
	{Tag: language.Spanish, DecimalSep: ",", GroupSep: ".", DateLayout: isoDateLayout},
}

var matcher = language.NewMatcher(tags())

func tags() []language.Tag {
	out := make([]language.Tag, len(supported))
	for i, f := range supported {
		out[i] = f.Tag
	}
	return out
}

// Default returns the en-US format.
func Default() Format {
	return withSymbol(supported[0])
}

// Resolve matches tag (e.g. "pt-BR", "pt_br", "de") against the supported
// locales. Malformed or unmatched tags resolve to Default.
func Resolve(tag string) Format {
	t, err := language.Parse(tag)
	if err != nil {
		return Default()
	}
	_, idx, conf := matcher.Match(t)
	if conf == language.No {
		return Default()
	}
	return withSymbol(supported[idx])
}

// withSymbol sets the narrow symbol of the region's currency as the locale
// itself renders it. Tags without a known currency use USD.
func withSymbol(f Format) Format {
	unit, conf := currency.FromTag(f.Tag)
	if conf == language.No {
		unit = currency.USD
	}
	f.CurrencySymbol = message.NewPrinter(f.Tag).Sprint(currency.NarrowSymbol(unit))
	return f
}
