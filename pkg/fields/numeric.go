package fields

import (
	"math"
	"strconv"
	"strings"

	"github.com/dmitrymomot/inputmask/pkg/locale"
	"github.com/dmitrymomot/inputmask/pkg/sanitizer"
)

const defaultDecimals = 2

type numericConfig struct {
	decimals   int
	decimalSep string
	groupSep   string
	symbol     string
	hideSpace  bool
	negative   bool
	valueMode  bool
	min, max   string
}

func defaultNumericConfig() numericConfig {
	f := locale.Default()
	return numericConfig{
		decimals:   defaultDecimals,
		decimalSep: f.DecimalSep,
		groupSep:   f.GroupSep,
		symbol:     f.CurrencySymbol,
	}
}

func newNumericConfig(opts []NumericOption) numericConfig {
	cfg := defaultNumericConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.decimals = max(cfg.decimals, 0)
	return cfg
}

// NumericOption configures Number, Money and Percentage fields.
type NumericOption func(*numericConfig)

// WithDecimals sets the number of fraction digits. Negative values mean none.
func WithDecimals(n int) NumericOption {
	return func(c *numericConfig) { c.decimals = n }
}

// WithLocale takes separators and currency symbol from f.
func WithLocale(f locale.Format) NumericOption {
	return func(c *numericConfig) {
		c.decimalSep = f.DecimalSep
		c.groupSep = f.GroupSep
		c.symbol = f.CurrencySymbol
	}
}

func WithSeparators(decimal, group string) NumericOption {
	return func(c *numericConfig) {
		c.decimalSep = decimal
		c.groupSep = group
	}
}

// WithoutGroupSeparator renders the integer part ungrouped.
func WithoutGroupSeparator() NumericOption {
	return func(c *numericConfig) { c.groupSep = "" }
}

// WithNegative lets a leading or trailing minus flip the sign.
func WithNegative() NumericOption {
	return func(c *numericConfig) { c.negative = true }
}

// WithCurrencySymbol overrides the money symbol. An empty symbol also drops
// the space after it.
func WithCurrencySymbol(symbol string) NumericOption {
	return func(c *numericConfig) { c.symbol = symbol }
}

// WithoutSpace drops the space between a money symbol or percent sign and the number.
func WithoutSpace() NumericOption {
	return func(c *numericConfig) { c.hideSpace = true }
}

// WithPercentageValue stores percentages as displayed (50% is 50, not 0.5).
func WithPercentageValue() NumericOption {
	return func(c *numericConfig) { c.valueMode = true }
}

// WithRange bounds the numeric value. Empty or unparsable limits are ignored.
func WithRange(minimum, maximum string) NumericOption {
	return func(c *numericConfig) {
		c.min = minimum
		c.max = maximum
	}
}

// ClearDelimitersAndLeadingZeros drops a leading minus, leading zeros and
// every non-digit. "0" stays "0".
func ClearDelimitersAndLeadingZeros(value string) string {
	if value == "0" {
		return value
	}
	value = strings.TrimPrefix(value, "-")
	value = strings.TrimLeft(value, "0")
	return sanitizer.Digits(value)
}

// PrepareNumber renders v with the given fraction digits as the digit string
// a reverse numeric pattern consumes: PrepareNumber(1500.75, 2) is "150075".
func PrepareNumber(v float64, decimals int) string {
	return ClearDelimitersAndLeadingZeros(strconv.FormatFloat(v, 'f', max(decimals, 0), 64))
}

// signFlip reports whether a raw numeric input asks for a negative value:
// exactly one of a leading or trailing minus is present.
func signFlip(raw string) bool {
	return strings.HasPrefix(raw, "-") != strings.HasSuffix(raw, "-")
}

func pow10(n int) float64 {
	return math.Pow(10, float64(n))
}
