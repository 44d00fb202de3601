package fields

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/dmitrymomot/inputmask/pkg/mask"
	"github.com/dmitrymomot/inputmask/pkg/validator"
)

var (
	scientificRegex = regexp.MustCompile(`^(-?)([0-9]*)\.?([0-9]*)[Ee]?([+-]?[0-9]*)`)
	floatPrefix     = regexp.MustCompile(`^[+-]?([0-9]+\.?[0-9]*|\.[0-9]+)([Ee][+-]?[0-9]+)?`)
)

// ScientificNotation renders a significand with a fixed number of fraction
// digits and an exponent. Significand digits beyond the precision spill into
// the exponent while typing.
type ScientificNotation struct {
	decimals    int
	decimalSep  string
	significand *mask.Pattern
}

// NewScientificNotation uses the decimal separator of opts; other numeric
// options are ignored.
func NewScientificNotation(opts ...NumericOption) (*ScientificNotation, error) {
	cfg := newNumericConfig(opts)
	src := "0"
	if cfg.decimals > 0 {
		src += mask.Escape(cfg.decimalSep) + strings.Repeat("0", cfg.decimals)
	}
	p, err := mask.Compile(src, mask.Reverse)
	if err != nil {
		return nil, fmt.Errorf("significand pattern: %w", err)
	}
	return &ScientificNotation{decimals: cfg.decimals, decimalSep: cfg.decimalSep, significand: p}, nil
}

func (s *ScientificNotation) Name() string  { return "scientific" }
func (s *ScientificNotation) Decimals() int { return s.decimals }

// Clean returns the machine form of a displayed value, with "." as the
// decimal separator.
func (s *ScientificNotation) Clean(raw string) string {
	return s.normalize(s.Format(raw))
}

// Format accepts either separator and renders the display form.
func (s *ScientificNotation) Format(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	m := scientificRegex.FindStringSubmatch(s.normalize(value))
	sign, intPart, fracPart, expPart := m[1], m[2], m[3], m[4]
	if intPart == "" {
		intPart = "0"
	}

	digits := intPart + fracPart
	exponent := ""
	hasExponent := false
	nonZeroInt := strings.TrimLeft(intPart, "0") != ""
	if nonZeroInt && (len(fracPart) > s.decimals || (s.decimals == 0 && len(digits) >= 2)) {
		exponent = digits[s.decimals+1:]
		digits = digits[:s.decimals+1]
		hasExponent = true
	}

	out := s.significand.ApplyOrEmpty(digits)
	if e, err := strconv.Atoi(expPart); err == nil && e != 0 {
		exponent = strconv.Itoa(e)
		hasExponent = true
	}
	if hasExponent {
		out += "e" + exponent
	}
	return sign + out
}

// FormatValue renders v with the configured precision, e.g. 12345.678 as "1.23e4".
func (s *ScientificNotation) FormatValue(v float64) string {
	return s.Format(strconv.FormatFloat(v, 'e', s.decimals, 64))
}

// Parse handles one keystroke and returns the display form and its value.
// Values beyond the float64 range parse as infinities and fail validation.
func (s *ScientificNotation) Parse(raw string) (display string, value float64) {
	display = s.Format(raw)
	return display, parseFloatPrefix(s.normalize(display))
}

// Validate rejects values that overflow float64.
func (s *ScientificNotation) Validate(clean string) error {
	if clean == "" {
		return nil
	}
	_, v := s.Parse(clean)
	return s.ValidateValue(v)
}

func (s *ScientificNotation) ValidateValue(v float64) error {
	return validator.Apply(validator.Finite(s.Name(), v))
}

func (s *ScientificNotation) normalize(value string) string {
	if s.decimalSep == "." || s.decimalSep == "" {
		return value
	}
	return strings.Replace(value, s.decimalSep, ".", 1)
}

func parseFloatPrefix(s string) float64 {
	m := floatPrefix.FindString(s)
	if m == "" {
		return 0
	}
	// ParseFloat returns ±Inf with a range error on overflow.
	v, _ := strconv.ParseFloat(m, 64)
	return v
}
