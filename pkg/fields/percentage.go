package fields

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/inputmask/pkg/mask"
)

const percentSign = "%"

// Percentage displays a number followed by a percent sign. The stored value is
// a fraction (50 % is 0.5) unless WithPercentageValue is set.
type Percentage struct {
	cfg   numericConfig
	view  *mask.Pattern
	model *mask.Pattern
}

func NewPercentage(opts ...NumericOption) (*Percentage, error) {
	return newPercentage(newNumericConfig(opts))
}

func newPercentage(cfg numericConfig) (*Percentage, error) {
	view, err := mask.NewViewPattern(cfg.decimals, cfg.decimalSep, cfg.groupSep)
	if err != nil {
		return nil, fmt.Errorf("percentage view pattern: %w", err)
	}
	model, err := mask.NewModelPattern(cfg.decimals + modelExtraDecimals(cfg))
	if err != nil {
		return nil, fmt.Errorf("percentage model pattern: %w", err)
	}
	return &Percentage{cfg: cfg, view: view, model: model}, nil
}

func modelExtraDecimals(cfg numericConfig) int {
	if cfg.valueMode {
		return 0
	}
	return 2
}

func (p *Percentage) multiplier() float64 {
	return pow10(modelExtraDecimals(p.cfg))
}

// WithDecimals returns a copy using d fraction digits.
func (p *Percentage) WithDecimals(d int) (*Percentage, error) {
	cfg := p.cfg
	cfg.decimals = max(d, 0)
	return newPercentage(cfg)
}

func (p *Percentage) Name() string  { return "percentage" }
func (p *Percentage) Decimals() int { return p.cfg.decimals }

func (p *Percentage) suffix() string {
	if p.cfg.hideSpace {
		return percentSign
	}
	return " " + percentSign
}

func (p *Percentage) Clean(raw string) string {
	return ClearDelimitersAndLeadingZeros(raw)
}

func (p *Percentage) Format(clean string) string {
	if clean == "" {
		return ""
	}
	return p.view.ApplyOrEmpty(orZero(ClearDelimitersAndLeadingZeros(clean))) + p.suffix()
}

// Parse handles one keystroke. A multi-rune value without the percent sign
// means the sign was just deleted, so the last digit goes with it. backspace
// reports whether the keystroke was a deletion; deleting down to a single
// digit resets the value to zero.
func (p *Percentage) Parse(raw string, backspace bool) (display string, value float64) {
	if raw == "" {
		return "", 0
	}
	digits := orZero(ClearDelimitersAndLeadingZeros(raw))
	if utf8.RuneCountInString(raw) > 1 && !strings.Contains(raw, percentSign) {
		digits = orZero(digits[:len(digits)-1])
	}
	if backspace && utf8.RuneCountInString(raw) == 1 && raw != percentSign {
		digits = "0"
	}
	display = p.view.ApplyOrEmpty(digits) + p.suffix()
	value, _ = strconv.ParseFloat(p.model.ApplyOrEmpty(digits), 64)
	return display, value
}

// FormatValue renders a stored value, e.g. 0.1234 as "12.34 %".
func (p *Percentage) FormatValue(v float64) string {
	return p.view.ApplyOrEmpty(PrepareNumber(v*p.multiplier(), p.cfg.decimals)) + p.suffix()
}

func (p *Percentage) Validate(clean string) error {
	if clean == "" {
		return nil
	}
	v, _ := strconv.ParseFloat(p.model.ApplyOrEmpty(orZero(ClearDelimitersAndLeadingZeros(clean))), 64)
	return p.ValidateValue(v)
}

func (p *Percentage) ValidateValue(v float64) error {
	return validateRange(p.Name(), v, p.cfg)
}
