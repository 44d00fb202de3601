package fields

import (
	"fmt"
	"strconv"

	"github.com/dmitrymomot/inputmask/pkg/mask"
	"github.com/dmitrymomot/inputmask/pkg/validator"
)

// Number is a grouped decimal number typed right to left: each new digit
// enters the last fraction slot.
type Number struct {
	cfg   numericConfig
	view  *mask.Pattern
	model *mask.Pattern
}

// NewNumber defaults to two decimals and en-US separators.
func NewNumber(opts ...NumericOption) (*Number, error) {
	return newNumber(newNumericConfig(opts))
}

func newNumber(cfg numericConfig) (*Number, error) {
	view, err := mask.NewViewPattern(cfg.decimals, cfg.decimalSep, cfg.groupSep)
	if err != nil {
		return nil, fmt.Errorf("number view pattern: %w", err)
	}
	model, err := mask.NewModelPattern(cfg.decimals)
	if err != nil {
		return nil, fmt.Errorf("number model pattern: %w", err)
	}
	return &Number{cfg: cfg, view: view, model: model}, nil
}

// WithDecimals returns a copy using n fraction digits. The receiver is unchanged.
func (n *Number) WithDecimals(d int) (*Number, error) {
	cfg := n.cfg
	cfg.decimals = max(d, 0)
	return newNumber(cfg)
}

func (n *Number) Name() string  { return "number" }
func (n *Number) Decimals() int { return n.cfg.decimals }

func (n *Number) Clean(raw string) string {
	return ClearDelimitersAndLeadingZeros(raw)
}

func (n *Number) Format(clean string) string {
	if clean == "" {
		return ""
	}
	return n.view.ApplyOrEmpty(orZero(ClearDelimitersAndLeadingZeros(clean)))
}

// Parse handles one keystroke: it renders raw and returns its numeric value.
// With WithNegative, a lone "-" or exactly one of a leading or trailing minus
// makes the value negative; a negative zero renders as "-".
func (n *Number) Parse(raw string) (display string, value float64) {
	if raw == "" {
		return "", 0
	}
	digits := orZero(ClearDelimitersAndLeadingZeros(raw))
	display = n.view.ApplyOrEmpty(digits)
	value, _ = strconv.ParseFloat(n.model.ApplyOrEmpty(digits), 64)

	if n.cfg.negative && (signFlip(raw) || raw == "-") {
		if value == 0 {
			return "-", 0
		}
		return "-" + display, -value
	}
	return display, value
}

// FormatValue renders a stored value.
func (n *Number) FormatValue(v float64) string {
	prefix := ""
	if n.cfg.negative && v < 0 {
		prefix = "-"
	}
	return prefix + n.view.ApplyOrEmpty(PrepareNumber(v, n.cfg.decimals))
}

func (n *Number) Validate(clean string) error {
	if clean == "" {
		return nil
	}
	_, v := n.Parse(clean)
	return n.ValidateValue(v)
}

// ValidateValue checks v against the configured range.
func (n *Number) ValidateValue(v float64) error {
	return validateRange(n.Name(), v, n.cfg)
}

func validateRange(field string, v float64, cfg numericConfig) error {
	return validator.Apply(
		validator.Finite(field, v),
		validator.MinNumber(field, v, cfg.min),
		validator.MaxNumber(field, v, cfg.max),
	)
}

func orZero(digits string) string {
	if digits == "" {
		return "0"
	}
	return digits
}
