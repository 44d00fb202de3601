package fields

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrymomot/inputmask/pkg/mask"
	"github.com/dmitrymomot/inputmask/pkg/sanitizer"
)

// Money is a Number rendered behind a currency symbol.
type Money struct {
	cfg  numericConfig
	view *mask.Pattern
}

func NewMoney(opts ...NumericOption) (*Money, error) {
	return newMoney(newNumericConfig(opts))
}

func newMoney(cfg numericConfig) (*Money, error) {
	view, err := mask.NewViewPattern(cfg.decimals, cfg.decimalSep, cfg.groupSep)
	if err != nil {
		return nil, fmt.Errorf("money view pattern: %w", err)
	}
	return &Money{cfg: cfg, view: view}, nil
}

// WithDecimals returns a copy using d fraction digits.
func (m *Money) WithDecimals(d int) (*Money, error) {
	cfg := m.cfg
	cfg.decimals = max(d, 0)
	return newMoney(cfg)
}

func (m *Money) Name() string  { return "money" }
func (m *Money) Decimals() int { return m.cfg.decimals }

func (m *Money) symbol() string {
	if m.cfg.symbol == "" || m.cfg.hideSpace {
		return m.cfg.symbol
	}
	return m.cfg.symbol + " "
}

// Clean keeps digits without leading zeros. All-zero input is kept as is.
func (m *Money) Clean(raw string) string {
	digits := sanitizer.Digits(raw)
	if trimmed := strings.TrimLeft(digits, "0"); trimmed != "" {
		return trimmed
	}
	return digits
}

func (m *Money) Format(clean string) string {
	if clean == "" {
		return ""
	}
	return m.symbol() + m.view.ApplyOrEmpty(orZero(m.Clean(clean)))
}

// Parse handles one keystroke. With WithNegative, exactly one of a leading or
// trailing minus makes a non-zero value negative.
func (m *Money) Parse(raw string) (display string, value float64) {
	if raw == "" {
		return "", 0
	}
	digits := orZero(m.Clean(raw))
	display = m.Format(digits)
	units, _ := strconv.ParseFloat(digits, 64)
	value = units / pow10(m.cfg.decimals)

	if m.cfg.negative && signFlip(raw) && value != 0 {
		return "-" + display, -value
	}
	return display, value
}

func (m *Money) FormatValue(v float64) string {
	prefix := ""
	if m.cfg.negative && v < 0 {
		prefix = "-"
	}
	return prefix + m.symbol() + m.view.ApplyOrEmpty(PrepareNumber(v, m.cfg.decimals))
}

func (m *Money) Validate(clean string) error {
	if clean == "" {
		return nil
	}
	_, v := m.Parse(clean)
	return m.ValidateValue(v)
}

func (m *Money) ValidateValue(v float64) error {
	return validateRange(m.Name(), v, m.cfg)
}
