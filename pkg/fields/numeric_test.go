package fields_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputmask/pkg/fields"
	"github.com/dmitrymomot/inputmask/pkg/validator"
)

var brazilian = fields.WithSeparators(",", ".")

func TestClearDelimitersAndLeadingZeros(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"0", "0"},
		{"", ""},
		{"000", ""},
		{"-0012,34", "1234"},
		{"1.234,56", "123456"},
		{"R$ 0,05", "005"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, fields.ClearDelimitersAndLeadingZeros(tt.in), "input %q", tt.in)
	}
}

func TestPrepareNumber(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "150075", fields.PrepareNumber(1500.75, 2))
	assert.Equal(t, "25", fields.PrepareNumber(2.5, 1))
	assert.Equal(t, "300", fields.PrepareNumber(-3, 2))
	assert.Equal(t, "7", fields.PrepareNumber(7, -1))
}

func TestNumber(t *testing.T) {
	t.Parallel()

	t.Run("format and clean", func(t *testing.T) {
		t.Parallel()

		n, err := fields.NewNumber(brazilian)
		require.NoError(t, err)
		assert.Equal(t, 2, n.Decimals())
		assert.Equal(t, "1.500,75", n.Format("150075"))
		assert.Equal(t, "150075", n.Clean("1.500,75"))
		assert.Equal(t, "0,05", n.Format("5"))
		assert.Equal(t, "", n.Format(""))
	})

	t.Run("parse keystrokes", func(t *testing.T) {
		t.Parallel()

		n, err := fields.NewNumber(brazilian)
		require.NoError(t, err)

		tests := []struct {
			raw     string
			display string
			value   float64
		}{
			{"1.500,755", "15.007,55", 15007.55},
			{"abc", "0,00", 0},
			{"-5", "0,05", 0.05},
			{"", "", 0},
		}
		for _, tt := range tests {
			display, value := n.Parse(tt.raw)
			assert.Equal(t, tt.display, display, "raw %q", tt.raw)
			assert.InDelta(t, tt.value, value, 1e-9, "raw %q", tt.raw)
		}
	})

	t.Run("negative numbers", func(t *testing.T) {
		t.Parallel()

		n, err := fields.NewNumber(brazilian, fields.WithNegative())
		require.NoError(t, err)

		tests := []struct {
			raw     string
			display string
			value   float64
		}{
			{"-1.500,75", "-1.500,75", -1500.75},
			{"1.500,75-", "-1.500,75", -1500.75},
			{"-1.500,75-", "1.500,75", 1500.75},
			{"-", "-", 0},
		}
		for _, tt := range tests {
			display, value := n.Parse(tt.raw)
			assert.Equal(t, tt.display, display, "raw %q", tt.raw)
			assert.InDelta(t, tt.value, value, 1e-9, "raw %q", tt.raw)
		}

		assert.Equal(t, "-1.500,75", n.FormatValue(-1500.75))
	})

	t.Run("format value", func(t *testing.T) {
		t.Parallel()

		n, err := fields.NewNumber(brazilian)
		require.NoError(t, err)
		assert.Equal(t, "1.500,75", n.FormatValue(1500.75))
		assert.Equal(t, "0,00", n.FormatValue(0))
		assert.Equal(t, "1.500,75", n.FormatValue(-1500.75))
	})

	t.Run("with decimals returns a new field", func(t *testing.T) {
		t.Parallel()

		n, err := fields.NewNumber(brazilian)
		require.NoError(t, err)
		n3, err := n.WithDecimals(3)
		require.NoError(t, err)

		assert.Equal(t, "1,234", n3.Format("1234"))
		assert.Equal(t, "12,34", n.Format("1234"))

		n0, err := n.WithDecimals(0)
		require.NoError(t, err)
		assert.Equal(t, "1.234.567", n0.Format("1234567"))
	})

	t.Run("without group separator", func(t *testing.T) {
		t.Parallel()

		n, err := fields.NewNumber(brazilian, fields.WithoutGroupSeparator())
		require.NoError(t, err)
		assert.Equal(t, "12345,67", n.Format("1234567"))
	})

	t.Run("range", func(t *testing.T) {
		t.Parallel()

		n, err := fields.NewNumber(brazilian, fields.WithRange("0", "100"))
		require.NoError(t, err)
		assert.NoError(t, n.Validate("5000"))
		assert.NoError(t, n.Validate(""))

		err = n.Validate("15000")
		require.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.True(t, validator.ExtractValidationErrors(err).Has("number"))

		assert.Error(t, n.ValidateValue(math.Inf(1)))
		assert.Error(t, n.ValidateValue(-1))
	})
}

func TestMoney(t *testing.T) {
	t.Parallel()

	reais := []fields.NumericOption{brazilian, fields.WithCurrencySymbol("R$")}

	t.Run("format and parse", func(t *testing.T) {
		t.Parallel()

		m, err := fields.NewMoney(reais...)
		require.NoError(t, err)

		assert.Equal(t, "R$ 1.500,75", m.Format("150075"))
		assert.Equal(t, "150075", m.Clean("R$ 1.500,75"))

		display, value := m.Parse("R$ 1.500,755")
		assert.Equal(t, "R$ 15.007,55", display)
		assert.InDelta(t, 15007.55, value, 1e-9)

		display, value = m.Parse("0001")
		assert.Equal(t, "R$ 0,01", display)
		assert.InDelta(t, 0.01, value, 1e-9)

		display, _ = m.Parse("R$ 0,00")
		assert.Equal(t, "R$ 0,00", display)
	})

	t.Run("symbol spacing", func(t *testing.T) {
		t.Parallel()

		m, err := fields.NewMoney(append(reais, fields.WithoutSpace())...)
		require.NoError(t, err)
		assert.Equal(t, "R$1,00", m.Format("100"))

		m, err = fields.NewMoney(brazilian, fields.WithCurrencySymbol(""))
		require.NoError(t, err)
		assert.Equal(t, "1,00", m.Format("100"))
	})

	t.Run("negative", func(t *testing.T) {
		t.Parallel()

		m, err := fields.NewMoney(append(reais, fields.WithNegative())...)
		require.NoError(t, err)

		display, value := m.Parse("R$ 1,00-")
		assert.Equal(t, "-R$ 1,00", display)
		assert.InDelta(t, -1.0, value, 1e-9)

		display, value = m.Parse("-R$ 0,00")
		assert.Equal(t, "R$ 0,00", display)
		assert.Zero(t, value)

		assert.Equal(t, "-R$ 2,00", m.FormatValue(-2))
	})

	t.Run("format value and decimals", func(t *testing.T) {
		t.Parallel()

		m, err := fields.NewMoney(reais...)
		require.NoError(t, err)
		assert.Equal(t, "R$ 1.500,75", m.FormatValue(1500.75))

		m0, err := m.WithDecimals(0)
		require.NoError(t, err)
		assert.Equal(t, 0, m0.Decimals())
		assert.Equal(t, "R$ 1.234", m0.Format("1234"))
	})

	t.Run("range", func(t *testing.T) {
		t.Parallel()

		m, err := fields.NewMoney(append(reais, fields.WithRange("1", ""))...)
		require.NoError(t, err)
		assert.Error(t, m.Validate("50"))
		assert.NoError(t, m.Validate("100"))
	})
}

func TestPercentage(t *testing.T) {
	t.Parallel()

	t.Run("format", func(t *testing.T) {
		t.Parallel()

		p, err := fields.NewPercentage(brazilian)
		require.NoError(t, err)
		assert.Equal(t, "12,34 %", p.Format("1234"))
		assert.Equal(t, "1234", p.Clean("12,34 %"))
		assert.Equal(t, "12,34 %", p.FormatValue(0.1234))
	})

	t.Run("parse keystrokes", func(t *testing.T) {
		t.Parallel()

		p, err := fields.NewPercentage(brazilian)
		require.NoError(t, err)

		tests := []struct {
			name      string
			raw       string
			backspace bool
			display   string
			value     float64
		}{
			{"unchanged", "12,34 %", false, "12,34 %", 0.1234},
			{"digit typed", "12,345 %", false, "123,45 %", 1.2345},
			{"percent sign deleted", "12,34 ", true, "1,23 %", 0.0123},
			{"first digit", "5", false, "0,05 %", 0.0005},
			{"last digit deleted", "5", true, "0,00 %", 0},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				display, value := p.Parse(tt.raw, tt.backspace)
				assert.Equal(t, tt.display, display)
				assert.InDelta(t, tt.value, value, 1e-9)
			})
		}
	})

	t.Run("value mode", func(t *testing.T) {
		t.Parallel()

		p, err := fields.NewPercentage(brazilian, fields.WithPercentageValue(), fields.WithoutSpace())
		require.NoError(t, err)

		display, value := p.Parse("12,34%", false)
		assert.Equal(t, "12,34%", display)
		assert.InDelta(t, 12.34, value, 1e-9)
		assert.Equal(t, "12,34%", p.FormatValue(12.34))
	})

	t.Run("range", func(t *testing.T) {
		t.Parallel()

		p, err := fields.NewPercentage(brazilian, fields.WithRange("0", "1"))
		require.NoError(t, err)
		assert.NoError(t, p.Validate("10000"))
		assert.Error(t, p.Validate("10001"))
	})
}

func TestScientificNotation(t *testing.T) {
	t.Parallel()

	t.Run("format value", func(t *testing.T) {
		t.Parallel()

		s, err := fields.NewScientificNotation()
		require.NoError(t, err)
		assert.Equal(t, 2, s.Decimals())
		assert.Equal(t, "1.23e4", s.FormatValue(12345.678))
		assert.Equal(t, "-1.20e-4", s.FormatValue(-0.00012))
	})

	t.Run("digits spill into the exponent", func(t *testing.T) {
		t.Parallel()

		s, err := fields.NewScientificNotation()
		require.NoError(t, err)
		assert.Equal(t, "1.23e45", s.Format("1.2345"))
		assert.Equal(t, "1.23e4", s.Format("1.23e4"))
		assert.Equal(t, "", s.Format(""))
	})

	t.Run("locale separator", func(t *testing.T) {
		t.Parallel()

		s, err := fields.NewScientificNotation(brazilian)
		require.NoError(t, err)
		assert.Equal(t, "1,23e4", s.FormatValue(12345.678))

		display, value := s.Parse("1,23e4")
		assert.Equal(t, "1,23e4", display)
		assert.InDelta(t, 12300.0, value, 1e-9)
		assert.Equal(t, "1.23e4", s.Clean("1,23e4"))
	})

	t.Run("no decimals", func(t *testing.T) {
		t.Parallel()

		s, err := fields.NewScientificNotation(fields.WithDecimals(0))
		require.NoError(t, err)
		assert.Equal(t, "1e23", s.Format("123"))
		assert.Equal(t, "5", s.FormatValue(5))
	})

	t.Run("overflow fails validation", func(t *testing.T) {
		t.Parallel()

		s, err := fields.NewScientificNotation()
		require.NoError(t, err)
		assert.NoError(t, s.Validate("1.23e4"))
		assert.ErrorIs(t, s.Validate("9e999"), validator.ErrValidationFailed)
	})
}

var (
	_ fields.Numeric = (*fields.Number)(nil)
	_ fields.Numeric = (*fields.Money)(nil)
	_ fields.Numeric = (*fields.ScientificNotation)(nil)
)

func TestNumericRangeKeepsSign(t *testing.T) {
	t.Parallel()

	t.Run("number", func(t *testing.T) {
		t.Parallel()

		n, err := fields.NewNumber(brazilian, fields.WithNegative(), fields.WithRange("-10", "0"))
		require.NoError(t, err)

		display, v := n.Parse("-500")
		assert.Equal(t, "-5,00", display)
		assert.InDelta(t, -5.0, v, 1e-9)
		assert.NoError(t, n.ValidateValue(v))
		assert.NoError(t, n.Validate("-500"))

		_, v = n.Parse("500")
		assert.ErrorIs(t, n.ValidateValue(v), validator.ErrValidationFailed)

		_, v = n.Parse("-2000")
		assert.ErrorIs(t, n.ValidateValue(v), validator.ErrValidationFailed)
	})

	t.Run("money", func(t *testing.T) {
		t.Parallel()

		m, err := fields.NewMoney(brazilian, fields.WithCurrencySymbol("R$"), fields.WithNegative(), fields.WithRange("", "1"))
		require.NoError(t, err)

		display, v := m.Parse("-50000")
		assert.Equal(t, "-R$ 500,00", display)
		assert.InDelta(t, -500.0, v, 1e-9)
		assert.NoError(t, m.ValidateValue(v))

		_, v = m.Parse("50000")
		assert.ErrorIs(t, m.ValidateValue(v), validator.ErrValidationFailed)
	})
}
