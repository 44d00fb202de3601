package mask_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputmask/pkg/mask"
)

func TestApplyForward(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		pattern   string
		raw       string
		result    string
		remaining string
		valid     bool
	}{
		{
			name:    "fills postal code",
			pattern: "00000-000",
			raw:     "12345678",
			result:  "12345-678",
			valid:   true,
		},
		{
			name:    "stops after last filled slot and keeps connector",
			pattern: "00000-000",
			raw:     "12345",
			result:  "12345-",
			valid:   true,
		},
		{
			name:      "reports input beyond capacity",
			pattern:   "00000-000",
			raw:       "123456789",
			result:    "12345-678",
			remaining: "9",
			valid:     true,
		},
		{
			name:    "partial document number",
			pattern: "000.000.000-00",
			raw:     "1234",
			result:  "123.4",
			valid:   true,
		},
		{
			name:    "empty input renders nothing",
			pattern: "000.000.000-00",
			raw:     "",
			result:  "",
			valid:   true,
		},
		{
			name:      "mismatch ends the walk",
			pattern:   "000-000",
			raw:       "12a45",
			result:    "12",
			remaining: "a45",
			valid:     false,
		},
		{
			name:    "upper-cases letter slots",
			pattern: "UUU-0000",
			raw:     "abc1234",
			result:  "ABC-1234",
			valid:   true,
		},
		{
			name:      "letter slot rejects digit",
			pattern:   "UUU-0000",
			raw:       "ab12",
			result:    "AB",
			remaining: "12",
			valid:     false,
		},
		{
			name:    "lower-cases letter slots",
			pattern: "LL",
			raw:     "AB",
			result:  "ab",
			valid:   true,
		},
		{
			name:    "alphanumeric slots keep case",
			pattern: "AAA",
			raw:     "a1B",
			result:  "a1B",
			valid:   true,
		},
		{
			name:    "leading literals are emitted",
			pattern: "(00) 0000-0000",
			raw:     "12",
			result:  "(12) ",
			valid:   true,
		},
		{
			name:    "escaped placeholder is a literal",
			pattern: `\00`,
			raw:     "7",
			result:  "07",
			valid:   true,
		},
		{
			name:    "optional slots skipped without spare input",
			pattern: "99-0",
			raw:     "5",
			result:  "-5",
			valid:   true,
		},
		{
			name:    "optional slots take spare input",
			pattern: "99-0",
			raw:     "125",
			result:  "12-5",
			valid:   true,
		},
		{
			name:    "optional slots take only spare input",
			pattern: "99-0",
			raw:     "15",
			result:  "1-5",
			valid:   true,
		},
		{
			name:      "constant pattern",
			pattern:   "--",
			raw:       "1",
			result:    "--",
			remaining: "1",
			valid:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, err := mask.Compile(tt.pattern, mask.Forward)
			require.NoError(t, err)

			res := p.Apply(tt.raw)
			assert.Equal(t, tt.result, res.Result)
			assert.Equal(t, tt.remaining, res.Remaining)
			assert.Equal(t, tt.valid, res.Valid)
		})
	}
}

func TestApplyReverse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		pattern   string
		raw       string
		result    string
		remaining string
		valid     bool
	}{
		{
			name:    "groups currency",
			pattern: "#.##0,00",
			raw:     "150075",
			result:  "1.500,75",
			valid:   true,
		},
		{
			name:    "anchors at decimal separator",
			pattern: "#.##0,00",
			raw:     "1234567",
			result:  "12.345,67",
			valid:   true,
		},
		{
			name:    "repeats group for large values",
			pattern: "#.##0,00",
			raw:     "1234567890",
			result:  "12.345.678,90",
			valid:   true,
		},
		{
			name:    "no dangling group separator",
			pattern: "#.##0,00",
			raw:     "123",
			result:  "1,23",
			valid:   true,
		},
		{
			name:    "zero-fills mandatory digits",
			pattern: "#.##0,00",
			raw:     "5",
			result:  "0,05",
			valid:   true,
		},
		{
			name:    "model pattern",
			pattern: "###0.00",
			raw:     "150075",
			result:  "1500.75",
			valid:   true,
		},
		{
			name:    "without group separator",
			pattern: "###0,00",
			raw:     "1234567",
			result:  "12345,67",
			valid:   true,
		},
		{
			name:      "keeps leftmost input as remaining",
			pattern:   "000",
			raw:       "12345",
			result:    "345",
			remaining: "12",
			valid:     true,
		},
		{
			name:      "mismatch ends the walk",
			pattern:   "0,00",
			raw:       "1a23",
			result:    ",23",
			remaining: "1a",
			valid:     false,
		},
		{
			name:    "empty input renders nothing",
			pattern: "#.##0,00",
			raw:     "",
			result:  "",
			valid:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, err := mask.Compile(tt.pattern, mask.Reverse)
			require.NoError(t, err)

			res := p.Apply(tt.raw)
			assert.Equal(t, tt.result, res.Result)
			assert.Equal(t, tt.remaining, res.Remaining)
			assert.Equal(t, tt.valid, res.Valid)
		})
	}
}

func TestTrim(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		pattern  string
		input    string
		expected string
	}{
		{"drops trailing connector", "00000-000", "12345-", "12345"},
		{"keeps trailing digit", "00000-000", "12345-6", "12345-6"},
		{"drops one rune after whitespace", "(00) 0000-0000", "(12) ", "(12"},
		{"alphanumeric alphabet", "UUU-0000", "ABC-", "ABC"},
		{"keeps trailing letter", "UUU-0000", "AB", "AB"},
		{"whitespace only", "0000 0000", "   ", ""},
		{"empty", "0000 0000", "", ""},
		{"multi-byte literal", "00→00", "12→", "12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := mask.MustCompile(tt.pattern, mask.Forward)
			assert.Equal(t, tt.expected, p.Trim(tt.input))
		})
	}
}

func TestFormatIsIdempotent(t *testing.T) {
	t.Parallel()

	p := mask.MustCompile("00.000.000/0000-00", mask.Forward)
	clean := func(s string) string {
		var b strings.Builder
		for _, r := range s {
			if r >= '0' && r <= '9' {
				b.WriteRune(r)
			}
		}
		out := b.String()
		if len(out) > p.SlotCount() {
			out = out[:p.SlotCount()]
		}
		return out
	}

	inputs := []string{"", "1", "12", "123", "12345678", "123456789012", "11222333000181", "11.222.333/0001-81xx", "a1b2c3"}
	for _, in := range inputs {
		once := mask.Format(p, clean(in))
		twice := mask.Format(p, clean(once))
		assert.Equal(t, once, twice, "input %q", in)
		assert.LessOrEqual(t, len(clean(in)), p.SlotCount())
	}
}

func TestApplyConcurrentUse(t *testing.T) {
	t.Parallel()

	p := mask.MustCompile("#.##0,00", mask.Reverse)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				assert.Equal(t, "1.500,75", p.ApplyOrEmpty("150075"))
			}
		}()
	}
	wg.Wait()
}
