package fields

import (
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/inputmask/pkg/mask"
	"github.com/dmitrymomot/inputmask/pkg/sanitizer"
	"github.com/dmitrymomot/inputmask/pkg/validator"
)

// Candidate is one entry of an ordered pattern list. A zero MaxLen matches
// any length.
type Candidate struct {
	MaxLen  int
	Pattern *mask.Pattern
}

// Resolve returns the first candidate whose MaxLen is zero or at least
// cleanLen, falling back to the last candidate.
func Resolve(cands []Candidate, cleanLen int) (*mask.Pattern, error) {
	if len(cands) == 0 {
		return nil, ErrNoMaskAvailable
	}
	for _, c := range cands {
		if c.MaxLen == 0 || c.MaxLen >= cleanLen {
			return c.Pattern, nil
		}
	}
	return cands[len(cands)-1].Pattern, nil
}

// Selector picks the pattern for a clean value.
type Selector func(clean string) (*mask.Pattern, error)

// ByLength selects among cands by the rune count of the clean value.
func ByLength(cands ...Candidate) Selector {
	return func(clean string) (*mask.Pattern, error) {
		return Resolve(cands, utf8.RuneCountInString(clean))
	}
}

// Composite is a field whose pattern depends on the value.
type Composite struct {
	name   string
	clean  func(string) string
	choose Selector
	rules  []RuleFunc
}

// NewComposite keeps raw runes through keep, truncated to capacity.
func NewComposite(name string, keep func(string) string, capacity int, choose Selector, rules ...RuleFunc) *Composite {
	return &Composite{
		name:   name,
		clean:  sanitizer.Compose(keep, sanitizer.Limit(capacity)),
		choose: choose,
		rules:  rules,
	}
}

func (c *Composite) Name() string { return c.name }

func (c *Composite) Clean(raw string) string { return c.clean(raw) }

// Format passes the value through when no pattern applies.
func (c *Composite) Format(clean string) string {
	clean = c.clean(clean)
	if clean == "" {
		return ""
	}
	p, err := c.choose(clean)
	if err != nil {
		return clean
	}
	return mask.Format(p, clean)
}

func (c *Composite) Validate(clean string) error {
	return applyRules(c.name, clean, c.rules)
}

const cpfLength = 11

// CPFCNPJ renders up to 11 digits as a CPF and longer values as a CNPJ.
func CPFCNPJ() *Composite {
	cpf := mask.MustCompile(cpfPattern, mask.Forward)
	cnpj := mask.MustCompile(cnpjPattern, mask.Forward)
	return NewComposite("cpf-cnpj", sanitizer.Digits, cnpj.SlotCount(),
		ByLength(Candidate{MaxLen: cpfLength, Pattern: cpf}, Candidate{Pattern: cnpj}),
		func(field, clean string) validator.Rule {
			if len(clean) > cpfLength {
				return validator.ValidCNPJ(field, clean)
			}
			return validator.ValidCPF(field, clean)
		},
	)
}

const (
	phone8Pattern        = "(00) 0000-0000"
	phone9Pattern        = "(00) 00000-0000"
	phoneTollFreePattern = "0000-000-0000"
	tollFreePrefix       = "0800"
)

// Phone renders landlines, mobiles and 0800 toll-free numbers.
func Phone() *Composite {
	landline := mask.MustCompile(phone8Pattern, mask.Forward)
	mobile := mask.MustCompile(phone9Pattern, mask.Forward)
	tollFree := mask.MustCompile(phoneTollFreePattern, mask.Forward)
	byLength := ByLength(
		Candidate{MaxLen: landline.SlotCount(), Pattern: landline},
		Candidate{Pattern: mobile},
	)
	choose := func(clean string) (*mask.Pattern, error) {
		if strings.HasPrefix(clean, tollFreePrefix) {
			return tollFree, nil
		}
		return byLength(clean)
	}
	return NewComposite("phone", sanitizer.Digits, mobile.SlotCount(), choose, Length(10, 11))
}
