package fields

import (
	"fmt"

	"github.com/dmitrymomot/inputmask/pkg/mask"
	"github.com/dmitrymomot/inputmask/pkg/sanitizer"
	"github.com/dmitrymomot/inputmask/pkg/validator"
)

// Field is one masked input.
type Field interface {
	Name() string
	// Clean reduces raw input to the characters the field stores.
	Clean(raw string) string
	// Format renders a clean value for display.
	Format(clean string) string
	// Validate reports whether a clean value is complete and well formed.
	// Empty values are valid; requiredness belongs to the caller.
	Validate(clean string) error
}

// Reformat runs one keystroke round trip: clean the raw value, render it and
// clean the rendering again so the stored value matches what is displayed.
// Fields implementing Reformatter decide the round trip themselves.
func Reformat(f Field, raw string) (display, clean string) {
	if rf, ok := f.(Reformatter); ok {
		return rf.Reformat(raw)
	}
	display = f.Format(f.Clean(raw))
	return display, f.Clean(display)
}

// Outcome is a keystroke round trip followed by validation.
type Outcome struct {
	Display string
	Clean   string
	// Value is set for Numeric fields with non-empty input.
	Value *float64
	// Err is the validation error, if any.
	Err error
}

// Evaluate reformats raw and validates it. Numeric fields are parsed so the
// sign typed by the user takes part in range checks.
func Evaluate(f Field, raw string) Outcome {
	if nf, ok := f.(Numeric); ok && raw != "" {
		display, v := nf.Parse(raw)
		return Outcome{Display: display, Clean: f.Clean(display), Value: &v, Err: nf.ValidateValue(v)}
	}
	display, clean := Reformat(f, raw)
	return Outcome{Display: display, Clean: clean, Err: f.Validate(clean)}
}

// Reformatter is implemented by fields whose display is not always derived
// from the clean value.
type Reformatter interface {
	Reformat(raw string) (display, clean string)
}

// Numeric is implemented by fields whose display carries a signed number.
// The clean value holds digits only, so range checks go through ValidateValue
// with the parsed value.
type Numeric interface {
	Field
	Parse(raw string) (display string, value float64)
	ValidateValue(v float64) error
}

// RuleFunc builds a validation rule for a clean value of the named field.
type RuleFunc func(field, clean string) validator.Rule

// Fixed is a field with a single pattern.
type Fixed struct {
	name    string
	pattern *mask.Pattern
	clean   func(string) string
	rules   []RuleFunc
}

// NewFixed compiles pattern and keeps raw runes through keep, truncated to
// the pattern's slot count.
func NewFixed(name, pattern string, keep func(string) string, rules ...RuleFunc) (*Fixed, error) {
	p, err := mask.Compile(pattern, mask.Forward, mask.WithRequireSlots())
	if err != nil {
		return nil, fmt.Errorf("field %s: %w", name, err)
	}
	return &Fixed{
		name:    name,
		pattern: p,
		clean:   sanitizer.Compose(keep, sanitizer.Limit(p.SlotCount())),
		rules:   rules,
	}, nil
}

func mustFixed(name, pattern string, keep func(string) string, rules ...RuleFunc) *Fixed {
	f, err := NewFixed(name, pattern, keep, rules...)
	if err != nil {
		panic(err)
	}
	return f
}

func (f *Fixed) Name() string { return f.name }

// Pattern returns the compiled pattern.
func (f *Fixed) Pattern() *mask.Pattern { return f.pattern }

// Capacity is the maximum clean length.
func (f *Fixed) Capacity() int { return f.pattern.SlotCount() }

func (f *Fixed) Clean(raw string) string { return f.clean(raw) }

func (f *Fixed) Format(clean string) string {
	return mask.Format(f.pattern, f.clean(clean))
}

func (f *Fixed) Validate(clean string) error {
	return applyRules(f.name, clean, f.rules)
}

func applyRules(name, clean string, fns []RuleFunc) error {
	if clean == "" || len(fns) == 0 {
		return nil
	}
	rules := make([]validator.Rule, 0, len(fns))
	for _, fn := range fns {
		rules = append(rules, fn(name, clean))
	}
	return validator.Apply(rules...)
}

// Length requires the clean value to have one of the given lengths.
func Length(lengths ...int) RuleFunc {
	return func(field, clean string) validator.Rule {
		return validator.ValidLength(field, clean, lengths...)
	}
}
