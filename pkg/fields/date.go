package fields

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrymomot/inputmask/pkg/mask"
	"github.com/dmitrymomot/inputmask/pkg/sanitizer"
	"github.com/dmitrymomot/inputmask/pkg/validator"
)

var (
	layoutToGo      = strings.NewReplacer("YYYY", "2006", "MM", "01", "DD", "02")
	layoutToPattern = strings.NewReplacer("YYYY", "0000", "MM", "00", "DD", "00")
)

// Date is a calendar date typed as digits into a layout such as DD/MM/YYYY.
type Date struct {
	layout   string
	goLayout string
	pattern  *mask.Pattern
	clean    func(string) string
}

// NewDate accepts layouts built from DD, MM and YYYY joined by separators
// that are not placeholder glyphs, e.g. "DD/MM/YYYY" or "YYYY-MM-DD".
func NewDate(layout string) (*Date, error) {
	for _, part := range []string{"YYYY", "MM", "DD"} {
		if strings.Count(layout, part) != 1 {
			return nil, fmt.Errorf("%w: %q needs exactly one %s", ErrInvalidLayout, layout, part)
		}
	}
	src := layoutToPattern.Replace(layout)
	if strings.ContainsAny(strings.ReplaceAll(src, "0", ""), "9#ASUL\\YMD") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLayout, layout)
	}
	p, err := mask.Compile(src, mask.Forward, mask.WithRequireSlots())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLayout, err)
	}
	return &Date{
		layout:   layout,
		goLayout: layoutToGo.Replace(layout),
		pattern:  p,
		clean:    sanitizer.Compose(sanitizer.Digits, sanitizer.Limit(p.SlotCount())),
	}, nil
}

func (d *Date) Name() string { return "date" }

// Layout is the DD/MM/YYYY style layout.
func (d *Date) Layout() string { return d.layout }

// Clean keeps the typed digits. An RFC 3339 timestamp is first rendered in
// the field's layout.
func (d *Date) Clean(raw string) string {
	if t, err := time.Parse(time.RFC3339, strings.TrimSpace(raw)); err == nil {
		raw = d.FormatTime(t)
	}
	return d.clean(raw)
}

func (d *Date) Format(clean string) string {
	return mask.Format(d.pattern, d.clean(clean))
}

func (d *Date) FormatTime(t time.Time) string {
	return t.Format(d.goLayout)
}

// Parse handles one keystroke. The time is set only once the date is complete
// and valid.
func (d *Date) Parse(raw string) (display string, t time.Time, ok bool) {
	display = d.Format(d.Clean(raw))
	if len(display) != len(d.goLayout) {
		return display, time.Time{}, false
	}
	t, err := time.Parse(d.goLayout, display)
	if err != nil {
		return display, time.Time{}, false
	}
	return display, t, true
}

func (d *Date) Validate(clean string) error {
	if clean == "" {
		return nil
	}
	return validator.Apply(validator.ValidDate(d.Name(), d.Format(clean), d.goLayout))
}
