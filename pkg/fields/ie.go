package fields

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/inputmask/pkg/mask"
	"github.com/dmitrymomot/inputmask/pkg/sanitizer"
	"github.com/dmitrymomot/inputmask/pkg/validator"
)

//go:embed ie_masks.yaml
var ieMasksYAML []byte

type ieEntry struct {
	MaxLen  int    `yaml:"max_len"`
	Prefix  string `yaml:"prefix"`
	Pattern string `yaml:"pattern"`
}

type prefixed struct {
	prefix  string
	pattern *mask.Pattern
}

type ieRegion struct {
	cands    []Candidate
	prefixed []prefixed
}

// IETable holds state registration masks per region code.
type IETable struct {
	regions map[string]ieRegion
}

// LoadIETable parses a YAML table mapping region codes to ordered candidates.
func LoadIETable(data []byte) (*IETable, error) {
	var raw map[string][]ieEntry
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTable, err)
	}

	t := &IETable{regions: make(map[string]ieRegion, len(raw))}
	for code, entries := range raw {
		var region ieRegion
		for i, e := range entries {
			p, err := mask.Compile(e.Pattern, mask.Forward, mask.WithRequireSlots())
			if err != nil {
				return nil, fmt.Errorf("%w: %s entry %d: %w", ErrInvalidTable, code, i, err)
			}
			if e.Prefix != "" {
				region.prefixed = append(region.prefixed, prefixed{prefix: e.Prefix, pattern: p})
				continue
			}
			region.cands = append(region.cands, Candidate{MaxLen: e.MaxLen, Pattern: p})
		}
		if len(region.cands) == 0 {
			return nil, fmt.Errorf("%w: %s has no unprefixed pattern", ErrInvalidTable, code)
		}
		t.regions[strings.ToUpper(code)] = region
	}
	return t, nil
}

var defaultIETable = sync.OnceValues(func() (*IETable, error) {
	return LoadIETable(ieMasksYAML)
})

// DefaultIETable returns the embedded table for the 27 Brazilian federative units.
func DefaultIETable() *IETable {
	t, err := defaultIETable()
	if err != nil {
		panic(err)
	}
	return t
}

// Regions lists the known region codes in order.
func (t *IETable) Regions() []string {
	codes := make([]string, 0, len(t.regions))
	for code := range t.regions {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}

// Lookup picks the pattern for value in region. The returned prefix is
// non-empty when value starts with a routed prefix and must be rendered in
// front of the formatted digits.
func (t *IETable) Lookup(region, value string) (p *mask.Pattern, prefix string, err error) {
	code := normalizeRegion(region)
	r, ok := t.regions[code]
	if !ok {
		return nil, "", fmt.Errorf("%w: region %q", ErrNoMaskAvailable, code)
	}
	for _, alt := range r.prefixed {
		if hasPrefixFold(value, alt.prefix) {
			return alt.pattern, alt.prefix, nil
		}
	}
	p, err = Resolve(r.cands, utf8.RuneCountInString(sanitizer.Digits(value)))
	return p, "", err
}

// Field returns the IE field bound to region.
func (t *IETable) Field(region string) *IE {
	return &IE{table: t, region: normalizeRegion(region)}
}

// IE is the state registration number of one region.
type IE struct {
	table  *IETable
	region string
}

// NewIE binds region to the embedded table.
func NewIE(region string) *IE {
	return DefaultIETable().Field(region)
}

func (f *IE) Name() string { return "ie" }

// Region is the upper-cased region code.
func (f *IE) Region() string { return f.region }

// Clean keeps digits, truncated to the selected pattern, behind any routed
// prefix. Values of unknown regions keep all their digits.
func (f *IE) Clean(raw string) string {
	digits := sanitizer.Digits(raw)
	p, prefix, err := f.table.Lookup(f.region, raw)
	if err != nil {
		return digits
	}
	return prefix + sanitizer.Truncate(digits, p.SlotCount())
}

// Format passes the value through unchanged when the region has no mask.
func (f *IE) Format(clean string) string {
	if clean == "" {
		return ""
	}
	p, prefix, err := f.table.Lookup(f.region, clean)
	if err != nil {
		return clean
	}
	digits := sanitizer.Truncate(sanitizer.Digits(clean), p.SlotCount())
	return prefix + mask.Format(p, digits)
}

// Reformat leaves the display untouched when the region has no mask. The
// clean value still keeps digits only.
func (f *IE) Reformat(raw string) (display, clean string) {
	if _, _, err := f.table.Lookup(f.region, raw); err != nil {
		return raw, f.Clean(raw)
	}
	display = f.Format(f.Clean(raw))
	return display, f.Clean(display)
}

// Validate requires every slot of the selected pattern to be filled.
func (f *IE) Validate(clean string) error {
	if clean == "" {
		return nil
	}
	p, _, err := f.table.Lookup(f.region, clean)
	if err != nil {
		return err
	}
	return validator.Apply(validator.ValidLength(f.Name(), sanitizer.Digits(clean), p.SlotCount()))
}

func normalizeRegion(region string) string {
	return strings.ToUpper(strings.TrimSpace(region))
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
