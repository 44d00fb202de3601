package fields

import (
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrymomot/inputmask/pkg/locale"
)

// ieName is the registry entry resolved per region selector.
const ieName = "ie"

// Registry maps field names to fields. The "ie" entry takes a region code as
// selector; every other field ignores it.
type Registry struct {
	mu     sync.RWMutex
	fields map[string]Field
	ie     *IETable
}

// NewRegistry registers every built-in field, with numeric and date fields
// configured for loc.
func NewRegistry(loc locale.Format) (*Registry, error) {
	r := &Registry{fields: make(map[string]Field), ie: DefaultIETable()}

	number, err := NewNumber(WithLocale(loc), WithNegative())
	if err != nil {
		return nil, err
	}
	money, err := NewMoney(WithLocale(loc), WithNegative())
	if err != nil {
		return nil, err
	}
	percentage, err := NewPercentage(WithLocale(loc))
	if err != nil {
		return nil, err
	}
	scientific, err := NewScientificNotation(WithLocale(loc))
	if err != nil {
		return nil, err
	}
	date, err := NewDate(loc.DateLayout)
	if err != nil {
		return nil, err
	}

	builtins := []Field{
		CEP(), CPF(), CNPJ(), CPFCNPJ(), Phone(), Boleto(), NFe(), CarPlate(),
		CreditCard(), Time(false), Time(true),
		number, money, percentage, scientific, date,
	}
	for _, f := range builtins {
		if err := r.Register(f); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds f under its name.
func (r *Registry) Register(f Field) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := f.Name()
	if _, ok := r.fields[name]; ok || name == ieName {
		return fmt.Errorf("%w: %s", ErrDuplicateField, name)
	}
	r.fields[name] = f
	return nil
}

// Lookup returns the named field. For "ie" the selector is the region code.
func (r *Registry) Lookup(name, selector string) (Field, error) {
	if name == ieName {
		return r.ie.Field(selector), nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.fields[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	return f, nil
}

// Names lists every field name, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.fields)+1)
	for name := range r.fields {
		names = append(names, name)
	}
	names = append(names, ieName)
	slices.Sort(names)
	return names
}

// Regions lists the region codes accepted by the "ie" field.
func (r *Registry) Regions() []string {
	return r.ie.Regions()
}
