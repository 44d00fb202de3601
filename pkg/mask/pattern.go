package mask

import (
	"fmt"
	"slices"
)

// Direction selects which end of the input a pattern is anchored to.
type Direction uint8

const (
	// Forward fills slots left to right.
	Forward Direction = iota
	// Reverse fills slots right to left, anchoring the pattern to the end of the input.
	Reverse
)

func (d Direction) String() string {
	if d == Reverse {
		return "reverse"
	}
	return "forward"
}

// Option configures Compile.
type Option func(*options)

type options struct {
	requireSlots bool
}

// WithRequireSlots rejects constant patterns that contain no slots.
func WithRequireSlots() Option {
	return func(o *options) { o.requireSlots = true }
}

// Pattern is a compiled mask. It is immutable and safe for concurrent use.
type Pattern struct {
	source    string
	dir       Direction
	tokens    []Token // source order
	seq       []Token // processing order
	repeatAt  int     // index in seq where the repeating group starts, -1 if none
	slots     int
	literals  int
	mandatory int
	kinds     []Kind
}

// Compile parses src into a Pattern.
// The returned error wraps ErrInvalidPattern.
func Compile(src string, dir Direction, opts ...Option) (*Pattern, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	runes := []rune(src)
	tokens := make([]Token, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == escapeRune {
			if i+1 == len(runes) {
				return nil, fmt.Errorf("%w: dangling escape at position %d in %q", ErrInvalidPattern, i, src)
			}
			i++
			tokens = append(tokens, Token{Literal: runes[i]})
			continue
		}
		if t, ok := placeholders[r]; ok {
			tokens = append(tokens, t)
			continue
		}
		tokens = append(tokens, Token{Literal: r})
	}

	p := &Pattern{
		source:   src,
		dir:      dir,
		tokens:   tokens,
		seq:      slices.Clone(tokens),
		repeatAt: -1,
	}
	if dir == Reverse {
		slices.Reverse(p.seq)
	}

	for i, t := range p.seq {
		if !t.IsSlot() {
			p.literals++
			continue
		}
		p.slots++
		if !t.Optional {
			p.mandatory++
		}
		if !slices.Contains(p.kinds, t.Kind) {
			p.kinds = append(p.kinds, t.Kind)
		}
		if t.Repeat && p.repeatAt < 0 {
			p.repeatAt = i
			continue
		}
		if p.repeatAt >= 0 && !t.Repeat {
			return nil, fmt.Errorf("%w: %s slot after repeating slot in %q", ErrInvalidPattern, t.Kind, src)
		}
	}

	if o.requireSlots && p.slots == 0 {
		return nil, fmt.Errorf("%w: no slots in %q", ErrInvalidPattern, src)
	}

	return p, nil
}

// MustCompile is like Compile but panics on error.
// Intended for package-level patterns known to be valid.
func MustCompile(src string, dir Direction, opts ...Option) *Pattern {
	p, err := Compile(src, dir, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the source pattern.
func (p *Pattern) String() string { return p.source }

func (p *Pattern) Direction() Direction { return p.dir }

// Tokens returns a copy of the compiled tokens in source order.
func (p *Pattern) Tokens() []Token { return slices.Clone(p.tokens) }

// SlotCount is the number of slot tokens in the pattern. For patterns without
// repeating slots it is also the clean-value capacity.
func (p *Pattern) SlotCount() int { return p.slots }

func (p *Pattern) LiteralCount() int { return p.literals }

// Bounded reports whether the pattern has a fixed capacity, i.e. no repeating slots.
func (p *Pattern) Bounded() bool { return p.repeatAt < 0 }

// Accepts reports whether any slot of the pattern accepts r.
func (p *Pattern) Accepts(r rune) bool {
	for _, k := range p.kinds {
		if k.Accepts(r) {
			return true
		}
	}
	return false
}
