package mask

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// ApplyResult is the outcome of applying a pattern to raw input.
type ApplyResult struct {
	// Result is the formatted value.
	Result string
	// Remaining holds the raw runes that were not consumed, in input order.
	Remaining string
	// Valid is false when a slot met a rune it does not accept.
	Valid bool
}

// Apply renders raw through the pattern. It never fails: the walk stops at the
// first slot that cannot be filled and whatever was not consumed is reported
// in Remaining. Empty input yields an empty result.
func (p *Pattern) Apply(raw string) ApplyResult {
	if raw == "" {
		return ApplyResult{Valid: true}
	}

	in := []rune(raw)
	if p.dir == Reverse {
		slices.Reverse(in)
	}

	out := make([]rune, 0, len(p.seq)+len(in))
	pos := 0
	valid := true
	// optional (non-repeating) slots only take input beyond what mandatory slots need
	spare := max(len(in)-p.mandatory, 0)

walk:
	for i := 0; i < len(p.seq); i++ {
		inGroup := p.repeatAt >= 0 && i >= p.repeatAt
		if inGroup && pos >= len(in) {
			break
		}

		t := p.seq[i]
		switch {
		case !t.IsSlot():
			out = append(out, t.Literal)
		case pos >= len(in):
			if t.Optional {
				continue
			}
			if p.dir == Reverse && t.Kind == Digit {
				out = append(out, '0')
				continue
			}
			break walk
		case t.Optional && !t.Repeat && spare == 0:
			continue
		case t.Kind.Accepts(in[pos]):
			out = append(out, t.Kind.transform(in[pos]))
			pos++
			if t.Optional && !t.Repeat {
				spare--
			}
		case t.Optional && !t.Repeat:
			continue
		default:
			valid = false
			break walk
		}

		if inGroup && i == len(p.seq)-1 && pos < len(in) {
			i = p.repeatAt - 1
		}
	}

	rest := in[pos:]
	if p.dir == Reverse {
		slices.Reverse(out)
		slices.Reverse(rest)
	}

	return ApplyResult{
		Result:    string(out),
		Remaining: string(rest),
		Valid:     valid,
	}
}

// ApplyOrEmpty returns the formatted value only.
func (p *Pattern) ApplyOrEmpty(raw string) string {
	return p.Apply(raw).Result
}

// Trim removes surrounding whitespace and then at most one trailing rune that
// no slot of the pattern accepts. It strips the connector literal left behind
// when the walk stops before the next slot.
func (p *Pattern) Trim(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	r, size := utf8.DecodeLastRuneInString(s)
	if !p.Accepts(r) {
		return s[:len(s)-size]
	}
	return s
}

// Format is the display rendering of a clean value: Trim(ApplyOrEmpty(clean)).
func Format(p *Pattern, clean string) string {
	return p.Trim(p.ApplyOrEmpty(clean))
}
