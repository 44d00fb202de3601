package mask

import "strconv"

// Kind restricts which runes a slot accepts.
type Kind uint8

const (
	// Digit accepts ASCII digits.
	Digit Kind = iota + 1
	// Letter accepts ASCII letters.
	Letter
	// UpperLetter accepts ASCII letters and upper-cases them.
	UpperLetter
	// LowerLetter accepts ASCII letters and lower-cases them.
	LowerLetter
	// AlphaNumeric accepts ASCII letters and digits.
	AlphaNumeric
)

const escapeRune = '\\'

func (k Kind) String() string {
	switch k {
	case Digit:
		return "digit"
	case Letter:
		return "letter"
	case UpperLetter:
		return "upper"
	case LowerLetter:
		return "lower"
	case AlphaNumeric:
		return "alphanumeric"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Accepts reports whether r can fill a slot of this kind.
func (k Kind) Accepts(r rune) bool {
	switch k {
	case Digit:
		return isDigit(r)
	case Letter, UpperLetter, LowerLetter:
		return isLetter(r)
	case AlphaNumeric:
		return isDigit(r) || isLetter(r)
	default:
		return false
	}
}

func (k Kind) transform(r rune) rune {
	switch k {
	case UpperLetter:
		if r >= 'a' && r <= 'z' {
			return r - 'a' + 'A'
		}
	case LowerLetter:
		if r >= 'A' && r <= 'Z' {
			return r - 'A' + 'a'
		}
	}
	return r
}

// Token is a single compiled pattern position: either a literal rune or a slot.
type Token struct {
	// Literal is the rune emitted for literal tokens. Zero for slots.
	Literal rune
	// Kind is zero for literals.
	Kind Kind
	// Optional slots are skipped instead of ending the walk.
	Optional bool
	// Repeat slots cycle their group for as long as raw input remains.
	Repeat bool
}

// IsSlot reports whether the token consumes raw input.
func (t Token) IsSlot() bool {
	return t.Kind != 0
}

func (t Token) String() string {
	if !t.IsSlot() {
		return strconv.QuoteRune(t.Literal)
	}
	s := t.Kind.String()
	if t.Repeat {
		s += "*"
	} else if t.Optional {
		s += "?"
	}
	return s
}

// placeholders maps pattern glyphs to slot tokens.
var placeholders = map[rune]Token{
	'0': {Kind: Digit},
	'9': {Kind: Digit, Optional: true},
	'#': {Kind: Digit, Optional: true, Repeat: true},
	'A': {Kind: AlphaNumeric},
	'S': {Kind: Letter},
	'U': {Kind: UpperLetter},
	'L': {Kind: LowerLetter},
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
