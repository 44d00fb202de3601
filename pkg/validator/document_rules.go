package validator

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	cnpjFirstWeights  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjSecondWeights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// ValidLength passes when value has exactly one of the given rune counts.
func ValidLength(field, value string, lengths ...int) Rule {
	return Rule{
		Check: func() bool {
			return slices.Contains(lengths, utf8.RuneCountInString(value))
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must have " + joinInts(lengths) + " characters",
			TranslationKey: "validation.length",
			TranslationValues: map[string]any{
				"field":   field,
				"lengths": lengths,
			},
		},
	}
}

// ValidCPF checks the two mod-11 check digits of an 11-digit CPF.
func ValidCPF(field, value string) Rule {
	return Rule{
		Check: func() bool {
			d, ok := digits(value, 11)
			if !ok || allSame(d) {
				return false
			}
			for n := 9; n <= 10; n++ {
				sum := 0
				for i := range n {
					sum += d[i] * (n + 1 - i)
				}
				check := sum * 10 % 11
				if check == 10 {
					check = 0
				}
				if check != d[n] {
					return false
				}
			}
			return true
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid CPF",
			TranslationKey: "validation.cpf",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidCNPJ checks the two weighted mod-11 check digits of a 14-digit CNPJ.
func ValidCNPJ(field, value string) Rule {
	return Rule{
		Check: func() bool {
			d, ok := digits(value, 14)
			if !ok || allSame(d) {
				return false
			}
			for i, weights := range [][]int{cnpjFirstWeights, cnpjSecondWeights} {
				sum := 0
				for j, w := range weights {
					sum += d[j] * w
				}
				check := 0
				if r := sum % 11; r >= 2 {
					check = 11 - r
				}
				if check != d[12+i] {
					return false
				}
			}
			return true
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid CNPJ",
			TranslationKey: "validation.cnpj",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidTime validates a clean time value: "hhmm" or, withSeconds, "hhmmss".
func ValidTime(field, value string, withSeconds bool) Rule {
	size := 4
	if withSeconds {
		size = 6
	}
	return Rule{
		Check: func() bool {
			d, ok := digits(value, size)
			if !ok {
				return false
			}
			hours := d[0]*10 + d[1]
			minutes := d[2]*10 + d[3]
			seconds := 0
			if withSeconds {
				seconds = d[4]*10 + d[5]
			}
			return hours < 24 && minutes < 60 && seconds < 60
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid time",
			TranslationKey: "validation.time",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidDate passes when value is a complete date in the given time.Parse layout.
func ValidDate(field, value, layout string) Rule {
	return Rule{
		Check: func() bool {
			if len(value) != len(layout) {
				return false
			}
			_, err := time.Parse(layout, value)
			return err == nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid date",
			TranslationKey: "validation.date",
			TranslationValues: map[string]any{
				"field":  field,
				"layout": layout,
			},
		},
	}
}

func digits(value string, size int) ([]int, bool) {
	if len(value) != size {
		return nil, false
	}
	d := make([]int, size)
	for i := range size {
		c := value[i]
		if c < '0' || c > '9' {
			return nil, false
		}
		d[i] = int(c - '0')
	}
	return d, true
}

func allSame(d []int) bool {
	for _, v := range d[1:] {
		if v != d[0] {
			return false
		}
	}
	return true
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	switch len(parts) {
	case 0:
		return "no"
	case 1:
		return parts[0]
	default:
		return fmt.Sprintf("%s or %s", strings.Join(parts[:len(parts)-1], ", "), parts[len(parts)-1])
	}
}
