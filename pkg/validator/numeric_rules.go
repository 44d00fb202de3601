package validator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MinNumber validates value >= limit. An empty or unparsable limit always
// passes, so a field whose bound is not configured yet stays valid.
func MinNumber(field string, value float64, limit string) Rule {
	bound, ok := parseLimit(limit)
	return Rule{
		Check: func() bool {
			return !ok || value >= bound
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %s", limit),
			TranslationKey: "validation.min",
			TranslationValues: map[string]any{
				"field": field,
				"min":   limit,
			},
		},
	}
}

// MaxNumber validates value <= limit with the same limit semantics as MinNumber.
func MaxNumber(field string, value float64, limit string) Rule {
	bound, ok := parseLimit(limit)
	return Rule{
		Check: func() bool {
			return !ok || value <= bound
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %s", limit),
			TranslationKey: "validation.max",
			TranslationValues: map[string]any{
				"field": field,
				"max":   limit,
			},
		},
	}
}

// Finite rejects values that overflowed to infinity or are NaN.
func Finite(field string, value float64) Rule {
	return Rule{
		Check: func() bool {
			return !math.IsInf(value, 0) && !math.IsNaN(value) && math.Abs(value) < math.MaxFloat64
		},
		Error: ValidationError{
			Field:          field,
			Message:        "number is out of range",
			TranslationKey: "validation.finite",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func parseLimit(limit string) (float64, bool) {
	limit = strings.TrimSpace(limit)
	if limit == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(limit, 64)
	if err != nil || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}
