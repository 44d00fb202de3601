package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputmask/pkg/fields"
	"github.com/dmitrymomot/inputmask/pkg/locale"
	"github.com/dmitrymomot/inputmask/pkg/validator"
)

func TestRun(t *testing.T) {
	ctx := context.Background()

	require.NoError(t, run(ctx, []string{"format", "cep", "12345678"}))
	require.NoError(t, run(ctx, []string{"format", "ie", "110042490114", "SP"}))

	err := run(ctx, []string{"format", "cpf", "12345678900"})
	require.Error(t, err)
	assert.True(t, validator.IsValidationError(err))

	assert.ErrorIs(t, run(ctx, nil), errUsage)
	assert.ErrorIs(t, run(ctx, []string{"format", "cep"}), errUsage)
	assert.ErrorIs(t, run(ctx, []string{"unknown"}), errUsage)
	assert.Error(t, run(ctx, []string{"format", "nope", "1"}))
}

func TestFormat(t *testing.T) {
	registry, err := fields.NewRegistry(locale.Resolve("pt-BR"))
	require.NoError(t, err)

	tests := []struct {
		name     string
		mask     string
		value    string
		selector string
		expected string
		invalid  bool
	}{
		{"negative number keeps its sign", "number", "-5", "", "-0,05\n05\n", false},
		{"money", "money", "150075", "", "R$ 1.500,75\n150075\n", false},
		{"unknown region passes through", "ie", "12.3", "ZZ", "12.3\n123\n", true},
		{"cep", "cep", "12345678", "", "12345-678\n12345678\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := format(&out, registry, tt.mask, tt.value, tt.selector)
			assert.Equal(t, tt.expected, out.String())
			if tt.invalid {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
