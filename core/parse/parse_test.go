package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []float64
	}{
		{"spaces", "1 2 3", []float64{1, 2, 3}},
		{"commas", "1,2,3", []float64{1, 2, 3}},
		{"commas and spaces", " 1, 2.5 ,-3 ", []float64{1, 2.5, -3}},
		{"semicolons", "4;5", []float64{4, 5}},
		{"single", "42", []float64{42}},
		{"exponent", "1e3", []float64{1000}},
		{"json list", "[1, 2, 3]", []float64{1, 2, 3}},
		{"missing bracket", "[1, 2, 3", []float64{1, 2, 3}},
		{"trailing comma", "[1, 2,]", []float64{1, 2}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Operands(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOperands_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		target error
	}{
		{"empty", "", ErrEmpty},
		{"blank", "   ", ErrEmpty},
		{"only separators", ", ,", ErrEmpty},
		{"empty list", "[]", ErrEmpty},
		{"word", "abc", ErrInvalidNumber},
		{"mixed", "1 two 3", ErrInvalidNumber},
		{"infinity", "1 inf", ErrInvalidNumber},
		{"word in list", `["a", 1]`, ErrInvalidNumber},
		{"null in list", "[1, null]", ErrInvalidNumber},
		{"only null", "[null]", ErrInvalidNumber},
		{"null after repair", "[5, null", ErrInvalidNumber},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Operands(tt.input)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestNumber(t *testing.T) {
	t.Parallel()

	got, err := Number("  -2.5\n")
	require.NoError(t, err)
	assert.Equal(t, -2.5, got)

	for _, bad := range []string{"", "x", "NaN", "+Inf", "1,5"} {
		_, err := Number(bad)
		assert.ErrorIs(t, err, ErrInvalidNumber, bad)
	}
}
