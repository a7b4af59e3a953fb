package builtin

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leofalp/opcalc/providers/operation"
)

func TestOperations_CatalogShape(t *testing.T) {
	t.Parallel()

	want := []struct {
		symbol string
		arity  operation.Arity
	}{
		{"+", operation.AtLeast(1)},
		{"-", operation.AtLeast(1)},
		{"*", operation.AtLeast(1)},
		{"/", operation.AtLeast(1)},
		{"**", operation.Exactly(2)},
		{"%", operation.AtLeast(1)},
		{"sq", operation.Exactly(1)},
		{"!", operation.Exactly(1)},
		{"per", operation.Exactly(2)},
		{"sin", operation.Exactly(1)},
		{"cos", operation.Exactly(1)},
		{"tan", operation.Exactly(1)},
		{"sinM", operation.Exactly(1)},
		{"cosM", operation.Exactly(1)},
		{"tanM", operation.Exactly(1)},
		{"rad", operation.Exactly(1)},
		{"dia", operation.Exactly(1)},
		{"cir", operation.Exactly(1)},
		{"nCr", operation.Exactly(2)},
		{"bD", operation.Exactly(4)},
		{"pD", operation.Exactly(2)},
		{"logDeB", operation.Exactly(1)},
		{"logWB", operation.Exactly(2)},
		{"deg-rad", operation.Exactly(1)},
		{"rad-deg", operation.Exactly(1)},
		{"mag", operation.Exactly(2)},
		{"dis", operation.Exactly(3)},
		{"quadP", operation.Exactly(3)},
		{"quadM", operation.Exactly(3)},
		{"volCo", operation.Exactly(2)},
		{"volCu", operation.Exactly(3)},
		{"volS", operation.Exactly(1)},
		{"volCy", operation.Exactly(2)},
	}

	ops := Operations()
	require.Len(t, ops, len(want))
	for i, op := range ops {
		assert.Equal(t, want[i].symbol, op.Symbol, "menu order")
		assert.Equal(t, want[i].arity, op.Arity, "arity of %s", op.Symbol)
		assert.NotEmpty(t, op.Description, "description of %s", op.Symbol)
		if !op.Arity.Variadic() {
			assert.Len(t, op.Operands, op.Arity.Min, "operand names of %s", op.Symbol)
		}
	}

	assert.Equal(t, len(want), NewCatalog().Size())
}

func TestOperations_Formulas(t *testing.T) {
	t.Parallel()

	tests := []struct {
		symbol   string
		operands []float64
		want     float64
	}{
		{"+", []float64{1, 2}, 3},
		{"+", []float64{1.5, 2.5, -1}, 3},
		{"+", []float64{7}, 7},
		{"-", []float64{10, 3, 2}, 5},
		{"-", []float64{4}, 4},
		{"*", []float64{2, 3, 4}, 24},
		{"/", []float64{100, 5, 2}, 10},
		{"/", []float64{1, 4}, 0.25},
		{"**", []float64{2, 10}, 1024},
		{"**", []float64{9, 0.5}, 3},
		{"%", []float64{17, 5}, 2},
		{"%", []float64{100, 7, 3}, 2},
		{"%", []float64{-7, 3}, 2},
		{"%", []float64{7, -3}, -2},
		{"sq", []float64{16}, 4},
		{"!", []float64{3}, 6},
		{"!", []float64{0}, 1},
		{"!", []float64{10}, 3628800},
		{"per", []float64{20, 50}, 10},
		{"sin", []float64{math.Pi / 2}, 1},
		{"cos", []float64{0}, 1},
		{"tan", []float64{math.Pi / 4}, 1},
		{"sinM", []float64{1}, math.Pi / 2},
		{"cosM", []float64{1}, 0},
		{"tanM", []float64{1}, math.Pi / 4},
		{"rad", []float64{2 * math.Pi}, 1},
		{"dia", []float64{10}, 5},
		{"cir", []float64{1}, 2 * math.Pi},
		{"nCr", []float64{5, 2}, 10},
		{"nCr", []float64{52, 5}, 2598960},
		{"nCr", []float64{4, 0}, 1},
		{"nCr", []float64{4, 4}, 1},
		{"bD", []float64{10, 0.5, 2, 4}, 10 * 0.25 * 0.25},
		{"pD", []float64{2, 3}, 8 * math.Exp(-2) / 6},
		{"pD", []float64{3, 0}, math.Exp(-3)},
		{"logDeB", []float64{math.E}, 1},
		{"logWB", []float64{8, 2}, 3},
		{"logWB", []float64{1000, 10}, 3},
		{"deg-rad", []float64{180}, math.Pi},
		{"rad-deg", []float64{math.Pi / 2}, 90},
		{"mag", []float64{3, 4}, 5},
		{"dis", []float64{5, 1, 6}, 1},
		{"quadP", []float64{-3, 1, 2}, 2},
		{"quadM", []float64{-3, 1, 2}, 1},
		{"quadP", []float64{2, 1, 1}, -1},
		{"volCo", []float64{3, 4}, 12 * math.Pi},
		{"volCu", []float64{2, 3, 4}, 24},
		{"volS", []float64{3}, 36 * math.Pi},
		{"volCy", []float64{2, 5}, 20 * math.Pi},
	}

	catalog := NewCatalog()
	for _, tc := range tests {
		tc := tc
		t.Run(tc.symbol, func(t *testing.T) {
			t.Parallel()

			op, ok := catalog.Get(tc.symbol)
			require.True(t, ok)

			got, err := op.Apply(tc.operands)
			require.NoError(t, err)
			if tc.want == 0 {
				assert.InDelta(t, tc.want, got, 1e-12)
				return
			}
			assert.InEpsilon(t, tc.want, got, 1e-9)
		})
	}
}

func TestOperations_DomainErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		symbol   string
		operands []float64
	}{
		{"divide by zero", "/", []float64{1, 0}},
		{"divide by later zero", "/", []float64{1, 2, 0}},
		{"modulo by zero", "%", []float64{5, 0}},
		{"negative square root", "sq", []float64{-1}},
		{"negative factorial", "!", []float64{-1}},
		{"fractional factorial", "!", []float64{2.5}},
		{"huge factorial", "!", []float64{171}},
		{"arcsine above one", "sinM", []float64{1.5}},
		{"arccosine below minus one", "cosM", []float64{-2}},
		{"r greater than n", "nCr", []float64{2, 5}},
		{"negative n", "nCr", []float64{-1, 0}},
		{"fractional r", "nCr", []float64{5, 1.5}},
		{"poisson negative x", "pD", []float64{2, -1}},
		{"log of zero", "logDeB", []float64{0}},
		{"log of negative", "logDeB", []float64{-3}},
		{"log base one", "logWB", []float64{8, 1}},
		{"log base negative", "logWB", []float64{8, -2}},
		{"log with base of zero", "logWB", []float64{0, 2}},
		{"quadratic with a zero", "quadP", []float64{1, 0, 1}},
		{"quadratic negative discriminant", "quadM", []float64{1, 1, 1}},
		{"power overflow", "**", []float64{10, 400}},
		{"complex power", "**", []float64{-8, 1.0 / 3}},
	}

	catalog := NewCatalog()
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			op, ok := catalog.Get(tc.symbol)
			require.True(t, ok)

			_, err := op.Apply(tc.operands)
			require.Error(t, err)
			assert.ErrorIs(t, err, operation.ErrDomain)

			var domainErr *operation.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, tc.symbol, domainErr.Symbol)
		})
	}
}

func TestOperations_ArityErrors(t *testing.T) {
	t.Parallel()

	catalog := NewCatalog()
	for _, op := range catalog.Operations() {
		_, err := op.Apply(nil)
		assert.ErrorIs(t, err, operation.ErrArity, "%s with no operands", op.Symbol)

		if !op.Arity.Variadic() {
			tooMany := make([]float64, op.Arity.Max+1)
			_, err = op.Apply(tooMany)
			assert.ErrorIs(t, err, operation.ErrArity, "%s with too many operands", op.Symbol)
		}
	}
}

func TestQuadraticOperandOrder(t *testing.T) {
	t.Parallel()

	op, ok := NewCatalog().Get("quadP")
	require.True(t, ok)
	require.Len(t, op.Operands, 3)
	assert.Equal(t, "b", op.Operands[0].Name)
	assert.Equal(t, "a", op.Operands[1].Name)
	assert.Equal(t, "c", op.Operands[2].Name)
}
