package calculator

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leofalp/opcalc/core/broadcast"
	"github.com/leofalp/opcalc/providers/observability"
	"github.com/leofalp/opcalc/providers/observability/slogobs"
	"github.com/leofalp/opcalc/providers/operation"
)

type spy struct {
	got   []float64
	fails error
}

func (s *spy) Update(result float64) error {
	s.got = append(s.got, result)
	return s.fails
}

func TestCalculate_PublishesToListenersInOrder(t *testing.T) {
	t.Parallel()

	var order []string
	calc := New()
	calc.Subscribe(broadcast.ListenerFunc(func(r float64) error {
		order = append(order, "first")
		assert.Equal(t, 3.0, r)
		return nil
	}))
	calc.Subscribe(broadcast.ListenerFunc(func(r float64) error {
		order = append(order, "second")
		assert.Equal(t, 3.0, r)
		return nil
	}))

	result, err := calc.Calculate(context.Background(), "+", []float64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 3.0, result)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestCalculate_Examples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		symbol   string
		operands []float64
		want     float64
	}{
		{"-", []float64{10, 3, 2}, 5},
		{"*", []float64{2, 3, 4}, 24},
		{"/", []float64{100, 5, 2}, 10},
		{"**", []float64{2, 10}, 1024},
		{"sq", []float64{16}, 4},
		{"!", []float64{5}, 120},
		{"per", []float64{50, 20}, 10},
		{"nCr", []float64{5, 2}, 10},
	}

	calc := New()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.symbol, func(t *testing.T) {
			t.Parallel()
			got, err := calc.Clone().Calculate(context.Background(), tt.symbol, tt.operands)
			require.NoError(t, err)
			assert.InEpsilon(t, tt.want, got, 1e-9)
		})
	}
}

func TestCalculate_FailuresPublishNothing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		symbol   string
		operands []float64
		target   error
		kind     string
	}{
		{"unknown symbol", "zz", []float64{1}, operation.ErrUnknownOperation, KindUnknownOperation},
		{"symbols are case-sensitive", "NCR", []float64{5, 2}, operation.ErrUnknownOperation, KindUnknownOperation},
		{"division by zero", "/", []float64{1, 0}, operation.ErrDomain, KindDomain},
		{"negative square root", "sq", []float64{-4}, operation.ErrDomain, KindDomain},
		{"negative factorial", "!", []float64{-1}, operation.ErrDomain, KindDomain},
		{"too few operands", "**", []float64{2}, operation.ErrArity, KindArity},
		{"too many operands", "sq", []float64{4, 9}, operation.ErrArity, KindArity},
		{"empty variadic", "+", nil, operation.ErrArity, KindArity},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := &spy{}
			calc := New()
			calc.Subscribe(s)

			result, err := calc.Calculate(context.Background(), tt.symbol, tt.operands)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)
			assert.Equal(t, tt.kind, ErrorKind(err))
			assert.Zero(t, result)
			assert.Empty(t, s.got)
		})
	}
}

func TestCalculate_UnknownSymbolError(t *testing.T) {
	t.Parallel()

	_, err := New().Calculate(context.Background(), "zz", []float64{1})

	var unknown *operation.UnknownOperationError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "zz", unknown.Symbol)
	assert.Equal(t, `invalid operation "zz"`, err.Error())
}

func TestCalculate_ListenerFailureKeepsResult(t *testing.T) {
	t.Parallel()

	boom := errors.New("disk full")
	before := &spy{}
	failing := &spy{fails: boom}
	after := &spy{}

	calc := New()
	calc.Subscribe(before)
	calc.Subscribe(failing)
	calc.Subscribe(after)

	result, err := calc.Calculate(context.Background(), "*", []float64{3, 4})
	assert.Equal(t, 12.0, result)
	assert.ErrorIs(t, err, broadcast.ErrListener)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, KindListener, ErrorKind(err))
	assert.Equal(t, []float64{12}, before.got)
	assert.Empty(t, after.got)
}

func TestUnsubscribe(t *testing.T) {
	t.Parallel()

	s := &spy{}
	calc := New()
	calc.Subscribe(s)

	_, err := calc.Calculate(context.Background(), "+", []float64{1})
	require.NoError(t, err)
	assert.True(t, calc.Unsubscribe(s))
	_, err = calc.Calculate(context.Background(), "+", []float64{2})
	require.NoError(t, err)

	assert.Equal(t, []float64{1}, s.got)
	assert.Zero(t, calc.Listeners())
}

func TestClone_Independent(t *testing.T) {
	t.Parallel()

	s := &spy{}
	original := New()
	original.Subscribe(s)

	clone := original.Clone()
	assert.Equal(t, original.Symbols(), clone.Symbols())
	assert.Zero(t, clone.Listeners())

	clone.Register(operation.New("double", operation.Exactly(1), func(x []float64) (float64, error) {
		return 2 * x[0], nil
	}))

	got, err := clone.Calculate(context.Background(), "double", []float64{21})
	require.NoError(t, err)
	assert.Equal(t, 42.0, got)
	assert.Empty(t, s.got, "listeners are not cloned")

	_, ok := original.Lookup("double")
	assert.False(t, ok, "registrations on the clone stay on the clone")

	original.Register(operation.New("+", operation.AtLeast(1), func([]float64) (float64, error) {
		return -1, nil
	}))
	got, err = clone.Calculate(context.Background(), "+", []float64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 3.0, got, "overwrites on the original stay on the original")
}

func TestWithCatalog(t *testing.T) {
	t.Parallel()

	catalog := operation.NewCatalogWithOperations(
		operation.New("one", operation.Exactly(0), func([]float64) (float64, error) { return 1, nil }),
	)
	calc := New(WithCatalog(catalog))

	assert.Equal(t, []string{"one"}, calc.Symbols())
	require.Len(t, calc.Operations(), 1)

	_, err := calc.Calculate(context.Background(), "+", []float64{1})
	assert.ErrorIs(t, err, operation.ErrUnknownOperation)

	assert.Len(t, New(WithCatalog(nil)).Symbols(), 33)
}

func TestWithObserver(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	observer := slogobs.New(
		slogobs.WithFormat(slogobs.FormatJSON),
		slogobs.WithLevel(slog.LevelDebug),
		slogobs.WithOutput(&buf),
	)
	calc := New(WithObserver(observer))
	ctx := context.Background()

	_, err := calc.Calculate(ctx, "+", []float64{1, 2})
	require.NoError(t, err)
	_, err = calc.Calculate(ctx, "/", []float64{1, 0})
	require.Error(t, err)
	_, err = calc.Calculate(ctx, "zz", nil)
	require.Error(t, err)

	assert.Equal(t, int64(1), observer.CounterValue(observability.MetricCalculations))
	assert.Equal(t, int64(2), observer.CounterValue(observability.MetricErrors))
	assert.Equal(t, 3, observer.HistogramCount(observability.MetricDuration))

	out := buf.String()
	assert.Contains(t, out, `"msg":"calculated"`)
	assert.Contains(t, out, `"calc.error.kind":"domain"`)
	assert.Contains(t, out, `"calc.error.kind":"unknown_operation"`)
	assert.Contains(t, out, `"span":"calculator.calculate"`)
}

func TestClone_KeepsObserver(t *testing.T) {
	t.Parallel()

	observer := slogobs.New(slogobs.WithOutput(&bytes.Buffer{}))
	clone := New(WithObserver(observer)).Clone()

	_, err := clone.Calculate(context.Background(), "+", []float64{1})
	require.NoError(t, err)
	assert.Equal(t, int64(1), observer.CounterValue(observability.MetricCalculations))
}
