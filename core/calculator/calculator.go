package calculator

import (
	"context"
	"errors"
	"fmt"

	"github.com/leofalp/opcalc/core/broadcast"
	"github.com/leofalp/opcalc/internal/utils"
	"github.com/leofalp/opcalc/providers/observability"
	"github.com/leofalp/opcalc/providers/operation"
	"github.com/leofalp/opcalc/providers/operation/builtin"
)

// Error kinds reported in the calc.error.kind attribute.
const (
	KindUnknownOperation = "unknown_operation"
	KindArity            = "arity"
	KindDomain           = "domain"
	KindListener         = "listener"
	KindOther            = "other"
)

// Calculator evaluates operations and broadcasts their results.
type Calculator struct {
	catalog     *operation.Catalog
	broadcaster *broadcast.Broadcaster
	observer    observability.Provider
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithCatalog replaces the built-in catalog. A nil catalog is ignored.
func WithCatalog(catalog *operation.Catalog) Option {
	return func(c *Calculator) {
		if catalog != nil {
			c.catalog = catalog
		}
	}
}

// WithObserver traces every calculation and records calculation metrics.
func WithObserver(observer observability.Provider) Option {
	return func(c *Calculator) {
		c.observer = observer
	}
}

// New returns a calculator seeded with the built-in operations and no
// listeners.
func New(opts ...Option) *Calculator {
	c := &Calculator{
		broadcaster: broadcast.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.catalog == nil {
		c.catalog = builtin.NewCatalog()
	}
	return c
}

// Calculate applies the operation registered under symbol and publishes the
// result. A listener failure is returned together with the computed result;
// every other failure returns 0 and publishes nothing.
func (c *Calculator) Calculate(ctx context.Context, symbol string, operands []float64) (float64, error) {
	if c.observer == nil {
		return c.calculate(symbol, operands)
	}

	ctx, span := c.observer.StartSpan(ctx, observability.SpanCalculate,
		observability.String(observability.AttrCalcSymbol, symbol),
		observability.Int(observability.AttrCalcOperandCount, len(operands)),
	)
	defer span.End()
	ctx = observability.ContextWithObserver(ctx, c.observer)

	c.observer.Debug(ctx, "calculate",
		observability.String(observability.AttrCalcSymbol, symbol),
		observability.Float64s(observability.AttrCalcOperands, operands),
		observability.Int(observability.AttrListenerCount, c.broadcaster.Len()),
	)

	timer := utils.NewTimer()
	result, err := c.calculate(symbol, operands)
	timer.Stop()

	c.observer.Histogram(observability.MetricDuration).Record(ctx, timer.Milliseconds(),
		observability.String(observability.AttrCalcSymbol, symbol),
	)

	if err != nil {
		kind := ErrorKind(err)
		span.RecordError(err)
		span.SetAttributes(observability.String(observability.AttrCalcErrorKind, kind))
		span.SetStatus(observability.StatusError, "calculation failed")

		c.observer.Debug(ctx, "calculation failed",
			observability.Error(err),
			observability.String(observability.AttrCalcSymbol, symbol),
			observability.String(observability.AttrCalcErrorKind, kind),
			observability.Duration(observability.AttrCalcDuration, timer.GetDuration()),
		)
		c.observer.Counter(observability.MetricErrors).Add(ctx, 1,
			observability.String(observability.AttrCalcErrorKind, kind),
		)
		return result, err
	}

	span.SetAttributes(observability.Float64(observability.AttrCalcResult, result))
	span.AddEvent(observability.EventResultPublished,
		observability.Int(observability.AttrListenerCount, c.broadcaster.Len()),
	)
	span.SetStatus(observability.StatusOK, "")

	c.observer.Debug(ctx, "calculated",
		observability.String(observability.AttrCalcSymbol, symbol),
		observability.Float64(observability.AttrCalcResult, result),
		observability.Duration(observability.AttrCalcDuration, timer.GetDuration()),
	)
	c.observer.Counter(observability.MetricCalculations).Add(ctx, 1,
		observability.String(observability.AttrCalcSymbol, symbol),
	)
	return result, nil
}

func (c *Calculator) calculate(symbol string, operands []float64) (float64, error) {
	op, ok := c.catalog.Get(symbol)
	if !ok {
		return 0, &operation.UnknownOperationError{Symbol: symbol}
	}

	result, err := op.Apply(operands)
	if err != nil {
		return 0, err
	}

	if err := c.broadcaster.Publish(result); err != nil {
		return result, fmt.Errorf("publish %s result: %w", symbol, err)
	}
	return result, nil
}

// ErrorKind classifies err for logs and metrics.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, operation.ErrUnknownOperation):
		return KindUnknownOperation
	case errors.Is(err, operation.ErrArity):
		return KindArity
	case errors.Is(err, operation.ErrDomain):
		return KindDomain
	case errors.Is(err, broadcast.ErrListener):
		return KindListener
	default:
		return KindOther
	}
}

// Register adds operations, replacing any with the same symbol.
func (c *Calculator) Register(ops ...*operation.Operation) {
	c.catalog.Register(ops...)
}

// Lookup returns the operation registered under symbol.
func (c *Calculator) Lookup(symbol string) (*operation.Operation, bool) {
	return c.catalog.Get(symbol)
}

// Symbols returns the registered symbols in registration order.
func (c *Calculator) Symbols() []string {
	return c.catalog.Symbols()
}

// Operations returns the registered operations in registration order.
func (c *Calculator) Operations() []*operation.Operation {
	return c.catalog.Operations()
}

// Subscribe adds a listener for every future result.
func (c *Calculator) Subscribe(l broadcast.Listener) {
	c.broadcaster.Subscribe(l)
}

// Unsubscribe removes the first subscription equal to l.
func (c *Calculator) Unsubscribe(l broadcast.Listener) bool {
	return c.broadcaster.Unsubscribe(l)
}

// Listeners returns the number of subscriptions.
func (c *Calculator) Listeners() int {
	return c.broadcaster.Len()
}

// Clone returns a calculator with a copy of the catalog, the same observer
// and no listeners.
func (c *Calculator) Clone() *Calculator {
	return &Calculator{
		catalog:     c.catalog.Clone(),
		broadcaster: broadcast.New(),
		observer:    c.observer,
	}
}
