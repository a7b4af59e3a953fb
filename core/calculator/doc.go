// Package calculator ties an operation catalog to a result broadcaster.
//
// A [Calculator] looks an operation up by symbol, applies it to the operands
// and publishes the result to every subscribed listener. Nothing is published
// when the symbol is unknown or the operation fails.
//
//	calc := calculator.New()
//	calc.Subscribe(listener.NewPrinter(os.Stdout))
//	result, err := calc.Calculate(ctx, "+", []float64{1, 2})
//
// [Calculator.Clone] returns an independent copy with the same operations and
// no listeners, so a caller can extend a catalog without touching the
// original.
package calculator
