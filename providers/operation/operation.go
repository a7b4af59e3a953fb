package operation

import (
	"errors"
	"fmt"
	"math"
)

// Unbounded marks an [Arity] without an upper limit.
const Unbounded = -1

// Arity describes how many operands an operation accepts.
// Max equal to [Unbounded] means the operation is variadic.
type Arity struct {
	Min int
	Max int
}

// Exactly returns the arity of an operation that takes exactly n operands.
func Exactly(n int) Arity {
	return Arity{Min: n, Max: n}
}

// AtLeast returns the arity of a variadic operation that needs n operands or more.
func AtLeast(n int) Arity {
	return Arity{Min: n, Max: Unbounded}
}

// Variadic reports whether the arity has no upper bound.
func (a Arity) Variadic() bool {
	return a.Max == Unbounded
}

// Accepts reports whether n operands satisfy the arity.
func (a Arity) Accepts(n int) bool {
	if n < a.Min {
		return false
	}
	return a.Variadic() || n <= a.Max
}

// String renders the arity the way it is shown in menus and error messages.
func (a Arity) String() string {
	switch {
	case a.Variadic():
		return fmt.Sprintf("at least %d", a.Min)
	case a.Min == a.Max:
		return fmt.Sprintf("%d", a.Min)
	default:
		return fmt.Sprintf("%d to %d", a.Min, a.Max)
	}
}

// Func is the numeric body of an operation. It only ever receives operand
// lists that satisfy the arity of the owning [Operation].
type Func func(operands []float64) (float64, error)

// Operand names a positional operand of a fixed-arity operation.
type Operand struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Operation binds a symbol to a numeric function. Operations are immutable
// once built; a [Catalog] shares them between clones.
type Operation struct {
	Symbol      string
	Description string
	Arity       Arity
	// Operands is populated for fixed-arity operations built with [NewTyped].
	Operands []Operand
	Function Func
}

// operationOptions holds optional configuration for [New] and [NewTyped].
type operationOptions struct {
	Description string
}

// WithDescription sets the text shown next to the symbol in menus and listings.
func WithDescription(description string) func(*operationOptions) {
	return func(o *operationOptions) {
		o.Description = description
	}
}

// New builds an operation whose body works on the raw operand slice. It is
// meant for variadic operations such as sums and products.
//
// Example:
//
//	sum := operation.New("+", operation.AtLeast(1), func(operands []float64) (float64, error) {
//	    total := 0.0
//	    for _, v := range operands {
//	        total += v
//	    }
//	    return total, nil
//	}, operation.WithDescription("addition"))
func New(symbol string, arity Arity, function Func, options ...func(*operationOptions)) *Operation {
	opts := &operationOptions{}
	for _, option := range options {
		option(opts)
	}

	return &Operation{
		Symbol:      symbol,
		Description: opts.Description,
		Arity:       arity,
		Function:    function,
	}
}

// NewTyped builds a fixed-arity operation from a function over an input
// struct. Operand i fills the i-th exported float64 field of I, and the
// arity is the number of such fields. Field tags name the operands:
//
//	type quadraticInput struct {
//	    B float64 `operand:"b" help:"linear coefficient"`
//	    A float64 `operand:"a" help:"quadratic coefficient"`
//	    C float64 `operand:"c" help:"constant term"`
//	}
//
// NewTyped panics when I is not a struct of float64 fields, since that is a
// programming error in the catalog rather than a runtime condition.
func NewTyped[I any](symbol string, function func(input I) (float64, error), options ...func(*operationOptions)) *Operation {
	b := newBinder[I]()

	op := New(symbol, Exactly(len(b.fields)), func(operands []float64) (float64, error) {
		return function(b.bind(operands))
	}, options...)
	op.Operands = b.operands
	return op
}

// Apply checks the operand count, runs the body and validates the result.
// Domain errors raised by the body are stamped with the operation symbol.
// A NaN or infinite result is reported as a [DomainError] as well, so callers
// only ever see finite numbers.
func (o *Operation) Apply(operands []float64) (float64, error) {
	if !o.Arity.Accepts(len(operands)) {
		return 0, &ArityError{Symbol: o.Symbol, Want: o.Arity, Got: len(operands)}
	}

	result, err := o.Function(operands)
	if err != nil {
		var domainErr *DomainError
		if errors.As(err, &domainErr) && domainErr.Symbol == "" {
			domainErr.Symbol = o.Symbol
		}
		return 0, err
	}

	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0, &DomainError{Symbol: o.Symbol, Reason: fmt.Sprintf("result %v is not a finite number", result)}
	}
	return result, nil
}
