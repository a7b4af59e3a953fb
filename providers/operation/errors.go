package operation

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownOperation matches every [UnknownOperationError].
	ErrUnknownOperation = errors.New("opcalc: unknown operation")

	// ErrDomain matches every [DomainError]: an operand lies outside the
	// range where the operation is mathematically defined.
	//
	// Example:
	//
	//	if errors.Is(err, operation.ErrDomain) {
	//	    // division by zero, negative square root, ...
	//	}
	ErrDomain = errors.New("opcalc: operand outside the domain of the operation")

	// ErrArity matches every [ArityError].
	ErrArity = errors.New("opcalc: wrong number of operands")
)

// UnknownOperationError is returned when a symbol is not in the catalog.
type UnknownOperationError struct {
	Symbol string
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("invalid operation %q", e.Symbol)
}

// Is reports whether target is [ErrUnknownOperation].
func (e *UnknownOperationError) Is(target error) bool {
	return target == ErrUnknownOperation
}

// DomainError reports operands an operation cannot be evaluated on.
type DomainError struct {
	Symbol string
	Reason string
}

func (e *DomainError) Error() string {
	if e.Symbol == "" {
		return "domain error: " + e.Reason
	}
	return fmt.Sprintf("%s: domain error: %s", e.Symbol, e.Reason)
}

// Is reports whether target is [ErrDomain].
func (e *DomainError) Is(target error) bool {
	return target == ErrDomain
}

// Domain builds a [DomainError] from operation bodies. The symbol is filled in
// by [Operation.Apply].
func Domain(format string, args ...any) error {
	return &DomainError{Reason: fmt.Sprintf(format, args...)}
}

// ArityError reports an operand list whose length the operation does not accept.
type ArityError struct {
	Symbol string
	Want   Arity
	Got    int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s: expected %s operand(s), got %d", e.Symbol, e.Want, e.Got)
}

// Is reports whether target is [ErrArity].
func (e *ArityError) Is(target error) bool {
	return target == ErrArity
}
