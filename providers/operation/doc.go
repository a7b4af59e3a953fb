// Package operation defines the unit of work evaluated by opcalc: a symbol
// bound to a pure numeric function over an ordered list of operands.
//
// An [Operation] carries its symbol, a human-readable description, the
// [Arity] it accepts and, for fixed-arity operations, named [Operand]
// descriptors. Operations are built with [New] for variadic bodies or with
// [NewTyped], which binds the operand list onto the exported float64 fields
// of an input struct so that the body never indexes a raw slice.
//
// The [Catalog] type is the symbol table. It supports prototype-style
// extension through [Catalog.Clone]: a clone starts with the same symbols and
// evolves independently afterwards.
//
// Failures are reported with [UnknownOperationError], [ArityError] and
// [DomainError]; each matches its sentinel ([ErrUnknownOperation],
// [ErrArity], [ErrDomain]) through [errors.Is].
package operation
