// Package builtin provides the default operation catalog of opcalc:
// arithmetic, trigonometry, logarithms, combinatorics, probability
// distributions and plane/solid geometry.
//
// [Operations] returns the operations in menu order; [NewCatalog] wraps them
// in a fresh [operation.Catalog]. Fixed-arity operations bind their operands
// to small input structs, so the operand order documented on each struct is
// the order in which callers must supply values.
package builtin
