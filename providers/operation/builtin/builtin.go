package builtin

import "github.com/leofalp/opcalc/providers/operation"

// Operations returns the built-in operations in the order they appear in
// the interactive menu. Each call returns a new slice.
func Operations() []*operation.Operation {
	ops := make([]*operation.Operation, 0, 33)
	ops = append(ops, arithmetic()...)
	ops = append(ops, trigonometry()...)
	ops = append(ops, circle()...)
	ops = append(ops, combinatorics()...)
	ops = append(ops, logarithms()...)
	ops = append(ops, angles()...)
	ops = append(ops, algebra()...)
	ops = append(ops, volumes()...)
	return ops
}

// NewCatalog returns a catalog seeded with [Operations].
func NewCatalog() *operation.Catalog {
	return operation.NewCatalogWithOperations(Operations()...)
}
