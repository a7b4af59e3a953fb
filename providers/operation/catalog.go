package operation

import (
	"slices"
	"sync"
)

// Catalog maps operation symbols to operations. Symbols are case-sensitive
// ("sin" and "sinM" are different operations) and keep the order in which
// they were first registered, which is the order menus list them in.
type Catalog struct {
	mu         sync.RWMutex
	operations map[string]*Operation
	order      []string
}

// NewCatalog creates a new empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		operations: make(map[string]*Operation),
	}
}

// NewCatalogWithOperations creates a new catalog pre-populated with ops.
func NewCatalogWithOperations(ops ...*Operation) *Catalog {
	catalog := NewCatalog()
	catalog.Register(ops...)
	return catalog
}

// Register adds operations to the catalog, keyed by their symbol.
// An operation whose symbol is already present replaces the previous one
// and keeps its position. Nil operations are ignored.
func (c *Catalog) Register(ops ...*Operation) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, op := range ops {
		if op == nil {
			continue
		}
		if _, exists := c.operations[op.Symbol]; !exists {
			c.order = append(c.order, op.Symbol)
		}
		c.operations[op.Symbol] = op
	}
}

// Get retrieves an operation by symbol.
// Returns the operation and true if found, nil and false otherwise.
func (c *Catalog) Get(symbol string) (*Operation, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	op, exists := c.operations[symbol]
	return op, exists
}

// Has checks if an operation with the given symbol exists.
func (c *Catalog) Has(symbol string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, exists := c.operations[symbol]
	return exists
}

// Remove deletes the operation registered under symbol.
// Returns true if it was found and removed, false otherwise.
func (c *Catalog) Remove(symbol string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.operations[symbol]; !exists {
		return false
	}
	delete(c.operations, symbol)
	if i := slices.Index(c.order, symbol); i >= 0 {
		c.order = slices.Delete(c.order, i, i+1)
	}
	return true
}

// Symbols returns the registered symbols in registration order.
func (c *Catalog) Symbols() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.order)
}

// Operations returns the registered operations in registration order.
// The returned slice can be modified without affecting the catalog.
func (c *Catalog) Operations() []*Operation {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ops := make([]*Operation, 0, len(c.order))
	for _, symbol := range c.order {
		ops = append(ops, c.operations[symbol])
	}
	return ops
}

// Size returns the number of operations in the catalog.
func (c *Catalog) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.operations)
}

// Merge adds all operations from another catalog into this one.
// Symbols present in both end up bound to the operation from other.
func (c *Catalog) Merge(other *Catalog) {
	if other == nil || other == c {
		return
	}
	c.Register(other.Operations()...)
}

// Clone returns an independent catalog with the same symbol table.
// Operations are shared (they are immutable); the mapping is not, so
// registering or removing symbols on either catalog never affects the other.
func (c *Catalog) Clone() *Catalog {
	c.mu.RLock()
	defer c.mu.RUnlock()

	clone := NewCatalog()
	for symbol, op := range c.operations {
		clone.operations[symbol] = op
	}
	clone.order = slices.Clone(c.order)
	return clone
}
