package listener

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"sync"

	"github.com/leofalp/opcalc/core/broadcast"
)

// ShortestPrecision formats a result with the fewest digits that round-trip.
const ShortestPrecision = -1

// Printer writes each result on its own line.
type Printer struct {
	mu        sync.Mutex
	w         io.Writer
	precision int
}

// PrinterOption configures a Printer.
type PrinterOption func(*Printer)

// WithPrecision sets the number of decimals. A negative value selects the
// shortest representation.
func WithPrecision(precision int) PrinterOption {
	return func(p *Printer) {
		p.precision = precision
	}
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer, opts ...PrinterOption) *Printer {
	p := &Printer{w: w, precision: ShortestPrecision}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var _ broadcast.Listener = (*Printer)(nil)

// Update prints "Result: <value>". Write failures are returned to the
// broadcaster.
func (p *Printer) Update(result float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, err := fmt.Fprintf(p.w, "Result: %s\n", FormatResult(result, p.precision))
	return err
}

// FormatResult renders value with the given number of decimals, or in its
// shortest form when precision is negative. Negative zero prints as 0.
// Plain notation is used up to 1e21; beyond that, and for tiny magnitudes,
// the exponent form is shorter.
func FormatResult(value float64, precision int) string {
	if value == 0 {
		// drops the sign of -0
		value = 0
	}
	if precision >= 0 {
		return strconv.FormatFloat(value, 'f', precision, 64)
	}
	abs := math.Abs(value)
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		return strconv.FormatFloat(value, 'g', -1, 64)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
