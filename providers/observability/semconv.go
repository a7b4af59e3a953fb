package observability

// Semantic conventions for observability attributes.
// These constants define standard attribute names to ensure consistency
// between the calculator, the listeners and the command line front end.

// --- Calculation Attributes ---

const (
	// AttrCalcSymbol is the operation symbol (e.g., "+", "sinM")
	AttrCalcSymbol = "calc.symbol"

	// AttrCalcOperands is the operand list
	AttrCalcOperands = "calc.operands"

	// AttrCalcOperandCount is the number of operands supplied
	AttrCalcOperandCount = "calc.operands.count"

	// AttrCalcResult is the computed value
	AttrCalcResult = "calc.result"

	// AttrCalcDuration is the time spent in the operation body and listeners
	AttrCalcDuration = "calc.duration"

	// AttrCalcErrorKind classifies failures: unknown_operation, arity, domain, listener
	AttrCalcErrorKind = "calc.error.kind"
)

// --- Catalog and Listener Attributes ---

const (
	// AttrCatalogSize is the number of registered operations
	AttrCatalogSize = "catalog.size"

	// AttrListenerCount is the number of subscribed listeners
	AttrListenerCount = "listener.count"
)

// --- Session Attributes ---

const (
	// AttrSessionID identifies one interactive session in the logs
	AttrSessionID = "session.id"

	// AttrCommand is the CLI command being executed
	AttrCommand = "cli.command"
)

// --- Generic Attributes ---

const (
	// AttrError is the error message
	AttrError = "error"

	// AttrStatus is the span status
	AttrStatus = "status"

	// AttrStatusDescription is the status description
	AttrStatusDescription = "status.description"
)

// --- Span Names ---

const (
	// SpanCalculate is the span name for a single calculation
	SpanCalculate = "calculator.calculate"
)

// --- Event Names ---

const (
	// EventResultPublished marks the delivery of a result to the listeners
	EventResultPublished = "calc.result.published"
)

// --- Metric Names ---

const (
	// MetricCalculations counts successful calculations
	MetricCalculations = "calc.calculations.total"

	// MetricErrors counts failed calculations
	MetricErrors = "calc.errors.total"

	// MetricDuration records calculation latency in milliseconds
	MetricDuration = "calc.duration_ms"
)
