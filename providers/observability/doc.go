// Package observability defines the interfaces and semantic conventions used
// for tracing, metrics and structured logging throughout opcalc.
//
// The central entry point is [Provider], which composes [Tracer], [Metrics],
// and [Logger] into a single injectable dependency. An active [Provider] and
// [Span] travel through a [context.Context] with [ContextWithObserver] and
// [ContextWithSpan]; they can be retrieved with [ObserverFromContext] and
// [SpanFromContext].
//
// Two backends are bundled: slogobs (log/slog) and zapobs (go.uber.org/zap).
// The semconv.go file lists the attribute keys, span names and metric names
// that every backend receives.
package observability
