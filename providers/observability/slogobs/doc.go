// Package slogobs provides an observability.Provider backed by log/slog.
//
// Spans and metrics are reported as debug log records; counter totals are
// kept in memory and can be read back with [Observer.CounterValue]. Output is
// either logfmt-style text or JSON, chosen with [WithFormat] or the
// OPCALC_LOG_FORMAT environment variable. The level comes from [WithLevel] or
// OPCALC_LOG_LEVEL.
package slogobs
