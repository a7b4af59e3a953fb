package slogobs

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format represents the output format for logs.
type Format string

const (
	// FormatText is the key=value format of slog.TextHandler (default).
	FormatText Format = "text"

	// FormatJSON emits one JSON object per record, for log aggregation.
	FormatJSON Format = "json"
)

// ParseFormat parses a format string and returns the corresponding Format.
// If the format is invalid, it returns FormatText.
func ParseFormat(s string) Format {
	format, ok := LookupFormat(s)
	if !ok {
		return FormatText
	}
	return format
}

// LookupFormat is like ParseFormat but reports whether s named a known format.
func LookupFormat(s string) (Format, bool) {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "text", "":
		return FormatText, true
	case "json":
		return FormatJSON, true
	default:
		return FormatText, false
	}
}

// GetFormatFromEnv retrieves the log format from environment variables.
// It checks OPCALC_LOG_FORMAT first, then falls back to LOG_FORMAT.
func GetFormatFromEnv() Format {
	if format := os.Getenv("OPCALC_LOG_FORMAT"); format != "" {
		return ParseFormat(format)
	}
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		return ParseFormat(format)
	}
	return FormatText
}

// String returns the string representation of the Format.
func (f Format) String() string {
	return string(f)
}

// newHandler builds the slog.Handler for format.
func newHandler(format Format, w io.Writer, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if format == FormatJSON {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}
