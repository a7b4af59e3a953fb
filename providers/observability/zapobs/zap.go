// Package zapobs provides an observability.Provider backed by go.uber.org/zap.
//
// Use [New] at runtime and [NewWithLogger] when the *zap.Logger is built
// elsewhere, for example from zaptest/observer in tests.
package zapobs

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/leofalp/opcalc/providers/observability"
)

// Config selects the level, encoding and destination of the zap logger built
// by [New].
type Config struct {
	Level zapcore.Level
	// Encoding is "json" or "console".
	Encoding string
	// Output defaults to stderr.
	Output io.Writer
}

// New returns an Observer for cfg.
func New(cfg Config) (*Observer, error) {
	if cfg.Output != nil {
		var encoder zapcore.Encoder
		switch cfg.Encoding {
		case "", "json":
			encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		case "console":
			encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		default:
			return nil, fmt.Errorf("zapobs: unknown encoding %q", cfg.Encoding)
		}
		core := zapcore.NewCore(encoder, zapcore.AddSync(cfg.Output), cfg.Level)
		return NewWithLogger(zap.New(core)), nil
	}

	return NewWith(func(zc *zap.Config) {
		zc.Level.SetLevel(cfg.Level)
		if cfg.Encoding != "" {
			zc.Encoding = cfg.Encoding
		}
	})
}

// NewWith returns an Observer from a modified production [zap.Config].
func NewWith(cfgFn func(*zap.Config)) (*Observer, error) {
	zc := zap.NewProductionConfig()
	zc.OutputPaths = []string{"stderr"}
	zc.Sampling = nil
	cfgFn(&zc)
	if zc.Encoding == "console" {
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, err
	}
	return NewWithLogger(logger), nil
}

// NewWithLogger wraps an existing logger.
func NewWithLogger(logger *zap.Logger) *Observer {
	return &Observer{
		logger:   logger,
		counters: make(map[string]*zapCounter),
		hists:    make(map[string]*zapHistogram),
	}
}

// Observer implements observability.Provider with a *zap.Logger.
type Observer struct {
	logger *zap.Logger

	mu       sync.Mutex
	counters map[string]*zapCounter
	hists    map[string]*zapHistogram
}

var _ observability.Provider = (*Observer)(nil)

// Sync flushes buffered log entries.
func (o *Observer) Sync() error {
	return o.logger.Sync()
}

func (o *Observer) StartSpan(ctx context.Context, name string, attrs ...observability.Attribute) (context.Context, observability.Span) {
	if ctx == nil {
		ctx = context.Background()
	}
	span := &zapSpan{
		logger: o.logger.With(zap.String("span", name)),
		start:  time.Now(),
		attrs:  attrs,
	}
	span.logger.Debug("Span started", append(fields(attrs), zap.String("event", "span.start"))...)
	return observability.ContextWithSpan(ctx, span), span
}

type zapSpan struct {
	logger *zap.Logger
	start  time.Time

	mu    sync.Mutex
	attrs []observability.Attribute
}

func (s *zapSpan) End() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logger.Debug("Span ended", append(fields(s.attrs),
		zap.String("event", "span.end"),
		zap.Duration("duration", time.Since(s.start)),
	)...)
}

func (s *zapSpan) SetAttributes(attrs ...observability.Attribute) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attrs = append(s.attrs, attrs...)
}

func (s *zapSpan) SetStatus(code observability.StatusCode, description string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attrs = append(s.attrs, observability.String(observability.AttrStatus, code.String()))
	if description != "" {
		s.attrs = append(s.attrs, observability.String(observability.AttrStatusDescription, description))
	}
}

func (s *zapSpan) RecordError(err error) {
	if err == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attrs = append(s.attrs, observability.Error(err))
	s.logger.Debug("Span error", zap.String("event", "error"), zap.Error(err))
}

func (s *zapSpan) AddEvent(name string, attrs ...observability.Attribute) {
	s.logger.Debug("Span event", append(fields(attrs), zap.String("event", name))...)
}

func (o *Observer) Counter(name string) observability.Counter {
	o.mu.Lock()
	defer o.mu.Unlock()
	c, ok := o.counters[name]
	if !ok {
		c = &zapCounter{name: name, logger: o.logger}
		o.counters[name] = c
	}
	return c
}

func (o *Observer) Histogram(name string) observability.Histogram {
	o.mu.Lock()
	defer o.mu.Unlock()
	h, ok := o.hists[name]
	if !ok {
		h = &zapHistogram{name: name, logger: o.logger}
		o.hists[name] = h
	}
	return h
}

// CounterValue returns the running total of the named counter.
func (o *Observer) CounterValue(name string) int64 {
	o.mu.Lock()
	c, ok := o.counters[name]
	o.mu.Unlock()
	if !ok {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

type zapCounter struct {
	name   string
	logger *zap.Logger
	mu     sync.Mutex
	value  int64
}

func (c *zapCounter) Add(_ context.Context, value int64, attrs ...observability.Attribute) {
	c.mu.Lock()
	c.value += value
	current := c.value
	c.mu.Unlock()

	c.logger.Debug("Counter", append(fields(attrs),
		zap.String("metric", c.name),
		zap.Int64("value", current),
		zap.Int64("delta", value),
	)...)
}

type zapHistogram struct {
	name   string
	logger *zap.Logger
}

func (h *zapHistogram) Record(_ context.Context, value float64, attrs ...observability.Attribute) {
	h.logger.Debug("Histogram", append(fields(attrs),
		zap.String("metric", h.name),
		zap.Float64("value", value),
	)...)
}

func (o *Observer) Debug(_ context.Context, msg string, attrs ...observability.Attribute) {
	o.logger.Debug(msg, fields(attrs)...)
}

func (o *Observer) Info(_ context.Context, msg string, attrs ...observability.Attribute) {
	o.logger.Info(msg, fields(attrs)...)
}

func (o *Observer) Warn(_ context.Context, msg string, attrs ...observability.Attribute) {
	o.logger.Warn(msg, fields(attrs)...)
}

func (o *Observer) Error(_ context.Context, msg string, attrs ...observability.Attribute) {
	o.logger.Error(msg, fields(attrs)...)
}

func fields(attrs []observability.Attribute) []zap.Field {
	out := make([]zap.Field, 0, len(attrs)+3)
	for _, attr := range attrs {
		out = append(out, zap.Any(attr.Key, attr.Value))
	}
	return out
}
