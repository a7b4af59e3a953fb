package zapobs

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/leofalp/opcalc/providers/observability"
)

func testObserved(lvl zapcore.Level) (*Observer, *observer.ObservedLogs) {
	core, logs := observer.New(lvl)
	return NewWithLogger(zap.New(core)), logs
}

func TestObserver_Logging(t *testing.T) {
	t.Parallel()

	o, logs := testObserved(zapcore.InfoLevel)
	ctx := context.Background()

	o.Debug(ctx, "hidden")
	o.Info(ctx, "calculated", observability.String(observability.AttrCalcSymbol, "+"))
	o.Warn(ctx, "careful")
	o.Error(ctx, "failed", observability.Error(errors.New("boom")))

	require.Equal(t, 3, logs.Len())
	entries := logs.All()
	assert.Equal(t, "calculated", entries[0].Message)
	assert.Equal(t, "+", entries[0].ContextMap()[observability.AttrCalcSymbol])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "boom", entries[2].ContextMap()[observability.AttrError])
}

func TestObserver_Span(t *testing.T) {
	t.Parallel()

	o, logs := testObserved(zapcore.DebugLevel)

	ctx, span := o.StartSpan(context.Background(), observability.SpanCalculate,
		observability.String(observability.AttrCalcSymbol, "/"))
	assert.Same(t, span, observability.SpanFromContext(ctx))

	span.AddEvent(observability.EventResultPublished)
	span.RecordError(errors.New("division by zero"))
	span.RecordError(nil)
	span.SetStatus(observability.StatusError, "division by zero")
	span.End()

	assert.Equal(t, 1, logs.FilterMessage("Span started").Len())
	assert.Equal(t, 1, logs.FilterMessage("Span event").Len())
	assert.Equal(t, 1, logs.FilterMessage("Span error").Len())

	ended := logs.FilterMessage("Span ended").All()
	require.Len(t, ended, 1)
	fields := ended[0].ContextMap()
	assert.Equal(t, observability.SpanCalculate, fields["span"])
	assert.Equal(t, "/", fields[observability.AttrCalcSymbol])
	assert.Equal(t, "error", fields[observability.AttrStatus])
	assert.Equal(t, "division by zero", fields[observability.AttrStatusDescription])
}

func TestObserver_Metrics(t *testing.T) {
	t.Parallel()

	o, logs := testObserved(zapcore.DebugLevel)
	ctx := context.Background()

	o.Counter(observability.MetricErrors).Add(ctx, 1)
	o.Counter(observability.MetricErrors).Add(ctx, 1)
	o.Histogram(observability.MetricDuration).Record(ctx, 1.5)

	assert.Equal(t, int64(2), o.CounterValue(observability.MetricErrors))
	assert.Zero(t, o.CounterValue("missing"))
	assert.Equal(t, 2, logs.FilterMessage("Counter").Len())
	assert.Equal(t, 1, logs.FilterField(zap.String("metric", observability.MetricDuration)).Len())
}

func TestNew(t *testing.T) {
	t.Parallel()

	o, err := New(Config{Level: zapcore.WarnLevel, Encoding: "console"})
	require.NoError(t, err)
	assert.NotNil(t, o)

	_, err = New(Config{Encoding: "xml"})
	assert.Error(t, err)
}

func TestNew_Output(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	o, err := New(Config{Level: zapcore.InfoLevel, Encoding: "json", Output: &buf})
	require.NoError(t, err)

	o.Debug(context.Background(), "hidden")
	o.Info(context.Background(), "shown", observability.Int(observability.AttrCatalogSize, 33))
	require.NoError(t, o.Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"catalog.size":33`)

	_, err = New(Config{Encoding: "xml", Output: &buf})
	assert.Error(t, err)
}
