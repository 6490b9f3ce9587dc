package telemetry_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/hoop/internal/adapters/telemetry"
	"go.trai.ch/hoop/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func setupRecorder(t *testing.T) (*tracetest.SpanRecorder, *sdktrace.TracerProvider) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return sr, tp
}

func TestOTelTracer_SpanAttributes(t *testing.T) {
	sr, tp := setupRecorder(t)
	tracer := telemetry.NewOTelTracer(tp)

	_, span := tracer.Start(t.Context(), "analyze")
	span.SetAttribute("files", 12)
	span.SetAttribute("algorithm", "sha256")
	span.SetAttribute("cached", true)
	span.SetAttribute("seconds", 1.5)
	span.SetAttribute("count64", int64(7))
	span.SetAttribute("labels", []string{"A", "B"})
	span.SetAttribute("other", struct{ X int }{3})
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "analyze", spans[0].Name())

	attrs := make(map[attribute.Key]attribute.Value)
	for _, kv := range spans[0].Attributes() {
		attrs[kv.Key] = kv.Value
	}
	assert.Equal(t, int64(12), attrs["files"].AsInt64())
	assert.Equal(t, "sha256", attrs["algorithm"].AsString())
	assert.True(t, attrs["cached"].AsBool())
	assert.InDelta(t, 1.5, attrs["seconds"].AsFloat64(), 1e-9)
	assert.Equal(t, int64(7), attrs["count64"].AsInt64())
	assert.Equal(t, []string{"A", "B"}, attrs["labels"].AsStringSlice())
	assert.Equal(t, "{3}", attrs["other"].AsString())
}

func TestOTelTracer_RecordError(t *testing.T) {
	sr, tp := setupRecorder(t)
	tracer := telemetry.NewOTelTracer(tp)

	_, span := tracer.Start(t.Context(), "place")
	span.RecordError(nil)
	span.RecordError(errors.New("disk full"))
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "disk full", spans[0].Status().Description)
	require.Len(t, spans[0].Events(), 1)
}

func TestOTelTracer_NestedSpans(t *testing.T) {
	sr, tp := setupRecorder(t)
	tracer := telemetry.NewOTelTracer(tp)

	ctx, parent := tracer.Start(t.Context(), "plan")
	_, child := tracer.Start(ctx, "scan")
	child.End()
	parent.End()

	spans := sr.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "scan", spans[0].Name())
	assert.Equal(t, spans[1].SpanContext().SpanID(), spans[0].Parent().SpanID())
}

func TestTimingProcessor_LogsAtDebug(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	var logged string
	mockLogger.EXPECT().Debug(gomock.Any()).Do(func(msg string) { logged = msg }).Times(1)

	tp := telemetry.NewProvider(mockLogger)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	_, span := telemetry.NewOTelTracer(tp).Start(t.Context(), "balance")
	span.SetAttribute("workers", 4)
	span.RecordError(errors.New("unassigned"))
	span.End()

	assert.True(t, strings.HasPrefix(logged, "balance took "), logged)
	assert.Contains(t, logged, "workers=4")
	assert.Contains(t, logged, `error="unassigned"`)
}

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()

	ctx := t.Context()
	got, span := tracer.Start(ctx, "anything")
	assert.Equal(t, ctx, got)

	assert.NotPanics(t, func() {
		span.SetAttribute("k", "v")
		span.RecordError(errors.New("ignored"))
		span.End()
	})
}
