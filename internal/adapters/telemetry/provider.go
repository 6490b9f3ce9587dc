package telemetry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/hoop/internal/core/ports"
)

// NewProvider builds an SDK tracer provider that reports every finished
// span to logger.
func NewProvider(logger ports.Logger) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewTimingProcessor(logger)),
	)
}

// TimingProcessor logs the duration of each span at debug level.
type TimingProcessor struct {
	logger ports.Logger
}

// NewTimingProcessor creates a TimingProcessor.
func NewTimingProcessor(logger ports.Logger) *TimingProcessor {
	return &TimingProcessor{logger: logger}
}

// OnStart does nothing.
func (p *TimingProcessor) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

// OnEnd logs the span name, duration and attributes.
func (p *TimingProcessor) OnEnd(s sdktrace.ReadOnlySpan) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s took %s", s.Name(), s.EndTime().Sub(s.StartTime()).Round(time.Microsecond))
	for _, kv := range s.Attributes() {
		fmt.Fprintf(&b, " %s=%s", kv.Key, kv.Value.Emit())
	}
	if st := s.Status(); st.Code == codes.Error {
		fmt.Fprintf(&b, " error=%q", st.Description)
	}
	p.logger.Debug(b.String())
}

// Shutdown does nothing.
func (p *TimingProcessor) Shutdown(context.Context) error { return nil }

// ForceFlush does nothing.
func (p *TimingProcessor) ForceFlush(context.Context) error { return nil }
