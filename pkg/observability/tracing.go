// Package observability provides OpenTelemetry tracing for generation runs.
//
// Tracing is off until InitTracing installs a provider; before that every
// span is a no-op, so library code can start spans unconditionally.
package observability

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ajitpratap0/fakes/pkg/metrics"
)

const instrumentationName = "github.com/ajitpratap0/fakes"

var (
	mu     sync.RWMutex
	tracer trace.Tracer
)

// GetTracer returns the tracer installed by InitTracing, or the global
// otel tracer.
func GetTracer() trace.Tracer {
	mu.RLock()
	defer mu.RUnlock()
	if tracer != nil {
		return tracer
	}
	return otel.Tracer(instrumentationName)
}

func setTracer(t trace.Tracer) {
	mu.Lock()
	tracer = t
	mu.Unlock()
}

// Span wraps a trace span and batches its attributes until End.
type Span struct {
	span       trace.Span
	startTime  time.Time
	attributes []attribute.KeyValue
}

// NewSpan starts a span named operationName.
func NewSpan(ctx context.Context, operationName string) (context.Context, *Span) {
	ctx, span := GetTracer().Start(ctx, operationName)

	return ctx, &Span{
		span:      span,
		startTime: time.Now(),
	}
}

// SetAttribute adds an attribute to the span
func (s *Span) SetAttribute(key string, value interface{}) {
	var attr attribute.KeyValue

	switch v := value.(type) {
	case string:
		attr = attribute.String(key, v)
	case int:
		attr = attribute.Int(key, v)
	case int64:
		attr = attribute.Int64(key, v)
	case uint64:
		attr = attribute.String(key, fmt.Sprintf("%d", v))
	case float64:
		attr = attribute.Float64(key, v)
	case bool:
		attr = attribute.Bool(key, v)
	case []string:
		attr = attribute.StringSlice(key, v)
	default:
		attr = attribute.String(key, fmt.Sprintf("%v", v))
	}

	s.attributes = append(s.attributes, attr)
}

// AddEvent adds an event to the span
func (s *Span) AddEvent(name string, attrs ...attribute.KeyValue) {
	s.span.AddEvent(name, trace.WithAttributes(attrs...))
}

// SetStatus sets the span status
func (s *Span) SetStatus(code codes.Code, description string) {
	s.span.SetStatus(code, description)
}

// Fail records err on the span and marks it failed.
func (s *Span) Fail(err error) {
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

// Duration returns the time since the span started.
func (s *Span) Duration() time.Duration {
	return time.Since(s.startTime)
}

// End ends the span
func (s *Span) End() {
	if len(s.attributes) > 0 {
		s.span.SetAttributes(s.attributes...)
	}
	s.span.End()
}

// TracePhase runs fn inside a span named "fakes.<phase>" and records its
// duration in metrics.PhaseLatency.
func TracePhase(ctx context.Context, phase string, fn func(ctx context.Context, span *Span) error) error {
	ctx, span := NewSpan(ctx, "fakes."+phase)
	defer span.End()

	timer := metrics.NewTimer(phase)
	err := fn(ctx, span)
	timer.ObservePhase()

	if err != nil {
		span.Fail(err)
	} else {
		span.SetStatus(codes.Ok, "")
	}
	return err
}
