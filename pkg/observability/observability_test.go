package observability

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/fakes/pkg/metrics"
)

func TestSpansWithoutInit(t *testing.T) {
	require.NoError(t, Shutdown(context.Background()))

	err := TracePhase(context.Background(), "noop_phase", func(ctx context.Context, span *Span) error {
		span.SetAttribute("records", 3)
		return nil
	})
	assert.NoError(t, err)
}

func TestTracePhaseExportsSpans(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultTracingConfig("test")
	cfg.Writer = &buf
	cfg.PrettyPrint = false
	require.NoError(t, InitTracing(cfg))

	ctx := context.Background()
	err := TracePhase(ctx, "trace_test", func(ctx context.Context, span *Span) error {
		span.SetAttribute("fakes.locale", "jpn")
		span.SetAttribute("fakes.seed", uint64(42))
		span.SetAttribute("fakes.columns", []string{"a", "b"})
		span.AddEvent("halfway")
		return nil
	})
	require.NoError(t, err)

	failure := errors.New("boom")
	err = TracePhase(ctx, "trace_fail", func(ctx context.Context, span *Span) error {
		return failure
	})
	assert.ErrorIs(t, err, failure)

	require.NoError(t, Shutdown(ctx))

	out := buf.String()
	assert.Contains(t, out, `"Name":"fakes.trace_test"`)
	assert.Contains(t, out, `"Name":"fakes.trace_fail"`)
	assert.Contains(t, out, "fakes.locale")
	assert.Contains(t, out, "boom")
	assert.Contains(t, out, `"Value":"fakes"`)

	assert.GreaterOrEqual(t, testutil.CollectAndCount(metrics.PhaseLatency), 2)
}
