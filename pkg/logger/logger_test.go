package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(Config{Level: "loud"})
	assert.Error(t, err)
}

func TestNewDefaultsToConsole(t *testing.T) {
	l, err := New(Config{Level: "debug"})
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(-1))
}

func TestWithContextAndRunID(t *testing.T) {
	id := NewRunID()
	assert.Len(t, id, 36)
	assert.NotEqual(t, id, NewRunID())

	ctx := ContextWithRun(context.Background(), id, "jpn")
	assert.Equal(t, id, ctx.Value(RunIDKey))
	assert.Equal(t, "jpn", ctx.Value(LocaleKey))
	assert.NotNil(t, WithContext(ctx, nil))

	core, logs := observer.New(zap.DebugLevel)
	WithContext(ctx, zap.New(core)).Info("run started")
	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, id, fields["run_id"])
	assert.Equal(t, "jpn", fields["locale"])

	// a bare context adds nothing
	WithContext(context.Background(), zap.New(core)).Info("plain")
	assert.Empty(t, logs.All()[1].ContextMap())
}
