// Package testutil provides testing utilities for fakes
package testutil

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

// FixedNow is the instant returned by FixedClock.
var FixedNow = time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

// TestLogger creates a test logger that writes to the test output.
func TestLogger(t *testing.T) *zap.Logger {
	return zaptest.NewLogger(t)
}

// TestContext creates a test context with a 30-second timeout.
// The caller must call the returned cancel function to avoid leaks.
func TestContext(_ *testing.T) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}

// FixedClock always returns FixedNow.
func FixedClock() time.Time {
	return FixedNow
}

// SeededRand returns a PCG stream seeded with seed.
func SeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}
