package sampler

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTick_SubSecondInterval(t *testing.T) {
	s := New(500*time.Millisecond, 0, nil)

	// two ticks so the second one computes a rate from a primed state
	s.tick(context.Background())
	s.tick(context.Background())

	rate := s.Current()
	assert.GreaterOrEqual(t, rate.Download, int64(0))
	assert.GreaterOrEqual(t, rate.Upload, int64(0))
}

func TestTick_CounterResetDoesNotGoNegative(t *testing.T) {
	s := New(2*time.Second, 0, nil)

	// pretend the previous reading was near the counter ceiling so any
	// real reading looks like a reset
	s.mu.Lock()
	s.primed = true
	s.lastRecv = math.MaxUint64
	s.lastSent = math.MaxUint64
	s.mu.Unlock()

	s.tick(context.Background())

	rate := s.Current()
	assert.GreaterOrEqual(t, rate.Download, int64(0))
	assert.GreaterOrEqual(t, rate.Upload, int64(0))

	s.mu.RLock()
	defer s.mu.RUnlock()
	assert.GreaterOrEqual(t, s.accum.Download, int64(0))
	assert.GreaterOrEqual(t, s.accum.Upload, int64(0))
}
