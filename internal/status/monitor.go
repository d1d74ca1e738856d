// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package status

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/jeranaias/booky-tui/internal/backend"
)

// =============================================================================
// PROBER
// =============================================================================

// Prober answers whether the backend is alive. *backend.Client
// satisfies it.
type Prober interface {
	Health(ctx context.Context) (*backend.HealthStatus, error)
}

// =============================================================================
// MONITOR
// =============================================================================

// DefaultInterval is the steady-state poll cadence.
const DefaultInterval = 30 * time.Second

// defaultProbeTimeout bounds a single probe so a hung backend cannot
// stall the poll loop.
const defaultProbeTimeout = 5 * time.Second

// Monitor tracks backend reachability.
//
// The Monitor is safe for concurrent use. State changes are observed
// through OnChange callbacks, which run on the goroutine that performed
// the probe.
type Monitor struct {
	prober   Prober
	interval time.Duration
	timeout  time.Duration
	log      zerolog.Logger

	// online holds the last probe verdict. Starts false until the
	// first probe completes.
	online atomic.Bool

	// limiter coalesces Poke bursts into at most one probe per second.
	limiter *rate.Limiter

	pokeCh chan struct{}

	mu        sync.Mutex
	onChange  []func(online bool)
	everKnown bool
}

// NewMonitor creates a monitor polling prober every interval. A zero
// interval selects DefaultInterval.
func NewMonitor(prober Prober, interval time.Duration, log zerolog.Logger) *Monitor {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Monitor{
		prober:   prober,
		interval: interval,
		timeout:  defaultProbeTimeout,
		log:      log.With().Str("component", "status").Logger(),
		limiter:  rate.NewLimiter(rate.Every(time.Second), 1),
		pokeCh:   make(chan struct{}, 1),
	}
}

// Online returns the last known verdict. False until the first probe
// has completed.
func (m *Monitor) Online() bool {
	return m.online.Load()
}

// Interval returns the steady-state poll cadence.
func (m *Monitor) Interval() time.Duration {
	return m.interval
}

// OnChange registers a callback fired on every online/offline
// transition, including the first probe.
func (m *Monitor) OnChange(fn func(online bool)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onChange = append(m.onChange, fn)
}

// =============================================================================
// PROBING
// =============================================================================

// Check probes the backend once and returns the fresh verdict. Any
// probe failure, transport or otherwise, counts as offline.
func (m *Monitor) Check(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	online := false
	if h, err := m.prober.Health(ctx); err == nil && h.Healthy() {
		online = true
	} else if err != nil {
		m.log.Debug().Err(err).Msg("health probe failed")
	}

	m.record(online)
	return online
}

// Poke requests an out-of-cadence probe. Returns true when the caller
// should actually probe now; rate limiting absorbs bursts. Event-driven
// callers probe themselves on true, and the Run loop picks up queued
// pokes on its own.
func (m *Monitor) Poke() bool {
	if !m.limiter.Allow() {
		return false
	}
	select {
	case m.pokeCh <- struct{}{}:
	default:
	}
	return true
}

// Run polls until ctx is cancelled. Used by the line-mode REPL; the
// full-screen UI drives Check from its own tick messages instead.
func (m *Monitor) Run(ctx context.Context) {
	m.Check(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Check(ctx)
		case <-m.pokeCh:
			m.Check(ctx)
		}
	}
}

// record stores a verdict and notifies observers on transition.
func (m *Monitor) record(online bool) {
	m.mu.Lock()
	prev := m.online.Load()
	first := !m.everKnown
	m.everKnown = true
	m.online.Store(online)
	var fns []func(bool)
	if first || prev != online {
		fns = append(fns, m.onChange...)
	}
	m.mu.Unlock()

	if len(fns) > 0 {
		if online {
			m.log.Info().Msg("backend online")
		} else {
			m.log.Warn().Msg("backend offline")
		}
	}
	for _, fn := range fns {
		fn(online)
	}
}
