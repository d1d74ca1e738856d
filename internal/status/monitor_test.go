// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package status

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/booky-tui/internal/backend"
)

// fakeProber returns a scripted sequence of health results.
type fakeProber struct {
	results []error
	calls   int
}

func (f *fakeProber) Health(ctx context.Context) (*backend.HealthStatus, error) {
	i := f.calls
	f.calls++
	if i >= len(f.results) {
		i = len(f.results) - 1
	}
	if err := f.results[i]; err != nil {
		return nil, err
	}
	return &backend.HealthStatus{Status: "healthy"}, nil
}

// TestCheckTransitions tests that verdicts flip on probe outcomes and
// observers fire only on transitions.
func TestCheckTransitions(t *testing.T) {
	prober := &fakeProber{results: []error{nil, nil, backend.ErrUnreachable, nil}}
	m := NewMonitor(prober, time.Minute, zerolog.Nop())

	var events []bool
	m.OnChange(func(online bool) { events = append(events, online) })

	ctx := context.Background()
	require.True(t, m.Check(ctx), "first check should report online")
	require.True(t, m.Check(ctx), "second check should stay online")
	require.False(t, m.Check(ctx), "third check should report offline")
	require.True(t, m.Check(ctx), "fourth check should recover")

	// Transitions: initial online, drop, recovery. The steady-state
	// second check must not fire.
	assert.Equal(t, []bool{true, false, true}, events)
	assert.True(t, m.Online(), "Online should reflect last verdict")
}

// TestUnhealthyStatusCountsAsOffline tests that a reachable backend
// reporting an unhealthy status is treated as offline.
func TestUnhealthyStatusCountsAsOffline(t *testing.T) {
	prober := &proberFunc{fn: func(ctx context.Context) (*backend.HealthStatus, error) {
		return &backend.HealthStatus{Status: "degraded"}, nil
	}}
	m := NewMonitor(prober, time.Minute, zerolog.Nop())

	assert.False(t, m.Check(context.Background()), "degraded status should count as offline")
}

type proberFunc struct {
	fn func(ctx context.Context) (*backend.HealthStatus, error)
}

func (p *proberFunc) Health(ctx context.Context) (*backend.HealthStatus, error) {
	return p.fn(ctx)
}

// TestPokeRateLimit tests that poke bursts collapse to a single
// go-ahead.
func TestPokeRateLimit(t *testing.T) {
	m := NewMonitor(&fakeProber{results: []error{nil}}, time.Minute, zerolog.Nop())

	require.True(t, m.Poke(), "first poke should pass")
	for i := 0; i < 5; i++ {
		require.False(t, m.Poke(), "burst poke should be absorbed")
	}
}

// TestDefaultInterval tests the zero-interval default.
func TestDefaultInterval(t *testing.T) {
	m := NewMonitor(&fakeProber{results: []error{nil}}, 0, zerolog.Nop())
	assert.Equal(t, DefaultInterval, m.Interval())
}
