// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package gateway

import (
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/cinetrack/internal/logging"
	"github.com/tomtom215/cinetrack/internal/metrics"
)

// BreakerSettings tunes the provider circuit breaker.
type BreakerSettings struct {
	// MinRequests is the request count before the failure ratio is judged.
	MinRequests uint32
	// FailureRatio opens the circuit when reached.
	FailureRatio float64
	// OpenTimeout is how long the circuit stays open before probing.
	OpenTimeout time.Duration
}

// errCallerGone marks a provider error that happened after the caller's own
// context ended. Such calls say nothing about provider health and are left out
// of the breaker counts.
var errCallerGone = errors.New("caller context done")

// breaker guards provider calls. While open, calls fail immediately and the
// gateway answers with fallbacks without waiting on the network.
type breaker struct {
	cb   *gobreaker.CircuitBreaker[string]
	name string
}

func newBreaker(name string, s BreakerSettings) *breaker {
	if s.MinRequests == 0 {
		s.MinRequests = 5
	}
	if s.FailureRatio <= 0 {
		s.FailureRatio = 0.6
	}
	if s.OpenTimeout <= 0 {
		s.OpenTimeout = time.Minute
	}

	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	cb := gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    5 * time.Minute,
		Timeout:     s.OpenTimeout,
		IsExcluded: func(err error) bool {
			return errors.Is(err, errCallerGone)
		},
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			judged := counts.TotalSuccesses + counts.TotalFailures
			if judged < s.MinRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(judged)
			if ratio >= s.FailureRatio {
				logging.Warn().Str("breaker", name).Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", ratio*100).Msg("Opening circuit to AI provider")
				return true
			}
			return false
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr, toStr := stateToString(from), stateToString(to)
			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("Circuit breaker state change")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},
	})

	return &breaker{cb: cb, name: name}
}

func (b *breaker) execute(fn func() (string, error)) (string, error) {
	out, err := b.cb.Execute(fn)
	switch {
	case err == nil:
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
	case errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
	case errors.Is(err, errCallerGone):
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "canceled").Inc()
	default:
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
	}
	return out, err
}

func (b *breaker) state() string {
	return stateToString(b.cb.State())
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
