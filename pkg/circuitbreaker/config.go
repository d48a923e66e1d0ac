package circuitbreaker

import "time"

// Config holds the configuration for a circuit breaker.
type Config struct {
	// Name identifies the circuit breaker in logs and metrics.
	Name string

	// Enabled determines whether the circuit breaker is active.
	// When false, New returns nil and Execute passes through directly.
	Enabled bool

	// MaxRequests is the number of probe requests allowed through
	// while the circuit is half-open. Zero means a single probe.
	MaxRequests uint

	// Interval is the cyclic period of the closed state after which
	// the internal failure counts are cleared. Zero keeps counts
	// for the lifetime of the closed state.
	Interval time.Duration

	// Timeout is the period of the open state before transitioning
	// to half-open. Zero defaults to 60 seconds.
	Timeout time.Duration

	// FailureThreshold is the number of consecutive failures required
	// to trip the circuit from closed to open.
	FailureThreshold uint
}
