package ports

import "context"

// HealthChecker reports whether a dependency is reachable.
type HealthChecker interface {
	// CheckHealth returns an error when the dependency is unavailable.
	CheckHealth(ctx context.Context) error
}
