package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/Leozerbib/gile-back-sub000/internal/config"
	"github.com/Leozerbib/gile-back-sub000/internal/ports"
	"github.com/Leozerbib/gile-back-sub000/pkg/decorator"
	"github.com/Leozerbib/gile-back-sub000/pkg/logger"
	"github.com/Leozerbib/gile-back-sub000/pkg/metrics"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	FetchHealthReportQuery struct{}

	DependencyStatus struct {
		Healthy bool   `json:"healthy"`
		Latency string `json:"latency"`
		Message string `json:"message,omitempty"`
	}

	HealthResult struct {
		Status       string                      `json:"status"`
		Version      string                      `json:"version"`
		Uptime       string                      `json:"uptime"`
		Dependencies map[string]DependencyStatus `json:"dependencies"`
	}

	FetchHealthReportQueryHandler = decorator.QueryHandler[FetchHealthReportQuery, *HealthResult]

	fetchHealthReportQueryHandler struct {
		dbHealthChecker    ports.HealthChecker
		cacheHealthChecker ports.HealthChecker
		startTime          time.Time
	}
)

func NewFetchHealthReportQueryHandler(
	dbHealthChecker ports.HealthChecker,
	cacheHealthChecker ports.HealthChecker,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) FetchHealthReportQueryHandler {
	return decorator.ApplyQueryDecorators[FetchHealthReportQuery, *HealthResult](
		fetchHealthReportQueryHandler{
			dbHealthChecker:    dbHealthChecker,
			cacheHealthChecker: cacheHealthChecker,
			startTime:          time.Now(),
		},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h fetchHealthReportQueryHandler) Execute(ctx context.Context, _ FetchHealthReportQuery) (*HealthResult, error) {
	dependencies := map[string]DependencyStatus{
		"postgres": checkDependency(ctx, h.dbHealthChecker),
	}

	// The cache is optional wiring; a missing checker is simply not
	// reported rather than reported unhealthy.
	if h.cacheHealthChecker != nil {
		dependencies["keydb"] = checkDependency(ctx, h.cacheHealthChecker)
	}

	overallStatus := "healthy"

	for _, dependency := range dependencies {
		if !dependency.Healthy {
			overallStatus = "unhealthy"

			break
		}
	}

	return &HealthResult{
		Status:       overallStatus,
		Version:      config.ServiceVersion,
		Uptime:       time.Since(h.startTime).String(),
		Dependencies: dependencies,
	}, nil
}

func checkDependency(ctx context.Context, checker ports.HealthChecker) DependencyStatus {
	start := time.Now()
	err := checker.CheckHealth(ctx)
	latency := time.Since(start)

	status := DependencyStatus{
		Healthy: err == nil,
		Latency: fmt.Sprintf("%dms", latency.Milliseconds()),
	}

	if err != nil {
		status.Message = err.Error()
	}

	return status
}
