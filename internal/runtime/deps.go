package runtime

import (
	"context"
	"fmt"

	"github.com/Leozerbib/gile-back-sub000/internal/adapters/repos"
	"github.com/Leozerbib/gile-back-sub000/internal/config"
	"github.com/Leozerbib/gile-back-sub000/internal/infrastructure"
	"github.com/Leozerbib/gile-back-sub000/internal/ports"
	"github.com/Leozerbib/gile-back-sub000/internal/usecases"
	"github.com/Leozerbib/gile-back-sub000/pkg/logger"
	"github.com/Leozerbib/gile-back-sub000/pkg/metrics"
	"github.com/jackc/pgx/v5/pgxpool"
	otelTrace "go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
)

type (
	infrastructureDep struct {
		grpcServer     *grpc.Server
		tracerProvider otelTrace.TracerProvider
		tracerShutdown func(ctx context.Context) error
		metricsClient  metrics.Client
		logger         logger.Logger
		dbPool         *pgxpool.Pool
		cacheClient    *infrastructure.KeydbClient
	}

	repositories struct {
		projectRepo ports.ProjectRepository
		sprintRepo  ports.SprintRepository
		ticketRepo  ports.TicketRepository
		secretsRepo ports.SecretsRepository
	}

	domainServices struct {
		projects ports.ProjectService
		sprints  ports.SprintService
		tickets  ports.TicketService
		access   ports.AccessChecker
	}

	dependencies struct {
		config   *config.ServiceConfig
		infra    infrastructureDep
		repos    repositories
		services domainServices
		app      *usecases.Application

		cleanupFuncs map[string]func(ctx context.Context) error
	}

	DependencyOption func(*dependencies) error
)

func initializeDependencies(ctx context.Context, opts ...DependencyOption) (*dependencies, error) {
	deps := &dependencies{
		cleanupFuncs: make(map[string]func(ctx context.Context) error),
	}

	allOpts := append(defaultOptions(ctx), opts...)

	for _, opt := range allOpts {
		if err := opt(deps); err != nil {
			return nil, fmt.Errorf("failed to apply dependency option: %w", err)
		}
	}

	return deps, nil
}

func (d *dependencies) getDBHealthChecker() ports.HealthChecker {
	return d.repos.ticketRepo.(*repos.TicketsRepository)
}

func (d *dependencies) getCacheHealthChecker() ports.HealthChecker {
	if d.infra.cacheClient == nil {
		return nil
	}

	return d.infra.cacheClient
}
