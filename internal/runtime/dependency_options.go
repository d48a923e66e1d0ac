package runtime

import (
	"context"
	"fmt"

	"github.com/Leozerbib/gile-back-sub000/internal/adapters/inbound/rpc"
	"github.com/Leozerbib/gile-back-sub000/internal/adapters/outbound/authz"
	"github.com/Leozerbib/gile-back-sub000/internal/adapters/outbound/cache"
	"github.com/Leozerbib/gile-back-sub000/internal/adapters/outbound/secrets"
	"github.com/Leozerbib/gile-back-sub000/internal/adapters/repos"
	"github.com/Leozerbib/gile-back-sub000/internal/config"
	"github.com/Leozerbib/gile-back-sub000/internal/domain/model"
	"github.com/Leozerbib/gile-back-sub000/internal/infrastructure"
	infraPostgres "github.com/Leozerbib/gile-back-sub000/internal/infrastructure/postgres"
	"github.com/Leozerbib/gile-back-sub000/internal/services"
	"github.com/Leozerbib/gile-back-sub000/internal/usecases"
	"github.com/Leozerbib/gile-back-sub000/internal/usecases/queries"
	"github.com/Leozerbib/gile-back-sub000/pkg/decorator"
	"github.com/Leozerbib/gile-back-sub000/pkg/logger"
	"github.com/Leozerbib/gile-back-sub000/pkg/metrics/noop"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

const databaseSecretPath = "database"

func defaultOptions(ctx context.Context) []DependencyOption {
	return []DependencyOption{
		WithConfig(),
		WithLogger(),
		WithSecrets(ctx),
		WithTracing(ctx),
		WithMetrics(ctx),
		WithDatabase(ctx),
		WithCache(),
		WithRepositories(),
		WithAccessChecker(),
		WithServices(),
		WithApplication(),
		WithGRPCServer(),
	}
}

func WithConfig() DependencyOption {
	return func(d *dependencies) error {
		cfg, err := config.Init()
		if err != nil {
			return fmt.Errorf("initializing configuration: %w", err)
		}

		d.config = cfg

		return nil
	}
}

func WithLogger() DependencyOption {
	return func(d *dependencies) error {
		d.infra.logger = logger.New(d.config.Logging.Level, d.config.Logging.Format)

		return nil
	}
}

// WithSecrets overrides the database password from Vault when the secrets
// storage is enabled. The environment value stays in place otherwise.
func WithSecrets(ctx context.Context) DependencyOption {
	return func(d *dependencies) error {
		if !d.config.SecretsStorage.Enabled {
			return nil
		}

		client, err := secrets.NewClient(d.config.SecretsStorage)
		if err != nil {
			return fmt.Errorf("creating secrets client: %w", err)
		}

		d.repos.secretsRepo = secrets.NewVaultRepository(client, d.config.SecretsStorage.MountPath)

		payload, err := d.repos.secretsRepo.FetchSecret(ctx, databaseSecretPath)
		if err != nil {
			return fmt.Errorf("loading database credentials: %w", err)
		}

		if password, ok := payload["password"].(string); ok {
			d.config.Database.Password = password
		}

		d.infra.logger.Info().
			Str("mount_path", d.config.SecretsStorage.MountPath).
			Msg("database credentials loaded from the secrets storage")

		return nil
	}
}

func WithTracing(ctx context.Context) DependencyOption {
	return func(d *dependencies) error {
		if d.config.Telemetry.OTLPEndpoint == "" {
			d.infra.tracerProvider = infrastructure.NewNoopTracerProvider()

			return nil
		}

		tp, shutdown, err := infrastructure.NewTracerProvider(
			d.config.Telemetry.ServiceName,
			d.config.Telemetry.ServiceVersion,
			d.config.Telemetry.OTLPEndpoint,
		)
		if err != nil {
			return fmt.Errorf("initializing tracer: %w", err)
		}

		d.infra.tracerProvider = tp
		d.infra.tracerShutdown = shutdown
		d.cleanupFuncs["tracer"] = shutdown

		return nil
	}
}

func WithMetrics(_ context.Context) DependencyOption {
	return func(d *dependencies) error {
		d.infra.metricsClient = noop.NewMetricsClient()

		return nil
	}
}

func WithDatabase(ctx context.Context) DependencyOption {
	return func(d *dependencies) error {
		pool, err := infraPostgres.NewPool(ctx, d.config.Database)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}

		d.infra.dbPool = pool
		d.cleanupFuncs["database"] = func(context.Context) error {
			pool.Close()

			return nil
		}

		return nil
	}
}

func WithCache() DependencyOption {
	return func(d *dependencies) error {
		if !d.config.Cache.Enabled {
			return nil
		}

		client := infrastructure.NewKeyDBClient(d.config.Cache, d.infra.logger)

		d.infra.cacheClient = client
		d.cleanupFuncs["cache"] = func(context.Context) error {
			return client.Close()
		}

		return nil
	}
}

func WithRepositories() DependencyOption {
	return func(d *dependencies) error {
		scanner := repos.NewPgxScanner()

		d.repos.projectRepo = repos.NewProjectsRepository(
			d.infra.dbPool,
			scanner,
			repos.NewProjectCriteriaTranslator(d.infra.logger),
			d.infra.logger,
		)
		d.repos.sprintRepo = repos.NewSprintsRepository(
			d.infra.dbPool,
			scanner,
			repos.NewSprintCriteriaTranslator(d.infra.logger),
			d.infra.logger,
		)
		d.repos.ticketRepo = repos.NewTicketsRepository(
			d.infra.dbPool,
			scanner,
			repos.NewTicketCriteriaTranslator(d.infra.logger),
			d.infra.logger,
		)

		return nil
	}
}

func WithAccessChecker() DependencyOption {
	return func(d *dependencies) error {
		d.services.access = authz.NewChecker(d.infra.dbPool, d.config.Authz, d.infra.logger)

		return nil
	}
}

func WithServices() DependencyOption {
	return func(d *dependencies) error {
		d.services.projects = services.NewProjectService(d.repos.projectRepo, d.services.access)
		d.services.sprints = services.NewSprintService(d.repos.sprintRepo, d.repos.projectRepo, d.services.access)
		d.services.tickets = services.NewTicketService(
			d.repos.ticketRepo,
			d.repos.sprintRepo,
			d.repos.projectRepo,
			d.services.access,
		)

		return nil
	}
}

func WithApplication() DependencyOption {
	return func(d *dependencies) error {
		var searchCaches usecases.SearchCaches

		if d.infra.cacheClient != nil {
			searchCaches = usecases.SearchCaches{
				Projects: cache.NewJSONCache[queries.SearchProjectsQuery, model.Page[*model.Project]](
					d.infra.cacheClient, "search:projects:", d.infra.logger,
				),
				Sprints: cache.NewJSONCache[queries.SearchSprintsQuery, model.Page[*model.Sprint]](
					d.infra.cacheClient, "search:sprints:", d.infra.logger,
				),
				Tickets: cache.NewJSONCache[queries.SearchTicketsQuery, model.Page[*model.Ticket]](
					d.infra.cacheClient, "search:tickets:", d.infra.logger,
				),
			}
		}

		d.app = usecases.NewApplication(
			d.services.projects,
			d.services.sprints,
			d.services.tickets,
			d.getDBHealthChecker(),
			d.getCacheHealthChecker(),
			searchCaches,
			decorator.CacheConfig{
				Enabled: d.config.Cache.Enabled,
				TTL:     d.config.Cache.SearchExpiry,
			},
			d.infra.logger,
			d.infra.metricsClient,
			d.infra.tracerProvider,
		)

		return nil
	}
}

func WithGRPCServer() DependencyOption {
	return func(d *dependencies) error {
		opts := []grpc.ServerOption{
			grpc.MaxRecvMsgSize(d.config.GRPCServer.MaxRecvMsgSize),
			grpc.MaxSendMsgSize(d.config.GRPCServer.MaxSendMsgSize),
			grpc.ChainUnaryInterceptor(
				rpc.ContextExtractorInterceptor(),
				rpc.AccessLogInterceptor(d.infra.logger, d.config.Logging.AccessLog),
			),
		}

		server := grpc.NewServer(opts...)

		rpc.RegisterServices(server, d.app)
		grpc_health_v1.RegisterHealthServer(server, rpc.NewHealthHandler(d.app))
		reflection.Register(server)

		d.infra.grpcServer = server
		d.cleanupFuncs["grpc-server"] = func(context.Context) error {
			server.GracefulStop()

			return nil
		}

		return nil
	}
}
