package queries

import (
	"context"

	"github.com/Leozerbib/gile-back-sub000/internal/domain/model"
	"github.com/Leozerbib/gile-back-sub000/internal/ports"
	"github.com/Leozerbib/gile-back-sub000/pkg/decorator"
	"github.com/Leozerbib/gile-back-sub000/pkg/logger"
	"github.com/Leozerbib/gile-back-sub000/pkg/metrics"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	SearchProjectsQuery struct {
		ActorID     string
		WorkspaceID model.WorkspaceID
		Request     model.SearchRequest
	}

	SearchProjectsQueryHandler = decorator.QueryHandler[SearchProjectsQuery, model.Page[*model.Project]]

	searchProjectsQueryHandler struct {
		projectService ports.ProjectService
	}
)

func NewSearchProjectsQueryHandler(
	svc ports.ProjectService,
	searchCache decorator.Cache[SearchProjectsQuery, model.Page[*model.Project]],
	cacheConfig decorator.CacheConfig,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) SearchProjectsQueryHandler {
	cached := decorator.NewQueryCachingDecorator[SearchProjectsQuery, model.Page[*model.Project]](
		searchProjectsQueryHandler{projectService: svc},
		searchCache,
		cacheConfig,
	)

	return decorator.ApplyQueryDecorators[SearchProjectsQuery, model.Page[*model.Project]](
		cached,
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h searchProjectsQueryHandler) Execute(ctx context.Context, query SearchProjectsQuery) (model.Page[*model.Project], error) {
	return h.projectService.SearchProjects(ctx, ports.SearchProjectsParams{
		ActorID:     query.ActorID,
		WorkspaceID: query.WorkspaceID,
		Request:     query.Request,
	})
}
