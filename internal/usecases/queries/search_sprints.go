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
	SearchSprintsQuery struct {
		ActorID   string
		ProjectID model.ProjectID
		Request   model.SearchRequest
	}

	SearchSprintsQueryHandler = decorator.QueryHandler[SearchSprintsQuery, model.Page[*model.Sprint]]

	searchSprintsQueryHandler struct {
		sprintService ports.SprintService
	}
)

func NewSearchSprintsQueryHandler(
	svc ports.SprintService,
	searchCache decorator.Cache[SearchSprintsQuery, model.Page[*model.Sprint]],
	cacheConfig decorator.CacheConfig,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) SearchSprintsQueryHandler {
	cached := decorator.NewQueryCachingDecorator[SearchSprintsQuery, model.Page[*model.Sprint]](
		searchSprintsQueryHandler{sprintService: svc},
		searchCache,
		cacheConfig,
	)

	return decorator.ApplyQueryDecorators[SearchSprintsQuery, model.Page[*model.Sprint]](
		cached,
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h searchSprintsQueryHandler) Execute(ctx context.Context, query SearchSprintsQuery) (model.Page[*model.Sprint], error) {
	return h.sprintService.SearchSprints(ctx, ports.SearchSprintsParams{
		ActorID:   query.ActorID,
		ProjectID: query.ProjectID,
		Request:   query.Request,
	})
}
