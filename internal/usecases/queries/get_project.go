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
	GetProjectQuery struct {
		ActorID   string
		ProjectID model.ProjectID
	}

	GetProjectQueryHandler = decorator.QueryHandler[GetProjectQuery, *model.Project]

	getProjectQueryHandler struct {
		projectService ports.ProjectService
	}
)

func NewGetProjectQueryHandler(
	svc ports.ProjectService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) GetProjectQueryHandler {
	return decorator.ApplyQueryDecorators[GetProjectQuery, *model.Project](
		getProjectQueryHandler{projectService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h getProjectQueryHandler) Execute(ctx context.Context, query GetProjectQuery) (*model.Project, error) {
	return h.projectService.GetProject(ctx, query.ActorID, query.ProjectID)
}
