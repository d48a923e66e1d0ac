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
	GetSprintQuery struct {
		ActorID  string
		SprintID model.SprintID
	}

	GetSprintQueryHandler = decorator.QueryHandler[GetSprintQuery, *model.Sprint]

	getSprintQueryHandler struct {
		sprintService ports.SprintService
	}
)

func NewGetSprintQueryHandler(
	svc ports.SprintService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) GetSprintQueryHandler {
	return decorator.ApplyQueryDecorators[GetSprintQuery, *model.Sprint](
		getSprintQueryHandler{sprintService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h getSprintQueryHandler) Execute(ctx context.Context, query GetSprintQuery) (*model.Sprint, error) {
	return h.sprintService.GetSprint(ctx, query.ActorID, query.SprintID)
}
