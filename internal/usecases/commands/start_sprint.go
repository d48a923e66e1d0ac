package commands

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
	StartSprintCommand struct {
		ActorID  string
		SprintID model.SprintID
	}

	StartSprintCommandHandler = decorator.CommandHandler[StartSprintCommand, *model.Sprint]

	startSprintCommandHandler struct {
		sprintService ports.SprintService
	}
)

func NewStartSprintCommandHandler(
	svc ports.SprintService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) StartSprintCommandHandler {
	return decorator.ApplyCommandDecorators[StartSprintCommand, *model.Sprint](
		startSprintCommandHandler{sprintService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h startSprintCommandHandler) Handle(ctx context.Context, cmd StartSprintCommand) (*model.Sprint, error) {
	return h.sprintService.StartSprint(ctx, cmd.ActorID, cmd.SprintID)
}
