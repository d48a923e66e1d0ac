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
	CompleteSprintCommand struct {
		ActorID  string
		SprintID model.SprintID
	}

	CompleteSprintCommandHandler = decorator.CommandHandler[CompleteSprintCommand, *model.Sprint]

	completeSprintCommandHandler struct {
		sprintService ports.SprintService
	}
)

func NewCompleteSprintCommandHandler(
	svc ports.SprintService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) CompleteSprintCommandHandler {
	return decorator.ApplyCommandDecorators[CompleteSprintCommand, *model.Sprint](
		completeSprintCommandHandler{sprintService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h completeSprintCommandHandler) Handle(ctx context.Context, cmd CompleteSprintCommand) (*model.Sprint, error) {
	return h.sprintService.CompleteSprint(ctx, cmd.ActorID, cmd.SprintID)
}
