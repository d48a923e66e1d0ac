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
	DeleteSprintCommand struct {
		ActorID  string
		SprintID model.SprintID
	}

	DeleteSprintCommandHandler = decorator.CommandHandler[DeleteSprintCommand, struct{}]

	deleteSprintCommandHandler struct {
		sprintService ports.SprintService
	}
)

func NewDeleteSprintCommandHandler(
	svc ports.SprintService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) DeleteSprintCommandHandler {
	return decorator.ApplyCommandDecorators[DeleteSprintCommand, struct{}](
		deleteSprintCommandHandler{sprintService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h deleteSprintCommandHandler) Handle(ctx context.Context, cmd DeleteSprintCommand) (struct{}, error) {
	if err := h.sprintService.DeleteSprint(ctx, cmd.ActorID, cmd.SprintID); err != nil {
		return struct{}{}, err
	}

	return struct{}{}, nil
}
