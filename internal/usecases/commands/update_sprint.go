package commands

import (
	"context"
	"time"

	"github.com/Leozerbib/gile-back-sub000/internal/domain/model"
	"github.com/Leozerbib/gile-back-sub000/internal/ports"
	"github.com/Leozerbib/gile-back-sub000/pkg/decorator"
	"github.com/Leozerbib/gile-back-sub000/pkg/logger"
	"github.com/Leozerbib/gile-back-sub000/pkg/metrics"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	UpdateSprintCommand struct {
		ActorID  string
		SprintID model.SprintID
		Name     string
		Goal     string
		StartsAt time.Time
		EndsAt   time.Time
	}

	UpdateSprintCommandHandler = decorator.CommandHandler[UpdateSprintCommand, *model.Sprint]

	updateSprintCommandHandler struct {
		sprintService ports.SprintService
	}
)

func NewUpdateSprintCommandHandler(
	svc ports.SprintService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) UpdateSprintCommandHandler {
	return decorator.ApplyCommandDecorators[UpdateSprintCommand, *model.Sprint](
		updateSprintCommandHandler{sprintService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h updateSprintCommandHandler) Handle(ctx context.Context, cmd UpdateSprintCommand) (*model.Sprint, error) {
	return h.sprintService.UpdateSprint(ctx, cmd.ActorID, cmd.SprintID, cmd.Name, cmd.Goal, cmd.StartsAt, cmd.EndsAt)
}
