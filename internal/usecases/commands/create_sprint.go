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
	CreateSprintCommand struct {
		ActorID   string
		ProjectID model.ProjectID
		Name      string
		Goal      string
		StartsAt  time.Time
		EndsAt    time.Time
	}

	CreateSprintCommandHandler = decorator.CommandHandler[CreateSprintCommand, *model.Sprint]

	createSprintCommandHandler struct {
		sprintService ports.SprintService
	}
)

func NewCreateSprintCommandHandler(
	svc ports.SprintService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) CreateSprintCommandHandler {
	return decorator.ApplyCommandDecorators[CreateSprintCommand, *model.Sprint](
		createSprintCommandHandler{sprintService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h createSprintCommandHandler) Handle(ctx context.Context, cmd CreateSprintCommand) (*model.Sprint, error) {
	return h.sprintService.CreateSprint(ctx, ports.CreateSprintParams{
		ActorID:   cmd.ActorID,
		ProjectID: cmd.ProjectID,
		Name:      cmd.Name,
		Goal:      cmd.Goal,
		StartsAt:  cmd.StartsAt,
		EndsAt:    cmd.EndsAt,
	})
}
