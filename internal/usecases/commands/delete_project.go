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
	DeleteProjectCommand struct {
		ActorID   string
		ProjectID model.ProjectID
	}

	DeleteProjectCommandHandler = decorator.CommandHandler[DeleteProjectCommand, struct{}]

	deleteProjectCommandHandler struct {
		projectService ports.ProjectService
	}
)

func NewDeleteProjectCommandHandler(
	svc ports.ProjectService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) DeleteProjectCommandHandler {
	return decorator.ApplyCommandDecorators[DeleteProjectCommand, struct{}](
		deleteProjectCommandHandler{projectService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h deleteProjectCommandHandler) Handle(ctx context.Context, cmd DeleteProjectCommand) (struct{}, error) {
	if err := h.projectService.DeleteProject(ctx, cmd.ActorID, cmd.ProjectID); err != nil {
		return struct{}{}, err
	}

	return struct{}{}, nil
}
