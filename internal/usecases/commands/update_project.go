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
	UpdateProjectCommand struct {
		ActorID     string
		ProjectID   model.ProjectID
		Name        string
		Description string
	}

	UpdateProjectCommandHandler = decorator.CommandHandler[UpdateProjectCommand, *model.Project]

	updateProjectCommandHandler struct {
		projectService ports.ProjectService
	}
)

func NewUpdateProjectCommandHandler(
	svc ports.ProjectService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) UpdateProjectCommandHandler {
	return decorator.ApplyCommandDecorators[UpdateProjectCommand, *model.Project](
		updateProjectCommandHandler{projectService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h updateProjectCommandHandler) Handle(ctx context.Context, cmd UpdateProjectCommand) (*model.Project, error) {
	return h.projectService.UpdateProject(ctx, cmd.ActorID, cmd.ProjectID, cmd.Name, cmd.Description)
}
