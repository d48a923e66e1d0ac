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
	CreateProjectCommand struct {
		ActorID     string
		WorkspaceID model.WorkspaceID
		Name        string
		Slug        string
		Description string
	}

	CreateProjectCommandHandler = decorator.CommandHandler[CreateProjectCommand, *model.Project]

	createProjectCommandHandler struct {
		projectService ports.ProjectService
	}
)

func NewCreateProjectCommandHandler(
	svc ports.ProjectService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) CreateProjectCommandHandler {
	return decorator.ApplyCommandDecorators[CreateProjectCommand, *model.Project](
		createProjectCommandHandler{projectService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h createProjectCommandHandler) Handle(ctx context.Context, cmd CreateProjectCommand) (*model.Project, error) {
	return h.projectService.CreateProject(ctx, ports.CreateProjectParams{
		ActorID:     cmd.ActorID,
		WorkspaceID: cmd.WorkspaceID,
		Name:        cmd.Name,
		Slug:        cmd.Slug,
		Description: cmd.Description,
	})
}
