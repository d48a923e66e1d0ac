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
	ArchiveProjectCommand struct {
		ActorID   string
		ProjectID model.ProjectID
	}

	ArchiveProjectCommandHandler = decorator.CommandHandler[ArchiveProjectCommand, *model.Project]

	archiveProjectCommandHandler struct {
		projectService ports.ProjectService
	}
)

func NewArchiveProjectCommandHandler(
	svc ports.ProjectService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) ArchiveProjectCommandHandler {
	return decorator.ApplyCommandDecorators[ArchiveProjectCommand, *model.Project](
		archiveProjectCommandHandler{projectService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h archiveProjectCommandHandler) Handle(ctx context.Context, cmd ArchiveProjectCommand) (*model.Project, error) {
	return h.projectService.ArchiveProject(ctx, cmd.ActorID, cmd.ProjectID)
}
