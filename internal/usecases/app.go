package usecases

import (
	"github.com/Leozerbib/gile-back-sub000/internal/domain/model"
	"github.com/Leozerbib/gile-back-sub000/internal/ports"
	"github.com/Leozerbib/gile-back-sub000/internal/usecases/commands"
	"github.com/Leozerbib/gile-back-sub000/internal/usecases/queries"
	"github.com/Leozerbib/gile-back-sub000/pkg/decorator"
	"github.com/Leozerbib/gile-back-sub000/pkg/logger"
	"github.com/Leozerbib/gile-back-sub000/pkg/metrics"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	Commands struct {
		CreateProject  commands.CreateProjectCommandHandler
		UpdateProject  commands.UpdateProjectCommandHandler
		ArchiveProject commands.ArchiveProjectCommandHandler
		DeleteProject  commands.DeleteProjectCommandHandler

		CreateSprint   commands.CreateSprintCommandHandler
		UpdateSprint   commands.UpdateSprintCommandHandler
		StartSprint    commands.StartSprintCommandHandler
		CompleteSprint commands.CompleteSprintCommandHandler
		DeleteSprint   commands.DeleteSprintCommandHandler

		CreateTicket     commands.CreateTicketCommandHandler
		UpdateTicket     commands.UpdateTicketCommandHandler
		DeleteTicket     commands.DeleteTicketCommandHandler
		TransitionTicket commands.TransitionTicketCommandHandler
		MoveTicket       commands.MoveTicketCommandHandler
		AssignTicket     commands.AssignTicketCommandHandler
	}

	Queries struct {
		GetProject     queries.GetProjectQueryHandler
		SearchProjects queries.SearchProjectsQueryHandler

		GetSprint     queries.GetSprintQueryHandler
		SearchSprints queries.SearchSprintsQueryHandler

		GetTicket     queries.GetTicketQueryHandler
		SearchTickets queries.SearchTicketsQueryHandler

		FetchLiveness     queries.FetchLivenessQueryHandler
		FetchReadiness    queries.FetchReadinessQueryHandler
		FetchHealthReport queries.FetchHealthReportQueryHandler
	}

	// SearchCaches carries the per-entity result caches for the search
	// queries. Nil entries disable caching for that entity.
	SearchCaches struct {
		Projects decorator.Cache[queries.SearchProjectsQuery, model.Page[*model.Project]]
		Sprints  decorator.Cache[queries.SearchSprintsQuery, model.Page[*model.Sprint]]
		Tickets  decorator.Cache[queries.SearchTicketsQuery, model.Page[*model.Ticket]]
	}

	Application struct {
		Commands Commands
		Queries  Queries
	}
)

func NewApplication(
	projectService ports.ProjectService,
	sprintService ports.SprintService,
	ticketService ports.TicketService,
	dbHealthChecker ports.HealthChecker,
	cacheHealthChecker ports.HealthChecker,
	searchCaches SearchCaches,
	cacheConfig decorator.CacheConfig,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) *Application {
	return &Application{
		Commands: Commands{
			CreateProject:  commands.NewCreateProjectCommandHandler(projectService, log, metricsClient, tracerProvider),
			UpdateProject:  commands.NewUpdateProjectCommandHandler(projectService, log, metricsClient, tracerProvider),
			ArchiveProject: commands.NewArchiveProjectCommandHandler(projectService, log, metricsClient, tracerProvider),
			DeleteProject:  commands.NewDeleteProjectCommandHandler(projectService, log, metricsClient, tracerProvider),

			CreateSprint:   commands.NewCreateSprintCommandHandler(sprintService, log, metricsClient, tracerProvider),
			UpdateSprint:   commands.NewUpdateSprintCommandHandler(sprintService, log, metricsClient, tracerProvider),
			StartSprint:    commands.NewStartSprintCommandHandler(sprintService, log, metricsClient, tracerProvider),
			CompleteSprint: commands.NewCompleteSprintCommandHandler(sprintService, log, metricsClient, tracerProvider),
			DeleteSprint:   commands.NewDeleteSprintCommandHandler(sprintService, log, metricsClient, tracerProvider),

			CreateTicket:     commands.NewCreateTicketCommandHandler(ticketService, log, metricsClient, tracerProvider),
			UpdateTicket:     commands.NewUpdateTicketCommandHandler(ticketService, log, metricsClient, tracerProvider),
			DeleteTicket:     commands.NewDeleteTicketCommandHandler(ticketService, log, metricsClient, tracerProvider),
			TransitionTicket: commands.NewTransitionTicketCommandHandler(ticketService, log, metricsClient, tracerProvider),
			MoveTicket:       commands.NewMoveTicketCommandHandler(ticketService, log, metricsClient, tracerProvider),
			AssignTicket:     commands.NewAssignTicketCommandHandler(ticketService, log, metricsClient, tracerProvider),
		},
		Queries: Queries{
			GetProject:     queries.NewGetProjectQueryHandler(projectService, log, metricsClient, tracerProvider),
			SearchProjects: queries.NewSearchProjectsQueryHandler(projectService, searchCaches.Projects, cacheConfig, log, metricsClient, tracerProvider),

			GetSprint:     queries.NewGetSprintQueryHandler(sprintService, log, metricsClient, tracerProvider),
			SearchSprints: queries.NewSearchSprintsQueryHandler(sprintService, searchCaches.Sprints, cacheConfig, log, metricsClient, tracerProvider),

			GetTicket:     queries.NewGetTicketQueryHandler(ticketService, log, metricsClient, tracerProvider),
			SearchTickets: queries.NewSearchTicketsQueryHandler(ticketService, searchCaches.Tickets, cacheConfig, log, metricsClient, tracerProvider),

			FetchLiveness:     queries.NewFetchLivenessQueryHandler(log, metricsClient, tracerProvider),
			FetchReadiness:    queries.NewFetchReadinessQueryHandler(dbHealthChecker, log, metricsClient, tracerProvider),
			FetchHealthReport: queries.NewFetchHealthReportQueryHandler(dbHealthChecker, cacheHealthChecker, log, metricsClient, tracerProvider),
		},
	}
}
