package ports

import (
	"context"
	"time"

	"github.com/Leozerbib/gile-back-sub000/internal/domain/model"
)

// CreateTicketParams carries the fields required to create a ticket.
type CreateTicketParams struct {
	ActorID     string
	ProjectID   model.ProjectID
	SprintID    *model.SprintID
	Title       string
	Description string
	Priority    model.TicketPriority
	Estimate    float64
	AssigneeID  *string
}

// UpdateTicketParams carries the mutable fields of a ticket.
type UpdateTicketParams struct {
	ActorID     string
	TicketID    model.TicketID
	Title       string
	Description string
	Priority    model.TicketPriority
	Estimate    float64
}

// SearchTicketsParams scopes a ticket search to a single project.
type SearchTicketsParams struct {
	ActorID   string
	ProjectID model.ProjectID
	Request   model.SearchRequest
}

// TicketService exposes ticket operations to the inbound adapters.
type TicketService interface {
	CreateTicket(ctx context.Context, params CreateTicketParams) (*model.Ticket, error)
	GetTicket(ctx context.Context, actorID string, id model.TicketID) (*model.Ticket, error)
	SearchTickets(ctx context.Context, params SearchTicketsParams) (model.Page[*model.Ticket], error)
	UpdateTicket(ctx context.Context, params UpdateTicketParams) (*model.Ticket, error)
	DeleteTicket(ctx context.Context, actorID string, id model.TicketID) error
	TransitionTicket(ctx context.Context, actorID string, id model.TicketID, to model.TicketStatus) (*model.Ticket, error)
	MoveTicketToSprint(ctx context.Context, actorID string, id model.TicketID, sprintID *model.SprintID) (*model.Ticket, error)
	AssignTicket(ctx context.Context, actorID string, id model.TicketID, assigneeID *string) (*model.Ticket, error)
}

// CreateSprintParams carries the fields required to create a sprint.
type CreateSprintParams struct {
	ActorID   string
	ProjectID model.ProjectID
	Name      string
	Goal      string
	StartsAt  time.Time
	EndsAt    time.Time
}

// SearchSprintsParams scopes a sprint search to a single project.
type SearchSprintsParams struct {
	ActorID   string
	ProjectID model.ProjectID
	Request   model.SearchRequest
}

// SprintService exposes sprint operations to the inbound adapters.
type SprintService interface {
	CreateSprint(ctx context.Context, params CreateSprintParams) (*model.Sprint, error)
	GetSprint(ctx context.Context, actorID string, id model.SprintID) (*model.Sprint, error)
	SearchSprints(ctx context.Context, params SearchSprintsParams) (model.Page[*model.Sprint], error)
	UpdateSprint(ctx context.Context, actorID string, id model.SprintID, name, goal string, startsAt, endsAt time.Time) (*model.Sprint, error)
	StartSprint(ctx context.Context, actorID string, id model.SprintID) (*model.Sprint, error)
	CompleteSprint(ctx context.Context, actorID string, id model.SprintID) (*model.Sprint, error)
	DeleteSprint(ctx context.Context, actorID string, id model.SprintID) error
}

// CreateProjectParams carries the fields required to create a project.
type CreateProjectParams struct {
	ActorID     string
	WorkspaceID model.WorkspaceID
	Name        string
	Slug        string
	Description string
}

// SearchProjectsParams scopes a project search to a single workspace.
type SearchProjectsParams struct {
	ActorID     string
	WorkspaceID model.WorkspaceID
	Request     model.SearchRequest
}

// ProjectService exposes project operations to the inbound adapters.
type ProjectService interface {
	CreateProject(ctx context.Context, params CreateProjectParams) (*model.Project, error)
	GetProject(ctx context.Context, actorID string, id model.ProjectID) (*model.Project, error)
	SearchProjects(ctx context.Context, params SearchProjectsParams) (model.Page[*model.Project], error)
	UpdateProject(ctx context.Context, actorID string, id model.ProjectID, name, description string) (*model.Project, error)
	ArchiveProject(ctx context.Context, actorID string, id model.ProjectID) (*model.Project, error)
	DeleteProject(ctx context.Context, actorID string, id model.ProjectID) error
}
