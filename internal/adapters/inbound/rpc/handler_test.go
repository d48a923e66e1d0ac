package rpc_test

import (
	"context"
	"testing"
	"time"

	"github.com/Leozerbib/gile-back-sub000/internal/adapters/inbound/rpc"
	"github.com/Leozerbib/gile-back-sub000/internal/domain/model"
	"github.com/Leozerbib/gile-back-sub000/internal/infrastructure"
	"github.com/Leozerbib/gile-back-sub000/internal/ports"
	"github.com/Leozerbib/gile-back-sub000/internal/usecases"
	"github.com/Leozerbib/gile-back-sub000/pkg/decorator"
	"github.com/Leozerbib/gile-back-sub000/pkg/logger"
	"github.com/Leozerbib/gile-back-sub000/pkg/metrics/noop"
)

type mockTicketService struct {
	createTicketFn  func(ctx context.Context, params ports.CreateTicketParams) (*model.Ticket, error)
	getTicketFn     func(ctx context.Context, actorID string, id model.TicketID) (*model.Ticket, error)
	searchTicketsFn func(ctx context.Context, params ports.SearchTicketsParams) (model.Page[*model.Ticket], error)
	deleteTicketFn  func(ctx context.Context, actorID string, id model.TicketID) error
}

func (m *mockTicketService) CreateTicket(ctx context.Context, params ports.CreateTicketParams) (*model.Ticket, error) {
	if m.createTicketFn != nil {
		return m.createTicketFn(ctx, params)
	}

	return model.NewTicket(params.ProjectID, params.Title, params.Description, params.Priority), nil
}

func (m *mockTicketService) GetTicket(ctx context.Context, actorID string, id model.TicketID) (*model.Ticket, error) {
	if m.getTicketFn != nil {
		return m.getTicketFn(ctx, actorID, id)
	}

	return nil, model.ErrTicketNotFound
}

func (m *mockTicketService) SearchTickets(ctx context.Context, params ports.SearchTicketsParams) (model.Page[*model.Ticket], error) {
	if m.searchTicketsFn != nil {
		return m.searchTicketsFn(ctx, params)
	}

	return model.Page[*model.Ticket]{}, nil
}

func (m *mockTicketService) UpdateTicket(_ context.Context, _ ports.UpdateTicketParams) (*model.Ticket, error) {
	return nil, model.ErrTicketNotFound
}

func (m *mockTicketService) DeleteTicket(ctx context.Context, actorID string, id model.TicketID) error {
	if m.deleteTicketFn != nil {
		return m.deleteTicketFn(ctx, actorID, id)
	}

	return model.ErrTicketNotFound
}

func (m *mockTicketService) TransitionTicket(_ context.Context, _ string, _ model.TicketID, _ model.TicketStatus) (*model.Ticket, error) {
	return nil, model.ErrTicketNotFound
}

func (m *mockTicketService) MoveTicketToSprint(_ context.Context, _ string, _ model.TicketID, _ *model.SprintID) (*model.Ticket, error) {
	return nil, model.ErrTicketNotFound
}

func (m *mockTicketService) AssignTicket(_ context.Context, _ string, _ model.TicketID, _ *string) (*model.Ticket, error) {
	return nil, model.ErrTicketNotFound
}

type mockSprintService struct {
	createSprintFn func(ctx context.Context, params ports.CreateSprintParams) (*model.Sprint, error)
	startSprintFn  func(ctx context.Context, actorID string, id model.SprintID) (*model.Sprint, error)
}

func (m *mockSprintService) CreateSprint(ctx context.Context, params ports.CreateSprintParams) (*model.Sprint, error) {
	if m.createSprintFn != nil {
		return m.createSprintFn(ctx, params)
	}

	return model.NewSprint(params.ProjectID, params.Name, params.Goal, params.StartsAt, params.EndsAt), nil
}

func (m *mockSprintService) GetSprint(_ context.Context, _ string, _ model.SprintID) (*model.Sprint, error) {
	return nil, model.ErrSprintNotFound
}

func (m *mockSprintService) SearchSprints(_ context.Context, _ ports.SearchSprintsParams) (model.Page[*model.Sprint], error) {
	return model.Page[*model.Sprint]{}, nil
}

func (m *mockSprintService) UpdateSprint(_ context.Context, _ string, _ model.SprintID, _, _ string, _, _ time.Time) (*model.Sprint, error) {
	return nil, model.ErrSprintNotFound
}

func (m *mockSprintService) StartSprint(ctx context.Context, actorID string, id model.SprintID) (*model.Sprint, error) {
	if m.startSprintFn != nil {
		return m.startSprintFn(ctx, actorID, id)
	}

	return nil, model.ErrSprintNotFound
}

func (m *mockSprintService) CompleteSprint(_ context.Context, _ string, _ model.SprintID) (*model.Sprint, error) {
	return nil, model.ErrSprintNotFound
}

func (m *mockSprintService) DeleteSprint(_ context.Context, _ string, _ model.SprintID) error {
	return model.ErrSprintNotFound
}

type mockProjectService struct {
	createProjectFn  func(ctx context.Context, params ports.CreateProjectParams) (*model.Project, error)
	searchProjectsFn func(ctx context.Context, params ports.SearchProjectsParams) (model.Page[*model.Project], error)
}

func (m *mockProjectService) CreateProject(ctx context.Context, params ports.CreateProjectParams) (*model.Project, error) {
	if m.createProjectFn != nil {
		return m.createProjectFn(ctx, params)
	}

	return model.NewProject(params.WorkspaceID, params.Name, params.Slug, params.Description), nil
}

func (m *mockProjectService) GetProject(_ context.Context, _ string, _ model.ProjectID) (*model.Project, error) {
	return nil, model.ErrProjectNotFound
}

func (m *mockProjectService) SearchProjects(ctx context.Context, params ports.SearchProjectsParams) (model.Page[*model.Project], error) {
	if m.searchProjectsFn != nil {
		return m.searchProjectsFn(ctx, params)
	}

	return model.Page[*model.Project]{}, nil
}

func (m *mockProjectService) UpdateProject(_ context.Context, _ string, _ model.ProjectID, _, _ string) (*model.Project, error) {
	return nil, model.ErrProjectNotFound
}

func (m *mockProjectService) ArchiveProject(_ context.Context, _ string, _ model.ProjectID) (*model.Project, error) {
	return nil, model.ErrProjectNotFound
}

func (m *mockProjectService) DeleteProject(_ context.Context, _ string, _ model.ProjectID) error {
	return model.ErrProjectNotFound
}

func newTestApp(
	t *testing.T,
	projectSvc ports.ProjectService,
	sprintSvc ports.SprintService,
	ticketSvc ports.TicketService,
) *usecases.Application {
	t.Helper()

	return usecases.NewApplication(
		projectSvc,
		sprintSvc,
		ticketSvc,
		stubHealthChecker{},
		nil,
		usecases.SearchCaches{},
		decorator.CacheConfig{},
		logger.NewTestLogger(),
		noop.NewMetricsClient(),
		infrastructure.NewNoopTracerProvider(),
	)
}

type stubHealthChecker struct {
	err error
}

func (s stubHealthChecker) CheckHealth(_ context.Context) error {
	return s.err
}

func actorContext(actorID string) context.Context {
	return rpc.WithActorID(context.Background(), actorID)
}
