package services

import (
	"context"
	"fmt"

	"github.com/Leozerbib/gile-back-sub000/internal/domain/model"
	"github.com/Leozerbib/gile-back-sub000/internal/ports"
)

type TicketService struct {
	tickets  ports.TicketRepository
	sprints  ports.SprintRepository
	projects ports.ProjectRepository
	access   ports.AccessChecker
}

func NewTicketService(
	tickets ports.TicketRepository,
	sprints ports.SprintRepository,
	projects ports.ProjectRepository,
	access ports.AccessChecker,
) *TicketService {
	return &TicketService{
		tickets:  tickets,
		sprints:  sprints,
		projects: projects,
		access:   access,
	}
}

func (s *TicketService) CreateTicket(ctx context.Context, params ports.CreateTicketParams) (*model.Ticket, error) {
	if err := s.authorize(ctx, params.ProjectID.String(), params.ActorID, ports.ActionWrite, ports.ResourceProject); err != nil {
		return nil, err
	}

	if err := validateTicketFields(params.Title, params.Priority, params.Estimate); err != nil {
		return nil, err
	}

	exists, err := s.projects.Exists(ctx, params.ProjectID)
	if err != nil {
		return nil, err
	}

	if !exists {
		return nil, model.ErrProjectNotFound
	}

	ticket := model.NewTicket(params.ProjectID, params.Title, params.Description, params.Priority)
	ticket.Estimate = params.Estimate
	ticket.AssigneeID = params.AssigneeID

	if params.SprintID != nil {
		if err := s.ensureSprintInProject(ctx, *params.SprintID, params.ProjectID); err != nil {
			return nil, err
		}

		ticket.SprintID = params.SprintID
	}

	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}

	return ticket, nil
}

func (s *TicketService) GetTicket(ctx context.Context, actorID string, id model.TicketID) (*model.Ticket, error) {
	if err := s.authorize(ctx, id.String(), actorID, ports.ActionRead, ports.ResourceTicket); err != nil {
		return nil, err
	}

	return s.tickets.FetchByID(ctx, id)
}

// SearchTickets runs a scoped search within one project. The project
// scope is appended after the caller's filters so it always constrains
// the result, regardless of what the request asked for.
func (s *TicketService) SearchTickets(ctx context.Context, params ports.SearchTicketsParams) (model.Page[*model.Ticket], error) {
	var zero model.Page[*model.Ticket]

	if err := s.authorize(ctx, params.ProjectID.String(), params.ActorID, ports.ActionRead, ports.ResourceProject); err != nil {
		return zero, err
	}

	request := params.Request.WithDefaultTake(model.DefaultTicketPageSize)
	if err := request.Validate(); err != nil {
		return zero, err
	}

	scope := model.Eq("projectId", params.ProjectID.String())

	criteria, err := model.SearchCriteria(scope, request, model.TicketSearchableFields())
	if err != nil {
		return zero, err
	}

	return s.tickets.Search(ctx, criteria)
}

func (s *TicketService) UpdateTicket(ctx context.Context, params ports.UpdateTicketParams) (*model.Ticket, error) {
	if err := s.authorize(ctx, params.TicketID.String(), params.ActorID, ports.ActionWrite, ports.ResourceTicket); err != nil {
		return nil, err
	}

	if err := validateTicketFields(params.Title, params.Priority, params.Estimate); err != nil {
		return nil, err
	}

	ticket, err := s.tickets.FetchByID(ctx, params.TicketID)
	if err != nil {
		return nil, err
	}

	ticket.Update(params.Title, params.Description, params.Priority, params.Estimate)

	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, err
	}

	return ticket, nil
}

func (s *TicketService) DeleteTicket(ctx context.Context, actorID string, id model.TicketID) error {
	if err := s.authorize(ctx, id.String(), actorID, ports.ActionDelete, ports.ResourceTicket); err != nil {
		return err
	}

	return s.tickets.Delete(ctx, id)
}

func (s *TicketService) TransitionTicket(ctx context.Context, actorID string, id model.TicketID, to model.TicketStatus) (*model.Ticket, error) {
	if err := s.authorize(ctx, id.String(), actorID, ports.ActionWrite, ports.ResourceTicket); err != nil {
		return nil, err
	}

	ticket, err := s.tickets.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := ticket.Transition(to); err != nil {
		return nil, err
	}

	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, err
	}

	return ticket, nil
}

func (s *TicketService) MoveTicketToSprint(ctx context.Context, actorID string, id model.TicketID, sprintID *model.SprintID) (*model.Ticket, error) {
	if err := s.authorize(ctx, id.String(), actorID, ports.ActionWrite, ports.ResourceTicket); err != nil {
		return nil, err
	}

	ticket, err := s.tickets.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if sprintID != nil {
		if err := s.ensureSprintInProject(ctx, *sprintID, ticket.ProjectID); err != nil {
			return nil, err
		}
	}

	ticket.MoveToSprint(sprintID)

	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, err
	}

	return ticket, nil
}

func (s *TicketService) AssignTicket(ctx context.Context, actorID string, id model.TicketID, assigneeID *string) (*model.Ticket, error) {
	if err := s.authorize(ctx, id.String(), actorID, ports.ActionWrite, ports.ResourceTicket); err != nil {
		return nil, err
	}

	ticket, err := s.tickets.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ticket.Assign(assigneeID)

	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, err
	}

	return ticket, nil
}

func (s *TicketService) authorize(ctx context.Context, resourceID, actorID string, action ports.Action, resourceType ports.ResourceType) error {
	allowed, err := s.access.HasRight(ctx, resourceID, actorID, action, resourceType)
	if err != nil {
		return err
	}

	if !allowed {
		return model.ErrAccessDenied
	}

	return nil
}

func (s *TicketService) ensureSprintInProject(ctx context.Context, sprintID model.SprintID, projectID model.ProjectID) error {
	sprint, err := s.sprints.FetchByID(ctx, sprintID)
	if err != nil {
		return err
	}

	if sprint.ProjectID != projectID {
		return model.ErrSprintNotInProject
	}

	return nil
}

func validateTicketFields(title string, priority model.TicketPriority, estimate float64) error {
	validationErrors := model.NewValidationErrors()

	if title == "" {
		validationErrors.Add("title", "title must not be empty")
	}

	if len(title) > 500 {
		validationErrors.Add("title", "title must not exceed 500 characters")
	}

	if !priority.IsValid() {
		validationErrors.Add("priority", fmt.Sprintf("unknown priority %q", priority))
	}

	if estimate < 0 {
		validationErrors.Add("estimate", "estimate must not be negative")
	}

	if validationErrors.HasErrors() {
		return validationErrors
	}

	return nil
}
