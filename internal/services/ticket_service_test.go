package services_test

import (
	"context"
	"testing"

	"github.com/Leozerbib/gile-back-sub000/internal/domain/model"
	"github.com/Leozerbib/gile-back-sub000/internal/ports"
	"github.com/Leozerbib/gile-back-sub000/internal/services"
	"github.com/stretchr/testify/require"
)

func newTicketService(
	tickets *fakeTicketRepo,
	sprints *fakeSprintRepo,
	projects *fakeProjectRepo,
	access *fakeAccessChecker,
) *services.TicketService {
	return services.NewTicketService(tickets, sprints, projects, access)
}

func seedProject(projects *fakeProjectRepo) *model.Project {
	project := model.NewProject(model.WorkspaceID{}, "Tracker", "tracker", "")
	projects.byID[project.ID] = project

	return project
}

func TestTicketService_CreateTicket(t *testing.T) {
	t.Parallel()

	t.Run("creates a ticket in an existing project", func(t *testing.T) {
		t.Parallel()

		tickets := newFakeTicketRepo()
		projects := newFakeProjectRepo()
		project := seedProject(projects)
		access := allowAll()

		service := newTicketService(tickets, newFakeSprintRepo(), projects, access)

		ticket, err := service.CreateTicket(context.Background(), ports.CreateTicketParams{
			ActorID:   "user-1",
			ProjectID: project.ID,
			Title:     "Fix login",
			Priority:  model.TicketPriorityHigh,
			Estimate:  3,
		})

		require.NoError(t, err)
		require.Len(t, tickets.created, 1)
		require.Equal(t, model.TicketStatusTodo, ticket.Status)
		require.Equal(t, project.ID, ticket.ProjectID)

		require.Equal(t, []accessCall{{
			resourceID:   project.ID.String(),
			actorID:      "user-1",
			action:       ports.ActionWrite,
			resourceType: ports.ResourceProject,
		}}, access.calls)
	})

	t.Run("denied actor cannot create", func(t *testing.T) {
		t.Parallel()

		tickets := newFakeTicketRepo()
		projects := newFakeProjectRepo()
		project := seedProject(projects)

		service := newTicketService(tickets, newFakeSprintRepo(), projects, denyAll())

		_, err := service.CreateTicket(context.Background(), ports.CreateTicketParams{
			ActorID:   "user-1",
			ProjectID: project.ID,
			Title:     "Fix login",
			Priority:  model.TicketPriorityHigh,
		})

		require.ErrorIs(t, err, model.ErrAccessDenied)
		require.Empty(t, tickets.created)
	})

	t.Run("missing project is rejected", func(t *testing.T) {
		t.Parallel()

		service := newTicketService(newFakeTicketRepo(), newFakeSprintRepo(), newFakeProjectRepo(), allowAll())

		_, err := service.CreateTicket(context.Background(), ports.CreateTicketParams{
			ActorID:   "user-1",
			ProjectID: model.NewProjectID(),
			Title:     "Fix login",
			Priority:  model.TicketPriorityLow,
		})

		require.ErrorIs(t, err, model.ErrProjectNotFound)
	})

	t.Run("sprint from another project is rejected", func(t *testing.T) {
		t.Parallel()

		projects := newFakeProjectRepo()
		project := seedProject(projects)

		sprints := newFakeSprintRepo()
		foreign := model.NewSprint(model.NewProjectID(), "Sprint 1", "", project.CreatedAt, project.CreatedAt)
		sprints.byID[foreign.ID] = foreign

		service := newTicketService(newFakeTicketRepo(), sprints, projects, allowAll())

		_, err := service.CreateTicket(context.Background(), ports.CreateTicketParams{
			ActorID:   "user-1",
			ProjectID: project.ID,
			SprintID:  &foreign.ID,
			Title:     "Fix login",
			Priority:  model.TicketPriorityLow,
		})

		require.ErrorIs(t, err, model.ErrSprintNotInProject)
	})

	t.Run("empty title fails validation", func(t *testing.T) {
		t.Parallel()

		projects := newFakeProjectRepo()
		project := seedProject(projects)

		service := newTicketService(newFakeTicketRepo(), newFakeSprintRepo(), projects, allowAll())

		_, err := service.CreateTicket(context.Background(), ports.CreateTicketParams{
			ActorID:   "user-1",
			ProjectID: project.ID,
			Title:     "",
			Priority:  model.TicketPriorityLow,
		})

		var validationErrors *model.ValidationErrors
		require.ErrorAs(t, err, &validationErrors)
	})
}

func TestTicketService_SearchTickets(t *testing.T) {
	t.Parallel()

	t.Run("applies the default window when none is given", func(t *testing.T) {
		t.Parallel()

		tickets := newFakeTicketRepo()
		projects := newFakeProjectRepo()
		project := seedProject(projects)

		service := newTicketService(tickets, newFakeSprintRepo(), projects, allowAll())

		_, err := service.SearchTickets(context.Background(), ports.SearchTicketsParams{
			ActorID:   "user-1",
			ProjectID: project.ID,
			Request:   model.SearchRequest{Term: "login"},
		})

		require.NoError(t, err)
		require.NotNil(t, tickets.searchedWith)
		require.Equal(t, model.DefaultTicketPageSize, tickets.searchedWith.Take())
	})

	t.Run("scope is the last conjunct of the predicate", func(t *testing.T) {
		t.Parallel()

		tickets := newFakeTicketRepo()
		projects := newFakeProjectRepo()
		project := seedProject(projects)

		service := newTicketService(tickets, newFakeSprintRepo(), projects, allowAll())

		_, err := service.SearchTickets(context.Background(), ports.SearchTicketsParams{
			ActorID:   "user-1",
			ProjectID: project.ID,
			Request: model.SearchRequest{
				Rules: []model.FilterRule{
					// An attempt to widen the scope to another project.
					{Field: "projectId", Operator: model.FilterOpEquals, Value: "other-project"},
				},
			},
		})

		require.NoError(t, err)

		spec := tickets.searchedWith.Spec()
		require.True(t, spec.IsComposite())

		children := spec.Children()
		last := children[len(children)-1]
		require.Equal(t, model.SpecOpEq, last.Operator())
		require.Equal(t, "projectId", last.Field())
		require.Equal(t, project.ID.String(), last.Value())
	})

	t.Run("oversized window is rejected", func(t *testing.T) {
		t.Parallel()

		tickets := newFakeTicketRepo()
		projects := newFakeProjectRepo()
		project := seedProject(projects)

		service := newTicketService(tickets, newFakeSprintRepo(), projects, allowAll())

		_, err := service.SearchTickets(context.Background(), ports.SearchTicketsParams{
			ActorID:   "user-1",
			ProjectID: project.ID,
			Request:   model.SearchRequest{Take: model.MaxPageSize + 1},
		})

		require.ErrorIs(t, err, model.ErrPageSizeTooLarge)
		require.Nil(t, tickets.searchedWith)
	})

	t.Run("unknown operator aborts the search", func(t *testing.T) {
		t.Parallel()

		tickets := newFakeTicketRepo()
		projects := newFakeProjectRepo()
		project := seedProject(projects)

		service := newTicketService(tickets, newFakeSprintRepo(), projects, allowAll())

		_, err := service.SearchTickets(context.Background(), ports.SearchTicketsParams{
			ActorID:   "user-1",
			ProjectID: project.ID,
			Request: model.SearchRequest{
				Rules: []model.FilterRule{
					{Field: "status", Operator: model.FilterOperator("like"), Value: "todo"},
				},
			},
		})

		require.ErrorIs(t, err, model.ErrUnknownFilterOperator)
		require.Nil(t, tickets.searchedWith)
	})
}

func TestTicketService_TransitionTicket(t *testing.T) {
	t.Parallel()

	t.Run("legal move persists", func(t *testing.T) {
		t.Parallel()

		tickets := newFakeTicketRepo()
		ticket := model.NewTicket(model.NewProjectID(), "Fix login", "", model.TicketPriorityHigh)
		tickets.byID[ticket.ID] = ticket

		service := newTicketService(tickets, newFakeSprintRepo(), newFakeProjectRepo(), allowAll())

		moved, err := service.TransitionTicket(context.Background(), "user-1", ticket.ID, model.TicketStatusInProgress)

		require.NoError(t, err)
		require.Equal(t, model.TicketStatusInProgress, moved.Status)
		require.Len(t, tickets.updated, 1)
	})

	t.Run("illegal move does not persist", func(t *testing.T) {
		t.Parallel()

		tickets := newFakeTicketRepo()
		ticket := model.NewTicket(model.NewProjectID(), "Fix login", "", model.TicketPriorityHigh)
		tickets.byID[ticket.ID] = ticket

		service := newTicketService(tickets, newFakeSprintRepo(), newFakeProjectRepo(), allowAll())

		_, err := service.TransitionTicket(context.Background(), "user-1", ticket.ID, model.TicketStatusDone)

		require.ErrorIs(t, err, model.ErrInvalidTicketTransition)
		require.Empty(t, tickets.updated)
	})
}

func TestTicketService_MoveTicketToSprint(t *testing.T) {
	t.Parallel()

	tickets := newFakeTicketRepo()
	projectID := model.NewProjectID()
	ticket := model.NewTicket(projectID, "Fix login", "", model.TicketPriorityHigh)
	tickets.byID[ticket.ID] = ticket

	sprints := newFakeSprintRepo()
	sprint := model.NewSprint(projectID, "Sprint 1", "", ticket.CreatedAt, ticket.CreatedAt)
	sprints.byID[sprint.ID] = sprint

	service := newTicketService(tickets, sprints, newFakeProjectRepo(), allowAll())

	moved, err := service.MoveTicketToSprint(context.Background(), "user-1", ticket.ID, &sprint.ID)
	require.NoError(t, err)
	require.Equal(t, &sprint.ID, moved.SprintID)

	removed, err := service.MoveTicketToSprint(context.Background(), "user-1", ticket.ID, nil)
	require.NoError(t, err)
	require.Nil(t, removed.SprintID)
}

func TestTicketService_DeleteTicket(t *testing.T) {
	t.Parallel()

	t.Run("requires the delete right", func(t *testing.T) {
		t.Parallel()

		tickets := newFakeTicketRepo()
		access := allowAll()

		service := newTicketService(tickets, newFakeSprintRepo(), newFakeProjectRepo(), access)
		id := model.NewTicketID()

		require.NoError(t, service.DeleteTicket(context.Background(), "user-1", id))
		require.Equal(t, []model.TicketID{id}, tickets.deleted)
		require.Equal(t, ports.ActionDelete, access.calls[0].action)
	})

	t.Run("denied actor cannot delete", func(t *testing.T) {
		t.Parallel()

		tickets := newFakeTicketRepo()
		service := newTicketService(tickets, newFakeSprintRepo(), newFakeProjectRepo(), denyAll())

		err := service.DeleteTicket(context.Background(), "user-1", model.NewTicketID())

		require.ErrorIs(t, err, model.ErrAccessDenied)
		require.Empty(t, tickets.deleted)
	})
}
