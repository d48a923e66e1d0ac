package rpc_test

import (
	"context"
	"testing"

	"github.com/Leozerbib/gile-back-sub000/internal/adapters/inbound/rpc"
	"github.com/Leozerbib/gile-back-sub000/internal/domain/model"
	"github.com/Leozerbib/gile-back-sub000/internal/ports"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestTicketsHandler_CreateTicket(t *testing.T) {
	t.Parallel()

	t.Run("creates a ticket", func(t *testing.T) {
		t.Parallel()

		app := newTestApp(t, &mockProjectService{}, &mockSprintService{}, &mockTicketService{})
		handler := rpc.NewTicketsHandler(app)

		resp, err := handler.CreateTicket(actorContext("user-1"), &rpc.CreateTicketRequest{
			ProjectID: model.NewProjectID().String(),
			Title:     "Fix login",
			Priority:  "high",
		})

		require.NoError(t, err)
		require.Equal(t, "Fix login", resp.Title)
		require.Equal(t, "todo", resp.Status)
		require.Equal(t, "high", resp.Priority)
	})

	t.Run("rejects a caller without an actor identity", func(t *testing.T) {
		t.Parallel()

		app := newTestApp(t, &mockProjectService{}, &mockSprintService{}, &mockTicketService{})
		handler := rpc.NewTicketsHandler(app)

		_, err := handler.CreateTicket(context.Background(), &rpc.CreateTicketRequest{
			ProjectID: model.NewProjectID().String(),
			Title:     "Fix login",
		})

		require.Equal(t, codes.Unauthenticated, status.Code(err))
	})

	t.Run("rejects a malformed project id", func(t *testing.T) {
		t.Parallel()

		app := newTestApp(t, &mockProjectService{}, &mockSprintService{}, &mockTicketService{})
		handler := rpc.NewTicketsHandler(app)

		_, err := handler.CreateTicket(actorContext("user-1"), &rpc.CreateTicketRequest{
			ProjectID: "not-a-uuid",
			Title:     "Fix login",
		})

		require.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("maps access denial to PermissionDenied", func(t *testing.T) {
		t.Parallel()

		tickets := &mockTicketService{
			createTicketFn: func(_ context.Context, _ ports.CreateTicketParams) (*model.Ticket, error) {
				return nil, model.ErrAccessDenied
			},
		}

		app := newTestApp(t, &mockProjectService{}, &mockSprintService{}, tickets)
		handler := rpc.NewTicketsHandler(app)

		_, err := handler.CreateTicket(actorContext("user-1"), &rpc.CreateTicketRequest{
			ProjectID: model.NewProjectID().String(),
			Title:     "Fix login",
		})

		require.Equal(t, codes.PermissionDenied, status.Code(err))
	})

	t.Run("maps validation failures to InvalidArgument", func(t *testing.T) {
		t.Parallel()

		tickets := &mockTicketService{
			createTicketFn: func(_ context.Context, _ ports.CreateTicketParams) (*model.Ticket, error) {
				validationErrors := model.NewValidationErrors()
				validationErrors.Add("title", "title must not be empty")

				return nil, validationErrors
			},
		}

		app := newTestApp(t, &mockProjectService{}, &mockSprintService{}, tickets)
		handler := rpc.NewTicketsHandler(app)

		_, err := handler.CreateTicket(actorContext("user-1"), &rpc.CreateTicketRequest{
			ProjectID: model.NewProjectID().String(),
		})

		require.Equal(t, codes.InvalidArgument, status.Code(err))
		require.Contains(t, status.Convert(err).Message(), "title must not be empty")
	})
}

func TestTicketsHandler_GetTicket(t *testing.T) {
	t.Parallel()

	t.Run("missing ticket maps to NotFound", func(t *testing.T) {
		t.Parallel()

		app := newTestApp(t, &mockProjectService{}, &mockSprintService{}, &mockTicketService{})
		handler := rpc.NewTicketsHandler(app)

		_, err := handler.GetTicket(actorContext("user-1"), &rpc.GetTicketRequest{
			TicketID: model.NewTicketID().String(),
		})

		require.Equal(t, codes.NotFound, status.Code(err))
	})

	t.Run("found ticket is projected", func(t *testing.T) {
		t.Parallel()

		ticket := model.NewTicket(model.NewProjectID(), "Fix login", "details", model.TicketPriorityUrgent)

		tickets := &mockTicketService{
			getTicketFn: func(_ context.Context, _ string, _ model.TicketID) (*model.Ticket, error) {
				return ticket, nil
			},
		}

		app := newTestApp(t, &mockProjectService{}, &mockSprintService{}, tickets)
		handler := rpc.NewTicketsHandler(app)

		resp, err := handler.GetTicket(actorContext("user-1"), &rpc.GetTicketRequest{
			TicketID: ticket.ID.String(),
		})

		require.NoError(t, err)
		require.Equal(t, ticket.ID.String(), resp.ID)
		require.Equal(t, "urgent", resp.Priority)
		require.Nil(t, resp.SprintID)
	})
}

func TestTicketsHandler_SearchTickets(t *testing.T) {
	t.Parallel()

	t.Run("lifts the legacy filter map after structured rules", func(t *testing.T) {
		t.Parallel()

		var captured ports.SearchTicketsParams

		tickets := &mockTicketService{
			searchTicketsFn: func(_ context.Context, params ports.SearchTicketsParams) (model.Page[*model.Ticket], error) {
				captured = params

				return model.Page[*model.Ticket]{}, nil
			},
		}

		app := newTestApp(t, &mockProjectService{}, &mockSprintService{}, tickets)
		handler := rpc.NewTicketsHandler(app)

		_, err := handler.SearchTickets(actorContext("user-1"), &rpc.SearchTicketsRequest{
			ProjectID: model.NewProjectID().String(),
			Search: rpc.SearchBody{
				Rules: []rpc.FilterEntry{
					{Field: "priority", Operator: "in", Value: []any{"high", "urgent"}},
				},
				Filter: map[string]any{"status": "todo"},
			},
		})

		require.NoError(t, err)
		require.Equal(t, []model.FilterRule{
			{Field: "priority", Operator: model.FilterOpIn, Value: []any{"high", "urgent"}},
			{Field: "status", Operator: model.FilterOpEquals, Value: "todo"},
		}, captured.Request.Rules)
	})

	t.Run("unknown operator maps to InvalidArgument", func(t *testing.T) {
		t.Parallel()

		app := newTestApp(t, &mockProjectService{}, &mockSprintService{}, &mockTicketService{})
		handler := rpc.NewTicketsHandler(app)

		_, err := handler.SearchTickets(actorContext("user-1"), &rpc.SearchTicketsRequest{
			ProjectID: model.NewProjectID().String(),
			Search: rpc.SearchBody{
				Rules: []rpc.FilterEntry{
					{Field: "status", Operator: "like", Value: "todo"},
				},
			},
		})

		require.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("page metadata is carried through", func(t *testing.T) {
		t.Parallel()

		projectID := model.NewProjectID()
		ticket := model.NewTicket(projectID, "Fix login", "", model.TicketPriorityHigh)

		tickets := &mockTicketService{
			searchTicketsFn: func(_ context.Context, _ ports.SearchTicketsParams) (model.Page[*model.Ticket], error) {
				return model.NewPage([]*model.Ticket{ticket}, 42, 25, 25), nil
			},
		}

		app := newTestApp(t, &mockProjectService{}, &mockSprintService{}, tickets)
		handler := rpc.NewTicketsHandler(app)

		resp, err := handler.SearchTickets(actorContext("user-1"), &rpc.SearchTicketsRequest{
			ProjectID: projectID.String(),
			Search:    rpc.SearchBody{Skip: 25, Take: 25},
		})

		require.NoError(t, err)
		require.Len(t, resp.Items, 1)
		require.Equal(t, uint(42), resp.Meta.Total)
		require.False(t, resp.Meta.HasNext)
		require.True(t, resp.Meta.HasPrev)
	})
}

func TestTicketsHandler_DeleteTicket(t *testing.T) {
	t.Parallel()

	var deleted []model.TicketID

	tickets := &mockTicketService{
		deleteTicketFn: func(_ context.Context, _ string, id model.TicketID) error {
			deleted = append(deleted, id)

			return nil
		},
	}

	app := newTestApp(t, &mockProjectService{}, &mockSprintService{}, tickets)
	handler := rpc.NewTicketsHandler(app)

	id := model.NewTicketID()

	require.NoError(t, handler.DeleteTicket(actorContext("user-1"), &rpc.DeleteTicketRequest{
		TicketID: id.String(),
	}))
	require.Equal(t, []model.TicketID{id}, deleted)
}
