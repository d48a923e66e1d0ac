package rpc

import (
	"context"

	"github.com/Leozerbib/gile-back-sub000/internal/domain/model"
	"github.com/Leozerbib/gile-back-sub000/internal/usecases"
	"github.com/Leozerbib/gile-back-sub000/internal/usecases/commands"
	"github.com/Leozerbib/gile-back-sub000/internal/usecases/queries"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type TicketsHandler struct {
	app *usecases.Application
}

func NewTicketsHandler(app *usecases.Application) *TicketsHandler {
	return &TicketsHandler{app: app}
}

func (h *TicketsHandler) CreateTicket(ctx context.Context, req *CreateTicketRequest) (*TicketResponse, error) {
	actorID, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}

	projectID, err := model.ParseProjectID(req.ProjectID)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid project ID")
	}

	priority := model.TicketPriorityMedium
	if req.Priority != "" {
		priority, err = model.ParseTicketPriority(req.Priority)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "invalid ticket priority")
		}
	}

	var sprintID *model.SprintID

	if req.SprintID != nil {
		parsed, err := model.ParseSprintID(*req.SprintID)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "invalid sprint ID")
		}

		sprintID = &parsed
	}

	cmd := commands.CreateTicketCommand{
		ActorID:     actorID,
		ProjectID:   projectID,
		SprintID:    sprintID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    priority,
		Estimate:    req.Estimate,
		AssigneeID:  req.AssigneeID,
	}

	ticket, err := h.app.Commands.CreateTicket.Handle(ctx, cmd)
	if err != nil {
		return nil, toRPCError(err)
	}

	return toTicketResponse(ticket), nil
}

func (h *TicketsHandler) GetTicket(ctx context.Context, req *GetTicketRequest) (*TicketResponse, error) {
	actorID, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}

	ticketID, err := model.ParseTicketID(req.TicketID)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid ticket ID")
	}

	ticket, err := h.app.Queries.GetTicket.Execute(ctx, queries.GetTicketQuery{
		ActorID:  actorID,
		TicketID: ticketID,
	})
	if err != nil {
		return nil, toRPCError(err)
	}

	return toTicketResponse(ticket), nil
}

func (h *TicketsHandler) SearchTickets(ctx context.Context, req *SearchTicketsRequest) (*TicketPageResponse, error) {
	actorID, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}

	projectID, err := model.ParseProjectID(req.ProjectID)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid project ID")
	}

	request, err := toSearchRequest(req.Search)
	if err != nil {
		return nil, toRPCError(err)
	}

	page, err := h.app.Queries.SearchTickets.Execute(ctx, queries.SearchTicketsQuery{
		ActorID:   actorID,
		ProjectID: projectID,
		Request:   request,
	})
	if err != nil {
		return nil, toRPCError(err)
	}

	return toTicketPageResponse(page), nil
}

func (h *TicketsHandler) UpdateTicket(ctx context.Context, req *UpdateTicketRequest) (*TicketResponse, error) {
	actorID, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}

	ticketID, err := model.ParseTicketID(req.TicketID)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid ticket ID")
	}

	priority, err := model.ParseTicketPriority(req.Priority)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid ticket priority")
	}

	cmd := commands.UpdateTicketCommand{
		ActorID:     actorID,
		TicketID:    ticketID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    priority,
		Estimate:    req.Estimate,
	}

	ticket, err := h.app.Commands.UpdateTicket.Handle(ctx, cmd)
	if err != nil {
		return nil, toRPCError(err)
	}

	return toTicketResponse(ticket), nil
}

func (h *TicketsHandler) TransitionTicket(ctx context.Context, req *TransitionTicketRequest) (*TicketResponse, error) {
	actorID, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}

	ticketID, err := model.ParseTicketID(req.TicketID)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid ticket ID")
	}

	target, err := model.ParseTicketStatus(req.To)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid ticket status")
	}

	ticket, err := h.app.Commands.TransitionTicket.Handle(ctx, commands.TransitionTicketCommand{
		ActorID:  actorID,
		TicketID: ticketID,
		To:       target,
	})
	if err != nil {
		return nil, toRPCError(err)
	}

	return toTicketResponse(ticket), nil
}

func (h *TicketsHandler) MoveTicket(ctx context.Context, req *MoveTicketRequest) (*TicketResponse, error) {
	actorID, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}

	ticketID, err := model.ParseTicketID(req.TicketID)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid ticket ID")
	}

	var sprintID *model.SprintID

	if req.SprintID != nil {
		parsed, err := model.ParseSprintID(*req.SprintID)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "invalid sprint ID")
		}

		sprintID = &parsed
	}

	ticket, err := h.app.Commands.MoveTicket.Handle(ctx, commands.MoveTicketCommand{
		ActorID:  actorID,
		TicketID: ticketID,
		SprintID: sprintID,
	})
	if err != nil {
		return nil, toRPCError(err)
	}

	return toTicketResponse(ticket), nil
}

func (h *TicketsHandler) AssignTicket(ctx context.Context, req *AssignTicketRequest) (*TicketResponse, error) {
	actorID, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}

	ticketID, err := model.ParseTicketID(req.TicketID)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid ticket ID")
	}

	ticket, err := h.app.Commands.AssignTicket.Handle(ctx, commands.AssignTicketCommand{
		ActorID:    actorID,
		TicketID:   ticketID,
		AssigneeID: req.AssigneeID,
	})
	if err != nil {
		return nil, toRPCError(err)
	}

	return toTicketResponse(ticket), nil
}

func (h *TicketsHandler) DeleteTicket(ctx context.Context, req *DeleteTicketRequest) error {
	actorID, err := requireActor(ctx)
	if err != nil {
		return err
	}

	ticketID, err := model.ParseTicketID(req.TicketID)
	if err != nil {
		return status.Error(codes.InvalidArgument, "invalid ticket ID")
	}

	if _, err := h.app.Commands.DeleteTicket.Handle(ctx, commands.DeleteTicketCommand{
		ActorID:  actorID,
		TicketID: ticketID,
	}); err != nil {
		return toRPCError(err)
	}

	return nil
}

func requireActor(ctx context.Context) (string, error) {
	actorID := GetActorID(ctx)
	if actorID == "" {
		return "", status.Error(codes.Unauthenticated, "actor identity missing")
	}

	return actorID, nil
}
