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

type SprintsHandler struct {
	app *usecases.Application
}

func NewSprintsHandler(app *usecases.Application) *SprintsHandler {
	return &SprintsHandler{app: app}
}

func (h *SprintsHandler) CreateSprint(ctx context.Context, req *CreateSprintRequest) (*SprintResponse, error) {
	actorID, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}

	projectID, err := model.ParseProjectID(req.ProjectID)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid project ID")
	}

	sprint, err := h.app.Commands.CreateSprint.Handle(ctx, commands.CreateSprintCommand{
		ActorID:   actorID,
		ProjectID: projectID,
		Name:      req.Name,
		Goal:      req.Goal,
		StartsAt:  req.StartsAt,
		EndsAt:    req.EndsAt,
	})
	if err != nil {
		return nil, toRPCError(err)
	}

	return toSprintResponse(sprint), nil
}

func (h *SprintsHandler) GetSprint(ctx context.Context, req *GetSprintRequest) (*SprintResponse, error) {
	actorID, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}

	sprintID, err := model.ParseSprintID(req.SprintID)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid sprint ID")
	}

	sprint, err := h.app.Queries.GetSprint.Execute(ctx, queries.GetSprintQuery{
		ActorID:  actorID,
		SprintID: sprintID,
	})
	if err != nil {
		return nil, toRPCError(err)
	}

	return toSprintResponse(sprint), nil
}

func (h *SprintsHandler) SearchSprints(ctx context.Context, req *SearchSprintsRequest) (*SprintPageResponse, error) {
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

	page, err := h.app.Queries.SearchSprints.Execute(ctx, queries.SearchSprintsQuery{
		ActorID:   actorID,
		ProjectID: projectID,
		Request:   request,
	})
	if err != nil {
		return nil, toRPCError(err)
	}

	return toSprintPageResponse(page), nil
}

func (h *SprintsHandler) UpdateSprint(ctx context.Context, req *UpdateSprintRequest) (*SprintResponse, error) {
	actorID, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}

	sprintID, err := model.ParseSprintID(req.SprintID)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid sprint ID")
	}

	sprint, err := h.app.Commands.UpdateSprint.Handle(ctx, commands.UpdateSprintCommand{
		ActorID:  actorID,
		SprintID: sprintID,
		Name:     req.Name,
		Goal:     req.Goal,
		StartsAt: req.StartsAt,
		EndsAt:   req.EndsAt,
	})
	if err != nil {
		return nil, toRPCError(err)
	}

	return toSprintResponse(sprint), nil
}

func (h *SprintsHandler) StartSprint(ctx context.Context, req *StartSprintRequest) (*SprintResponse, error) {
	actorID, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}

	sprintID, err := model.ParseSprintID(req.SprintID)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid sprint ID")
	}

	sprint, err := h.app.Commands.StartSprint.Handle(ctx, commands.StartSprintCommand{
		ActorID:  actorID,
		SprintID: sprintID,
	})
	if err != nil {
		return nil, toRPCError(err)
	}

	return toSprintResponse(sprint), nil
}

func (h *SprintsHandler) CompleteSprint(ctx context.Context, req *CompleteSprintRequest) (*SprintResponse, error) {
	actorID, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}

	sprintID, err := model.ParseSprintID(req.SprintID)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid sprint ID")
	}

	sprint, err := h.app.Commands.CompleteSprint.Handle(ctx, commands.CompleteSprintCommand{
		ActorID:  actorID,
		SprintID: sprintID,
	})
	if err != nil {
		return nil, toRPCError(err)
	}

	return toSprintResponse(sprint), nil
}

func (h *SprintsHandler) DeleteSprint(ctx context.Context, req *DeleteSprintRequest) error {
	actorID, err := requireActor(ctx)
	if err != nil {
		return err
	}

	sprintID, err := model.ParseSprintID(req.SprintID)
	if err != nil {
		return status.Error(codes.InvalidArgument, "invalid sprint ID")
	}

	if _, err := h.app.Commands.DeleteSprint.Handle(ctx, commands.DeleteSprintCommand{
		ActorID:  actorID,
		SprintID: sprintID,
	}); err != nil {
		return toRPCError(err)
	}

	return nil
}
