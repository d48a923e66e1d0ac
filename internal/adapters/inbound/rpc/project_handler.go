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

type ProjectsHandler struct {
	app *usecases.Application
}

func NewProjectsHandler(app *usecases.Application) *ProjectsHandler {
	return &ProjectsHandler{app: app}
}

func (h *ProjectsHandler) CreateProject(ctx context.Context, req *CreateProjectRequest) (*ProjectResponse, error) {
	actorID, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}

	workspaceID, err := model.ParseWorkspaceID(req.WorkspaceID)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid workspace ID")
	}

	project, err := h.app.Commands.CreateProject.Handle(ctx, commands.CreateProjectCommand{
		ActorID:     actorID,
		WorkspaceID: workspaceID,
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	})
	if err != nil {
		return nil, toRPCError(err)
	}

	return toProjectResponse(project), nil
}

func (h *ProjectsHandler) GetProject(ctx context.Context, req *GetProjectRequest) (*ProjectResponse, error) {
	actorID, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}

	projectID, err := model.ParseProjectID(req.ProjectID)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid project ID")
	}

	project, err := h.app.Queries.GetProject.Execute(ctx, queries.GetProjectQuery{
		ActorID:   actorID,
		ProjectID: projectID,
	})
	if err != nil {
		return nil, toRPCError(err)
	}

	return toProjectResponse(project), nil
}

func (h *ProjectsHandler) SearchProjects(ctx context.Context, req *SearchProjectsRequest) (*ProjectPageResponse, error) {
	actorID, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}

	workspaceID, err := model.ParseWorkspaceID(req.WorkspaceID)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid workspace ID")
	}

	request, err := toSearchRequest(req.Search)
	if err != nil {
		return nil, toRPCError(err)
	}

	page, err := h.app.Queries.SearchProjects.Execute(ctx, queries.SearchProjectsQuery{
		ActorID:     actorID,
		WorkspaceID: workspaceID,
		Request:     request,
	})
	if err != nil {
		return nil, toRPCError(err)
	}

	return toProjectPageResponse(page), nil
}

func (h *ProjectsHandler) UpdateProject(ctx context.Context, req *UpdateProjectRequest) (*ProjectResponse, error) {
	actorID, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}

	projectID, err := model.ParseProjectID(req.ProjectID)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid project ID")
	}

	project, err := h.app.Commands.UpdateProject.Handle(ctx, commands.UpdateProjectCommand{
		ActorID:     actorID,
		ProjectID:   projectID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return nil, toRPCError(err)
	}

	return toProjectResponse(project), nil
}

func (h *ProjectsHandler) ArchiveProject(ctx context.Context, req *ArchiveProjectRequest) (*ProjectResponse, error) {
	actorID, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}

	projectID, err := model.ParseProjectID(req.ProjectID)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid project ID")
	}

	project, err := h.app.Commands.ArchiveProject.Handle(ctx, commands.ArchiveProjectCommand{
		ActorID:   actorID,
		ProjectID: projectID,
	})
	if err != nil {
		return nil, toRPCError(err)
	}

	return toProjectResponse(project), nil
}

func (h *ProjectsHandler) DeleteProject(ctx context.Context, req *DeleteProjectRequest) error {
	actorID, err := requireActor(ctx)
	if err != nil {
		return err
	}

	projectID, err := model.ParseProjectID(req.ProjectID)
	if err != nil {
		return status.Error(codes.InvalidArgument, "invalid project ID")
	}

	if _, err := h.app.Commands.DeleteProject.Handle(ctx, commands.DeleteProjectCommand{
		ActorID:   actorID,
		ProjectID: projectID,
	}); err != nil {
		return toRPCError(err)
	}

	return nil
}
