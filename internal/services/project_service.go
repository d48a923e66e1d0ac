package services

import (
	"context"
	"regexp"

	"github.com/Leozerbib/gile-back-sub000/internal/domain/model"
	"github.com/Leozerbib/gile-back-sub000/internal/ports"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

type ProjectService struct {
	projects ports.ProjectRepository
	access   ports.AccessChecker
}

func NewProjectService(projects ports.ProjectRepository, access ports.AccessChecker) *ProjectService {
	return &ProjectService{
		projects: projects,
		access:   access,
	}
}

func (s *ProjectService) CreateProject(ctx context.Context, params ports.CreateProjectParams) (*model.Project, error) {
	if err := s.authorize(ctx, params.WorkspaceID.String(), params.ActorID, ports.ActionWrite, ports.ResourceWorkspace); err != nil {
		return nil, err
	}

	if err := validateProjectFields(params.Name, params.Slug); err != nil {
		return nil, err
	}

	project := model.NewProject(params.WorkspaceID, params.Name, params.Slug, params.Description)

	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

func (s *ProjectService) GetProject(ctx context.Context, actorID string, id model.ProjectID) (*model.Project, error) {
	if err := s.authorize(ctx, id.String(), actorID, ports.ActionRead, ports.ResourceProject); err != nil {
		return nil, err
	}

	return s.projects.FetchByID(ctx, id)
}

// SearchProjects runs a scoped search within one workspace.
func (s *ProjectService) SearchProjects(ctx context.Context, params ports.SearchProjectsParams) (model.Page[*model.Project], error) {
	var zero model.Page[*model.Project]

	if err := s.authorize(ctx, params.WorkspaceID.String(), params.ActorID, ports.ActionRead, ports.ResourceWorkspace); err != nil {
		return zero, err
	}

	request := params.Request.WithDefaultTake(model.DefaultProjectPageSize)
	if err := request.Validate(); err != nil {
		return zero, err
	}

	scope := model.Eq("workspaceId", params.WorkspaceID.String())

	criteria, err := model.SearchCriteria(scope, request, model.ProjectSearchableFields())
	if err != nil {
		return zero, err
	}

	return s.projects.Search(ctx, criteria)
}

func (s *ProjectService) UpdateProject(ctx context.Context, actorID string, id model.ProjectID, name, description string) (*model.Project, error) {
	if err := s.authorize(ctx, id.String(), actorID, ports.ActionWrite, ports.ResourceProject); err != nil {
		return nil, err
	}

	if name == "" {
		validationErrors := model.NewValidationErrors()
		validationErrors.Add("name", "name must not be empty")

		return nil, validationErrors
	}

	project, err := s.projects.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := project.Update(name, description); err != nil {
		return nil, err
	}

	if err := s.projects.Update(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

func (s *ProjectService) ArchiveProject(ctx context.Context, actorID string, id model.ProjectID) (*model.Project, error) {
	if err := s.authorize(ctx, id.String(), actorID, ports.ActionWrite, ports.ResourceProject); err != nil {
		return nil, err
	}

	project, err := s.projects.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}

	project.Archive()

	if err := s.projects.Update(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

func (s *ProjectService) DeleteProject(ctx context.Context, actorID string, id model.ProjectID) error {
	if err := s.authorize(ctx, id.String(), actorID, ports.ActionDelete, ports.ResourceProject); err != nil {
		return err
	}

	return s.projects.Delete(ctx, id)
}

func (s *ProjectService) authorize(ctx context.Context, resourceID, actorID string, action ports.Action, resourceType ports.ResourceType) error {
	allowed, err := s.access.HasRight(ctx, resourceID, actorID, action, resourceType)
	if err != nil {
		return err
	}

	if !allowed {
		return model.ErrAccessDenied
	}

	return nil
}

func validateProjectFields(name, slug string) error {
	validationErrors := model.NewValidationErrors()

	if name == "" {
		validationErrors.Add("name", "name must not be empty")
	}

	if !slugPattern.MatchString(slug) {
		validationErrors.Add("slug", "slug must be lowercase letters, digits and single dashes")
	}

	if len(slug) > 64 {
		validationErrors.Add("slug", "slug must not exceed 64 characters")
	}

	if validationErrors.HasErrors() {
		return validationErrors
	}

	return nil
}
