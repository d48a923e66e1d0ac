package services

import (
	"context"
	"time"

	"github.com/Leozerbib/gile-back-sub000/internal/domain/model"
	"github.com/Leozerbib/gile-back-sub000/internal/ports"
)

type SprintService struct {
	sprints  ports.SprintRepository
	projects ports.ProjectRepository
	access   ports.AccessChecker
}

func NewSprintService(
	sprints ports.SprintRepository,
	projects ports.ProjectRepository,
	access ports.AccessChecker,
) *SprintService {
	return &SprintService{
		sprints:  sprints,
		projects: projects,
		access:   access,
	}
}

func (s *SprintService) CreateSprint(ctx context.Context, params ports.CreateSprintParams) (*model.Sprint, error) {
	if err := s.authorize(ctx, params.ProjectID.String(), params.ActorID, ports.ActionWrite, ports.ResourceProject); err != nil {
		return nil, err
	}

	if err := validateSprintFields(params.Name, params.StartsAt, params.EndsAt); err != nil {
		return nil, err
	}

	exists, err := s.projects.Exists(ctx, params.ProjectID)
	if err != nil {
		return nil, err
	}

	if !exists {
		return nil, model.ErrProjectNotFound
	}

	sprint := model.NewSprint(params.ProjectID, params.Name, params.Goal, params.StartsAt, params.EndsAt)

	if err := s.sprints.Create(ctx, sprint); err != nil {
		return nil, err
	}

	return sprint, nil
}

func (s *SprintService) GetSprint(ctx context.Context, actorID string, id model.SprintID) (*model.Sprint, error) {
	if err := s.authorize(ctx, id.String(), actorID, ports.ActionRead, ports.ResourceSprint); err != nil {
		return nil, err
	}

	return s.sprints.FetchByID(ctx, id)
}

// SearchSprints runs a scoped search within one project.
func (s *SprintService) SearchSprints(ctx context.Context, params ports.SearchSprintsParams) (model.Page[*model.Sprint], error) {
	var zero model.Page[*model.Sprint]

	if err := s.authorize(ctx, params.ProjectID.String(), params.ActorID, ports.ActionRead, ports.ResourceProject); err != nil {
		return zero, err
	}

	request := params.Request.WithDefaultTake(model.DefaultSprintPageSize)
	if err := request.Validate(); err != nil {
		return zero, err
	}

	scope := model.Eq("projectId", params.ProjectID.String())

	criteria, err := model.SearchCriteria(scope, request, model.SprintSearchableFields())
	if err != nil {
		return zero, err
	}

	return s.sprints.Search(ctx, criteria)
}

func (s *SprintService) UpdateSprint(ctx context.Context, actorID string, id model.SprintID, name, goal string, startsAt, endsAt time.Time) (*model.Sprint, error) {
	if err := s.authorize(ctx, id.String(), actorID, ports.ActionWrite, ports.ResourceSprint); err != nil {
		return nil, err
	}

	if err := validateSprintFields(name, startsAt, endsAt); err != nil {
		return nil, err
	}

	sprint, err := s.sprints.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := sprint.Update(name, goal, startsAt, endsAt); err != nil {
		return nil, err
	}

	if err := s.sprints.Update(ctx, sprint); err != nil {
		return nil, err
	}

	return sprint, nil
}

func (s *SprintService) StartSprint(ctx context.Context, actorID string, id model.SprintID) (*model.Sprint, error) {
	return s.transition(ctx, actorID, id, (*model.Sprint).Start)
}

func (s *SprintService) CompleteSprint(ctx context.Context, actorID string, id model.SprintID) (*model.Sprint, error) {
	return s.transition(ctx, actorID, id, (*model.Sprint).Complete)
}

func (s *SprintService) DeleteSprint(ctx context.Context, actorID string, id model.SprintID) error {
	if err := s.authorize(ctx, id.String(), actorID, ports.ActionDelete, ports.ResourceSprint); err != nil {
		return err
	}

	return s.sprints.Delete(ctx, id)
}

func (s *SprintService) transition(ctx context.Context, actorID string, id model.SprintID, move func(*model.Sprint) error) (*model.Sprint, error) {
	if err := s.authorize(ctx, id.String(), actorID, ports.ActionWrite, ports.ResourceSprint); err != nil {
		return nil, err
	}

	sprint, err := s.sprints.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := move(sprint); err != nil {
		return nil, err
	}

	if err := s.sprints.Update(ctx, sprint); err != nil {
		return nil, err
	}

	return sprint, nil
}

func (s *SprintService) authorize(ctx context.Context, resourceID, actorID string, action ports.Action, resourceType ports.ResourceType) error {
	allowed, err := s.access.HasRight(ctx, resourceID, actorID, action, resourceType)
	if err != nil {
		return err
	}

	if !allowed {
		return model.ErrAccessDenied
	}

	return nil
}

func validateSprintFields(name string, startsAt, endsAt time.Time) error {
	validationErrors := model.NewValidationErrors()

	if name == "" {
		validationErrors.Add("name", "name must not be empty")
	}

	if !endsAt.IsZero() && !startsAt.IsZero() && endsAt.Before(startsAt) {
		validationErrors.Add("endsAt", "sprint must end after it starts")
	}

	if validationErrors.HasErrors() {
		return validationErrors
	}

	return nil
}
