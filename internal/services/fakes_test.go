package services_test

import (
	"context"

	"github.com/Leozerbib/gile-back-sub000/internal/domain/model"
	"github.com/Leozerbib/gile-back-sub000/internal/ports"
)

type accessCall struct {
	resourceID   string
	actorID      string
	action       ports.Action
	resourceType ports.ResourceType
}

type fakeAccessChecker struct {
	allowed bool
	err     error
	calls   []accessCall
}

func allowAll() *fakeAccessChecker {
	return &fakeAccessChecker{allowed: true}
}

func denyAll() *fakeAccessChecker {
	return &fakeAccessChecker{allowed: false}
}

func (f *fakeAccessChecker) HasRight(
	_ context.Context,
	resourceID, actorID string,
	action ports.Action,
	resourceType ports.ResourceType,
) (bool, error) {
	f.calls = append(f.calls, accessCall{
		resourceID:   resourceID,
		actorID:      actorID,
		action:       action,
		resourceType: resourceType,
	})

	return f.allowed, f.err
}

type fakeTicketRepo struct {
	byID         map[model.TicketID]*model.Ticket
	created      []*model.Ticket
	updated      []*model.Ticket
	deleted      []model.TicketID
	searchedWith *model.Criteria
	searchPage   model.Page[*model.Ticket]
	err          error
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{byID: make(map[model.TicketID]*model.Ticket)}
}

func (f *fakeTicketRepo) Create(_ context.Context, ticket *model.Ticket) error {
	if f.err != nil {
		return f.err
	}

	f.created = append(f.created, ticket)
	f.byID[ticket.ID] = ticket

	return nil
}

func (f *fakeTicketRepo) FetchByID(_ context.Context, id model.TicketID) (*model.Ticket, error) {
	if f.err != nil {
		return nil, f.err
	}

	ticket, ok := f.byID[id]
	if !ok {
		return nil, model.ErrTicketNotFound
	}

	return ticket, nil
}

func (f *fakeTicketRepo) Search(_ context.Context, criteria model.Criteria) (model.Page[*model.Ticket], error) {
	if f.err != nil {
		return model.Page[*model.Ticket]{}, f.err
	}

	f.searchedWith = &criteria

	return f.searchPage, nil
}

func (f *fakeTicketRepo) Update(_ context.Context, ticket *model.Ticket) error {
	if f.err != nil {
		return f.err
	}

	f.updated = append(f.updated, ticket)
	f.byID[ticket.ID] = ticket

	return nil
}

func (f *fakeTicketRepo) Delete(_ context.Context, id model.TicketID) error {
	if f.err != nil {
		return f.err
	}

	f.deleted = append(f.deleted, id)

	return nil
}

type fakeSprintRepo struct {
	byID         map[model.SprintID]*model.Sprint
	created      []*model.Sprint
	updated      []*model.Sprint
	deleted      []model.SprintID
	searchedWith *model.Criteria
	searchPage   model.Page[*model.Sprint]
	err          error
}

func newFakeSprintRepo() *fakeSprintRepo {
	return &fakeSprintRepo{byID: make(map[model.SprintID]*model.Sprint)}
}

func (f *fakeSprintRepo) Create(_ context.Context, sprint *model.Sprint) error {
	if f.err != nil {
		return f.err
	}

	f.created = append(f.created, sprint)
	f.byID[sprint.ID] = sprint

	return nil
}

func (f *fakeSprintRepo) FetchByID(_ context.Context, id model.SprintID) (*model.Sprint, error) {
	if f.err != nil {
		return nil, f.err
	}

	sprint, ok := f.byID[id]
	if !ok {
		return nil, model.ErrSprintNotFound
	}

	return sprint, nil
}

func (f *fakeSprintRepo) Search(_ context.Context, criteria model.Criteria) (model.Page[*model.Sprint], error) {
	if f.err != nil {
		return model.Page[*model.Sprint]{}, f.err
	}

	f.searchedWith = &criteria

	return f.searchPage, nil
}

func (f *fakeSprintRepo) Update(_ context.Context, sprint *model.Sprint) error {
	if f.err != nil {
		return f.err
	}

	f.updated = append(f.updated, sprint)
	f.byID[sprint.ID] = sprint

	return nil
}

func (f *fakeSprintRepo) Delete(_ context.Context, id model.SprintID) error {
	if f.err != nil {
		return f.err
	}

	f.deleted = append(f.deleted, id)

	return nil
}

type fakeProjectRepo struct {
	byID         map[model.ProjectID]*model.Project
	created      []*model.Project
	updated      []*model.Project
	deleted      []model.ProjectID
	searchedWith *model.Criteria
	searchPage   model.Page[*model.Project]
	err          error
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{byID: make(map[model.ProjectID]*model.Project)}
}

func (f *fakeProjectRepo) Create(_ context.Context, project *model.Project) error {
	if f.err != nil {
		return f.err
	}

	f.created = append(f.created, project)
	f.byID[project.ID] = project

	return nil
}

func (f *fakeProjectRepo) FetchByID(_ context.Context, id model.ProjectID) (*model.Project, error) {
	if f.err != nil {
		return nil, f.err
	}

	project, ok := f.byID[id]
	if !ok {
		return nil, model.ErrProjectNotFound
	}

	return project, nil
}

func (f *fakeProjectRepo) Search(_ context.Context, criteria model.Criteria) (model.Page[*model.Project], error) {
	if f.err != nil {
		return model.Page[*model.Project]{}, f.err
	}

	f.searchedWith = &criteria

	return f.searchPage, nil
}

func (f *fakeProjectRepo) Update(_ context.Context, project *model.Project) error {
	if f.err != nil {
		return f.err
	}

	f.updated = append(f.updated, project)
	f.byID[project.ID] = project

	return nil
}

func (f *fakeProjectRepo) Delete(_ context.Context, id model.ProjectID) error {
	if f.err != nil {
		return f.err
	}

	f.deleted = append(f.deleted, id)

	return nil
}

func (f *fakeProjectRepo) Exists(_ context.Context, id model.ProjectID) (bool, error) {
	if f.err != nil {
		return false, f.err
	}

	_, ok := f.byID[id]

	return ok, nil
}
