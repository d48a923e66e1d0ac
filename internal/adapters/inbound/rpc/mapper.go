package rpc

import (
	"github.com/Leozerbib/gile-back-sub000/internal/domain/model"
)

// toSearchRequest normalizes the wire search envelope. Structured rules
// keep their order; the legacy flat filter map is lifted into rules and
// appended after them. Unknown operators and sort directions are
// rejected here, at the boundary, so nothing downstream ever guesses.
func toSearchRequest(body SearchBody) (model.SearchRequest, error) {
	request := model.SearchRequest{
		Term: body.Term,
		Skip: body.Skip,
		Take: body.Take,
	}

	for _, entry := range body.Sort {
		direction, err := model.ParseSortDirection(entry.Order)
		if err != nil {
			return model.SearchRequest{}, err
		}

		request.Sort = append(request.Sort, model.SortSpec{
			Field: entry.Field,
			Order: direction,
		})
	}

	for _, entry := range body.Rules {
		operator, err := model.ParseFilterOperator(entry.Operator)
		if err != nil {
			return model.SearchRequest{}, err
		}

		request.Rules = append(request.Rules, model.FilterRule{
			Field:    entry.Field,
			Operator: operator,
			Value:    entry.Value,
		})
	}

	request.Rules = append(request.Rules, model.LiftFilterMap(body.Filter)...)

	return request, nil
}

func toProjectResponse(project *model.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:          project.ID.String(),
		WorkspaceID: project.WorkspaceID.String(),
		Name:        project.Name,
		Slug:        project.Slug,
		Description: project.Description,
		Status:      project.Status.String(),
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}

func toSprintResponse(sprint *model.Sprint) *SprintResponse {
	return &SprintResponse{
		ID:        sprint.ID.String(),
		ProjectID: sprint.ProjectID.String(),
		Name:      sprint.Name,
		Goal:      sprint.Goal,
		Status:    sprint.Status.String(),
		StartsAt:  sprint.StartsAt,
		EndsAt:    sprint.EndsAt,
		CreatedAt: sprint.CreatedAt,
		UpdatedAt: sprint.UpdatedAt,
	}
}

func toTicketResponse(ticket *model.Ticket) *TicketResponse {
	response := &TicketResponse{
		ID:          ticket.ID.String(),
		ProjectID:   ticket.ProjectID.String(),
		Title:       ticket.Title,
		Description: ticket.Description,
		Status:      ticket.Status.String(),
		Priority:    ticket.Priority.String(),
		Estimate:    ticket.Estimate,
		AssigneeID:  ticket.AssigneeID,
		CreatedAt:   ticket.CreatedAt,
		UpdatedAt:   ticket.UpdatedAt,
	}

	if ticket.SprintID != nil {
		sprintID := ticket.SprintID.String()
		response.SprintID = &sprintID
	}

	return response
}

func toPageMeta[T any](page model.Page[T]) PageMeta {
	return PageMeta{
		Total:   page.Total,
		Skip:    page.Skip,
		Take:    page.Take,
		HasNext: page.HasNext,
		HasPrev: page.HasPrev,
	}
}

func toProjectPageResponse(page model.Page[*model.Project]) *ProjectPageResponse {
	items := make([]*ProjectResponse, len(page.Items))
	for index, project := range page.Items {
		items[index] = toProjectResponse(project)
	}

	return &ProjectPageResponse{Items: items, Meta: toPageMeta(page)}
}

func toSprintPageResponse(page model.Page[*model.Sprint]) *SprintPageResponse {
	items := make([]*SprintResponse, len(page.Items))
	for index, sprint := range page.Items {
		items[index] = toSprintResponse(sprint)
	}

	return &SprintPageResponse{Items: items, Meta: toPageMeta(page)}
}

func toTicketPageResponse(page model.Page[*model.Ticket]) *TicketPageResponse {
	items := make([]*TicketResponse, len(page.Items))
	for index, ticket := range page.Items {
		items[index] = toTicketResponse(ticket)
	}

	return &TicketPageResponse{Items: items, Meta: toPageMeta(page)}
}
