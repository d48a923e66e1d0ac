package rpc

import "time"

// Request and response payloads for the RPC surface. The transport
// layer deserializes the wire format into these shapes before the
// handlers see them.

type (
	SortEntry struct {
		Field string `json:"field"`
		Order string `json:"order"`
	}

	FilterEntry struct {
		Field    string `json:"field"`
		Operator string `json:"operator"`
		Value    any    `json:"value"`
	}

	// SearchBody is the common search envelope: free text, sort keys,
	// structured filter rules, the legacy flat filter map and a window.
	SearchBody struct {
		Term   string         `json:"term,omitempty"`
		Sort   []SortEntry    `json:"sort,omitempty"`
		Rules  []FilterEntry  `json:"rules,omitempty"`
		Filter map[string]any `json:"filter,omitempty"`
		Skip   uint           `json:"skip,omitempty"`
		Take   uint           `json:"take,omitempty"`
	}

	PageMeta struct {
		Total   uint `json:"total"`
		Skip    uint `json:"skip"`
		Take    uint `json:"take"`
		HasNext bool `json:"hasNext"`
		HasPrev bool `json:"hasPrev"`
	}
)

type (
	CreateProjectRequest struct {
		WorkspaceID string `json:"workspaceId"`
		Name        string `json:"name"`
		Slug        string `json:"slug"`
		Description string `json:"description,omitempty"`
	}

	GetProjectRequest struct {
		ProjectID string `json:"projectId"`
	}

	SearchProjectsRequest struct {
		WorkspaceID string     `json:"workspaceId"`
		Search      SearchBody `json:"search"`
	}

	UpdateProjectRequest struct {
		ProjectID   string `json:"projectId"`
		Name        string `json:"name"`
		Description string `json:"description,omitempty"`
	}

	ArchiveProjectRequest struct {
		ProjectID string `json:"projectId"`
	}

	DeleteProjectRequest struct {
		ProjectID string `json:"projectId"`
	}

	ProjectResponse struct {
		ID          string    `json:"id"`
		WorkspaceID string    `json:"workspaceId"`
		Name        string    `json:"name"`
		Slug        string    `json:"slug"`
		Description string    `json:"description,omitempty"`
		Status      string    `json:"status"`
		CreatedAt   time.Time `json:"createdAt"`
		UpdatedAt   time.Time `json:"updatedAt"`
	}

	ProjectPageResponse struct {
		Items []*ProjectResponse `json:"items"`
		Meta  PageMeta           `json:"meta"`
	}
)

type (
	CreateSprintRequest struct {
		ProjectID string    `json:"projectId"`
		Name      string    `json:"name"`
		Goal      string    `json:"goal,omitempty"`
		StartsAt  time.Time `json:"startsAt"`
		EndsAt    time.Time `json:"endsAt"`
	}

	GetSprintRequest struct {
		SprintID string `json:"sprintId"`
	}

	SearchSprintsRequest struct {
		ProjectID string     `json:"projectId"`
		Search    SearchBody `json:"search"`
	}

	UpdateSprintRequest struct {
		SprintID string    `json:"sprintId"`
		Name     string    `json:"name"`
		Goal     string    `json:"goal,omitempty"`
		StartsAt time.Time `json:"startsAt"`
		EndsAt   time.Time `json:"endsAt"`
	}

	StartSprintRequest struct {
		SprintID string `json:"sprintId"`
	}

	CompleteSprintRequest struct {
		SprintID string `json:"sprintId"`
	}

	DeleteSprintRequest struct {
		SprintID string `json:"sprintId"`
	}

	SprintResponse struct {
		ID        string    `json:"id"`
		ProjectID string    `json:"projectId"`
		Name      string    `json:"name"`
		Goal      string    `json:"goal,omitempty"`
		Status    string    `json:"status"`
		StartsAt  time.Time `json:"startsAt"`
		EndsAt    time.Time `json:"endsAt"`
		CreatedAt time.Time `json:"createdAt"`
		UpdatedAt time.Time `json:"updatedAt"`
	}

	SprintPageResponse struct {
		Items []*SprintResponse `json:"items"`
		Meta  PageMeta          `json:"meta"`
	}
)

type (
	CreateTicketRequest struct {
		ProjectID   string  `json:"projectId"`
		SprintID    *string `json:"sprintId,omitempty"`
		Title       string  `json:"title"`
		Description string  `json:"description,omitempty"`
		Priority    string  `json:"priority"`
		Estimate    float64 `json:"estimate,omitempty"`
		AssigneeID  *string `json:"assigneeId,omitempty"`
	}

	GetTicketRequest struct {
		TicketID string `json:"ticketId"`
	}

	SearchTicketsRequest struct {
		ProjectID string     `json:"projectId"`
		Search    SearchBody `json:"search"`
	}

	UpdateTicketRequest struct {
		TicketID    string  `json:"ticketId"`
		Title       string  `json:"title"`
		Description string  `json:"description,omitempty"`
		Priority    string  `json:"priority"`
		Estimate    float64 `json:"estimate,omitempty"`
	}

	TransitionTicketRequest struct {
		TicketID string `json:"ticketId"`
		To       string `json:"to"`
	}

	MoveTicketRequest struct {
		TicketID string  `json:"ticketId"`
		SprintID *string `json:"sprintId,omitempty"`
	}

	AssignTicketRequest struct {
		TicketID   string  `json:"ticketId"`
		AssigneeID *string `json:"assigneeId,omitempty"`
	}

	DeleteTicketRequest struct {
		TicketID string `json:"ticketId"`
	}

	TicketResponse struct {
		ID          string    `json:"id"`
		ProjectID   string    `json:"projectId"`
		SprintID    *string   `json:"sprintId,omitempty"`
		Title       string    `json:"title"`
		Description string    `json:"description,omitempty"`
		Status      string    `json:"status"`
		Priority    string    `json:"priority"`
		Estimate    float64   `json:"estimate"`
		AssigneeID  *string   `json:"assigneeId,omitempty"`
		CreatedAt   time.Time `json:"createdAt"`
		UpdatedAt   time.Time `json:"updatedAt"`
	}

	TicketPageResponse struct {
		Items []*TicketResponse `json:"items"`
		Meta  PageMeta          `json:"meta"`
	}
)
