package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type ProjectStatus string

const (
	ProjectStatusActive   ProjectStatus = "active"
	ProjectStatusArchived ProjectStatus = "archived"

	// DefaultProjectPageSize is the take window applied to project
	// searches when the caller supplies none.
	DefaultProjectPageSize uint = 20
)

// ProjectSearchableFields are the columns scanned by free-text search,
// in OR-branch order.
func ProjectSearchableFields() []string {
	return []string{"name", "description"}
}

func (s ProjectStatus) String() string {
	return string(s)
}

func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusActive, ProjectStatusArchived:
		return true
	default:
		return false
	}
}

func ParseProjectStatus(s string) (ProjectStatus, error) {
	status := ProjectStatus(strings.ToLower(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", fmt.Errorf("%w: %s", ErrInvalidProjectStatus, s)
	}

	return status, nil
}

type (
	ProjectID struct {
		uuid.UUID
	}

	WorkspaceID struct {
		uuid.UUID
	}

	Project struct {
		ID          ProjectID
		WorkspaceID WorkspaceID
		Name        string
		Slug        string
		Description string
		Status      ProjectStatus
		CreatedAt   time.Time
		UpdatedAt   time.Time
	}
)

func NewProjectID() ProjectID {
	return ProjectID{UUID: uuid.Must(uuid.NewV7())}
}

func ParseProjectID(s string) (ProjectID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return ProjectID{}, fmt.Errorf("%w: %v", ErrInvalidProjectID, err)
	}

	return ProjectID{UUID: id}, nil
}

func (p ProjectID) String() string { return p.UUID.String() }
func (p ProjectID) IsZero() bool   { return p.UUID == uuid.Nil }

func NewWorkspaceID() WorkspaceID {
	return WorkspaceID{UUID: uuid.Must(uuid.NewV7())}
}

func ParseWorkspaceID(s string) (WorkspaceID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return WorkspaceID{}, fmt.Errorf("%w: %v", ErrInvalidWorkspaceID, err)
	}

	return WorkspaceID{UUID: id}, nil
}

func (w WorkspaceID) String() string { return w.UUID.String() }
func (w WorkspaceID) IsZero() bool   { return w.UUID == uuid.Nil }

func NewProject(workspaceID WorkspaceID, name, slug, description string) *Project {
	now := time.Now().UTC()

	return &Project{
		ID:          NewProjectID(),
		WorkspaceID: workspaceID,
		Name:        name,
		Slug:        slug,
		Description: description,
		Status:      ProjectStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (p *Project) IsArchived() bool {
	return p.Status == ProjectStatusArchived
}

func (p *Project) Update(name, description string) error {
	if p.IsArchived() {
		return ErrProjectArchived
	}

	p.Name = name
	p.Description = description
	p.UpdatedAt = time.Now().UTC()

	return nil
}

func (p *Project) Archive() {
	p.Status = ProjectStatusArchived
	p.UpdatedAt = time.Now().UTC()
}
