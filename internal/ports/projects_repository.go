package ports

import (
	"context"

	"github.com/Leozerbib/gile-back-sub000/internal/domain/model"
)

// ProjectRepository defines the interface for project persistence operations.
type ProjectRepository interface {
	// Create stores a new project.
	Create(ctx context.Context, project *model.Project) error

	// FetchByID retrieves a project by its ID.
	FetchByID(ctx context.Context, id model.ProjectID) (*model.Project, error)

	// Search retrieves a page of projects matching the criteria.
	Search(ctx context.Context, criteria model.Criteria) (model.Page[*model.Project], error)

	// Update updates an existing project.
	Update(ctx context.Context, project *model.Project) error

	// Delete removes a project by its ID.
	Delete(ctx context.Context, id model.ProjectID) error

	// Exists checks if a project with the given ID exists.
	Exists(ctx context.Context, id model.ProjectID) (bool, error)
}
