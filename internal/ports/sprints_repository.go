package ports

import (
	"context"

	"github.com/Leozerbib/gile-back-sub000/internal/domain/model"
)

// SprintRepository defines the interface for sprint persistence operations.
type SprintRepository interface {
	// Create stores a new sprint.
	Create(ctx context.Context, sprint *model.Sprint) error

	// FetchByID retrieves a sprint by its ID.
	FetchByID(ctx context.Context, id model.SprintID) (*model.Sprint, error)

	// Search retrieves a page of sprints matching the criteria.
	Search(ctx context.Context, criteria model.Criteria) (model.Page[*model.Sprint], error)

	// Update updates an existing sprint.
	Update(ctx context.Context, sprint *model.Sprint) error

	// Delete removes a sprint by its ID.
	Delete(ctx context.Context, id model.SprintID) error
}
