package ports

import (
	"context"

	"github.com/Leozerbib/gile-back-sub000/internal/domain/model"
)

// TicketRepository defines the interface for ticket persistence operations.
type TicketRepository interface {
	// Create stores a new ticket.
	Create(ctx context.Context, ticket *model.Ticket) error

	// FetchByID retrieves a ticket by its ID.
	FetchByID(ctx context.Context, id model.TicketID) (*model.Ticket, error)

	// Search retrieves a page of tickets matching the criteria. The row
	// fetch and the total count run as independent reads over the same
	// predicate.
	Search(ctx context.Context, criteria model.Criteria) (model.Page[*model.Ticket], error)

	// Update updates an existing ticket.
	Update(ctx context.Context, ticket *model.Ticket) error

	// Delete removes a ticket by its ID.
	Delete(ctx context.Context, id model.TicketID) error
}
