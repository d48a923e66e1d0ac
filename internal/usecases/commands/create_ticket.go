package commands

import (
	"context"

	"github.com/Leozerbib/gile-back-sub000/internal/domain/model"
	"github.com/Leozerbib/gile-back-sub000/internal/ports"
	"github.com/Leozerbib/gile-back-sub000/pkg/decorator"
	"github.com/Leozerbib/gile-back-sub000/pkg/logger"
	"github.com/Leozerbib/gile-back-sub000/pkg/metrics"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	CreateTicketCommand struct {
		ActorID     string
		ProjectID   model.ProjectID
		SprintID    *model.SprintID
		Title       string
		Description string
		Priority    model.TicketPriority
		Estimate    float64
		AssigneeID  *string
	}

	CreateTicketCommandHandler = decorator.CommandHandler[CreateTicketCommand, *model.Ticket]

	createTicketCommandHandler struct {
		ticketService ports.TicketService
	}
)

func NewCreateTicketCommandHandler(
	svc ports.TicketService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) CreateTicketCommandHandler {
	return decorator.ApplyCommandDecorators[CreateTicketCommand, *model.Ticket](
		createTicketCommandHandler{ticketService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h createTicketCommandHandler) Handle(ctx context.Context, cmd CreateTicketCommand) (*model.Ticket, error) {
	return h.ticketService.CreateTicket(ctx, ports.CreateTicketParams{
		ActorID:     cmd.ActorID,
		ProjectID:   cmd.ProjectID,
		SprintID:    cmd.SprintID,
		Title:       cmd.Title,
		Description: cmd.Description,
		Priority:    cmd.Priority,
		Estimate:    cmd.Estimate,
		AssigneeID:  cmd.AssigneeID,
	})
}
