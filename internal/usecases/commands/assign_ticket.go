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
	// AssignTicketCommand sets the assignee, or clears it when
	// AssigneeID is nil.
	AssignTicketCommand struct {
		ActorID    string
		TicketID   model.TicketID
		AssigneeID *string
	}

	AssignTicketCommandHandler = decorator.CommandHandler[AssignTicketCommand, *model.Ticket]

	assignTicketCommandHandler struct {
		ticketService ports.TicketService
	}
)

func NewAssignTicketCommandHandler(
	svc ports.TicketService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) AssignTicketCommandHandler {
	return decorator.ApplyCommandDecorators[AssignTicketCommand, *model.Ticket](
		assignTicketCommandHandler{ticketService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h assignTicketCommandHandler) Handle(ctx context.Context, cmd AssignTicketCommand) (*model.Ticket, error) {
	return h.ticketService.AssignTicket(ctx, cmd.ActorID, cmd.TicketID, cmd.AssigneeID)
}
