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
	UpdateTicketCommand struct {
		ActorID     string
		TicketID    model.TicketID
		Title       string
		Description string
		Priority    model.TicketPriority
		Estimate    float64
	}

	UpdateTicketCommandHandler = decorator.CommandHandler[UpdateTicketCommand, *model.Ticket]

	updateTicketCommandHandler struct {
		ticketService ports.TicketService
	}
)

func NewUpdateTicketCommandHandler(
	svc ports.TicketService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) UpdateTicketCommandHandler {
	return decorator.ApplyCommandDecorators[UpdateTicketCommand, *model.Ticket](
		updateTicketCommandHandler{ticketService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h updateTicketCommandHandler) Handle(ctx context.Context, cmd UpdateTicketCommand) (*model.Ticket, error) {
	return h.ticketService.UpdateTicket(ctx, ports.UpdateTicketParams{
		ActorID:     cmd.ActorID,
		TicketID:    cmd.TicketID,
		Title:       cmd.Title,
		Description: cmd.Description,
		Priority:    cmd.Priority,
		Estimate:    cmd.Estimate,
	})
}
