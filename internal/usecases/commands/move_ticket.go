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
	// MoveTicketCommand places a ticket into a sprint, or back onto the
	// backlog when SprintID is nil.
	MoveTicketCommand struct {
		ActorID  string
		TicketID model.TicketID
		SprintID *model.SprintID
	}

	MoveTicketCommandHandler = decorator.CommandHandler[MoveTicketCommand, *model.Ticket]

	moveTicketCommandHandler struct {
		ticketService ports.TicketService
	}
)

func NewMoveTicketCommandHandler(
	svc ports.TicketService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) MoveTicketCommandHandler {
	return decorator.ApplyCommandDecorators[MoveTicketCommand, *model.Ticket](
		moveTicketCommandHandler{ticketService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h moveTicketCommandHandler) Handle(ctx context.Context, cmd MoveTicketCommand) (*model.Ticket, error) {
	return h.ticketService.MoveTicketToSprint(ctx, cmd.ActorID, cmd.TicketID, cmd.SprintID)
}
