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
	TransitionTicketCommand struct {
		ActorID  string
		TicketID model.TicketID
		To       model.TicketStatus
	}

	TransitionTicketCommandHandler = decorator.CommandHandler[TransitionTicketCommand, *model.Ticket]

	transitionTicketCommandHandler struct {
		ticketService ports.TicketService
	}
)

func NewTransitionTicketCommandHandler(
	svc ports.TicketService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) TransitionTicketCommandHandler {
	return decorator.ApplyCommandDecorators[TransitionTicketCommand, *model.Ticket](
		transitionTicketCommandHandler{ticketService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h transitionTicketCommandHandler) Handle(ctx context.Context, cmd TransitionTicketCommand) (*model.Ticket, error) {
	return h.ticketService.TransitionTicket(ctx, cmd.ActorID, cmd.TicketID, cmd.To)
}
