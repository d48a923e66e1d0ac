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
	DeleteTicketCommand struct {
		ActorID  string
		TicketID model.TicketID
	}

	DeleteTicketCommandHandler = decorator.CommandHandler[DeleteTicketCommand, struct{}]

	deleteTicketCommandHandler struct {
		ticketService ports.TicketService
	}
)

func NewDeleteTicketCommandHandler(
	svc ports.TicketService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) DeleteTicketCommandHandler {
	return decorator.ApplyCommandDecorators[DeleteTicketCommand, struct{}](
		deleteTicketCommandHandler{ticketService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h deleteTicketCommandHandler) Handle(ctx context.Context, cmd DeleteTicketCommand) (struct{}, error) {
	if err := h.ticketService.DeleteTicket(ctx, cmd.ActorID, cmd.TicketID); err != nil {
		return struct{}{}, err
	}

	return struct{}{}, nil
}
