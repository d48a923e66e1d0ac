package queries

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
	GetTicketQuery struct {
		ActorID  string
		TicketID model.TicketID
	}

	GetTicketQueryHandler = decorator.QueryHandler[GetTicketQuery, *model.Ticket]

	getTicketQueryHandler struct {
		ticketService ports.TicketService
	}
)

func NewGetTicketQueryHandler(
	svc ports.TicketService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) GetTicketQueryHandler {
	return decorator.ApplyQueryDecorators[GetTicketQuery, *model.Ticket](
		getTicketQueryHandler{ticketService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h getTicketQueryHandler) Execute(ctx context.Context, query GetTicketQuery) (*model.Ticket, error) {
	return h.ticketService.GetTicket(ctx, query.ActorID, query.TicketID)
}
