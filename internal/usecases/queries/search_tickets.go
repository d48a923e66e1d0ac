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
	// SearchTicketsQuery is keyed by its JSON encoding when results are
	// cached, so the actor is part of the key and no actor ever sees a
	// page computed for someone else's rights.
	SearchTicketsQuery struct {
		ActorID   string
		ProjectID model.ProjectID
		Request   model.SearchRequest
	}

	SearchTicketsQueryHandler = decorator.QueryHandler[SearchTicketsQuery, model.Page[*model.Ticket]]

	searchTicketsQueryHandler struct {
		ticketService ports.TicketService
	}
)

func NewSearchTicketsQueryHandler(
	svc ports.TicketService,
	searchCache decorator.Cache[SearchTicketsQuery, model.Page[*model.Ticket]],
	cacheConfig decorator.CacheConfig,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) SearchTicketsQueryHandler {
	cached := decorator.NewQueryCachingDecorator[SearchTicketsQuery, model.Page[*model.Ticket]](
		searchTicketsQueryHandler{ticketService: svc},
		searchCache,
		cacheConfig,
	)

	return decorator.ApplyQueryDecorators[SearchTicketsQuery, model.Page[*model.Ticket]](
		cached,
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h searchTicketsQueryHandler) Execute(ctx context.Context, query SearchTicketsQuery) (model.Page[*model.Ticket], error) {
	return h.ticketService.SearchTickets(ctx, ports.SearchTicketsParams{
		ActorID:   query.ActorID,
		ProjectID: query.ProjectID,
		Request:   query.Request,
	})
}
