package rpc

import (
	"context"

	"github.com/Leozerbib/gile-back-sub000/internal/usecases"
	"github.com/Leozerbib/gile-back-sub000/internal/usecases/queries"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// HealthHandler serves the standard gRPC health protocol backed by the
// readiness query, so load balancers see the database state.
type HealthHandler struct {
	grpc_health_v1.UnimplementedHealthServer
	app *usecases.Application
}

func NewHealthHandler(app *usecases.Application) *HealthHandler {
	return &HealthHandler{app: app}
}

func (h *HealthHandler) Check(ctx context.Context, _ *grpc_health_v1.HealthCheckRequest) (*grpc_health_v1.HealthCheckResponse, error) {
	return &grpc_health_v1.HealthCheckResponse{
		Status: h.servingStatus(ctx),
	}, nil
}

func (h *HealthHandler) Watch(_ *grpc_health_v1.HealthCheckRequest, stream grpc_health_v1.Health_WatchServer) error {
	return stream.Send(&grpc_health_v1.HealthCheckResponse{
		Status: h.servingStatus(stream.Context()),
	})
}

func (h *HealthHandler) servingStatus(ctx context.Context) grpc_health_v1.HealthCheckResponse_ServingStatus {
	result, err := h.app.Queries.FetchReadiness.Execute(ctx, queries.FetchReadinessQuery{})
	if err != nil || !result.Ready {
		return grpc_health_v1.HealthCheckResponse_NOT_SERVING
	}

	return grpc_health_v1.HealthCheckResponse_SERVING
}
