package rpc_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/Leozerbib/gile-back-sub000/internal/adapters/inbound/rpc"
	"github.com/Leozerbib/gile-back-sub000/internal/config"
	"github.com/Leozerbib/gile-back-sub000/pkg/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func TestContextExtractorInterceptor(t *testing.T) {
	t.Parallel()

	t.Run("extracts request id, correlation id and actor id", func(t *testing.T) {
		t.Parallel()

		interceptor := rpc.ContextExtractorInterceptor()

		md := metadata.Pairs(
			rpc.MetadataKeyRequestID, "req-123",
			rpc.MetadataKeyCorrelationID, "corr-456",
			rpc.MetadataKeyActorID, "user-1",
		)
		ctx := metadata.NewIncomingContext(context.Background(), md)

		var capturedCtx context.Context
		handler := func(ctx context.Context, _ any) (any, error) {
			capturedCtx = ctx

			return "response", nil
		}

		resp, err := interceptor(ctx, nil, &grpc.UnaryServerInfo{}, handler)

		require.NoError(t, err)
		require.Equal(t, "response", resp)
		require.Equal(t, "req-123", rpc.GetRequestID(capturedCtx))
		require.Equal(t, "corr-456", rpc.GetCorrelationID(capturedCtx))
		require.Equal(t, "user-1", rpc.GetActorID(capturedCtx))
	})

	t.Run("generates a request id when none is supplied", func(t *testing.T) {
		t.Parallel()

		interceptor := rpc.ContextExtractorInterceptor()

		var capturedCtx context.Context
		handler := func(ctx context.Context, _ any) (any, error) {
			capturedCtx = ctx

			return nil, nil
		}

		_, err := interceptor(context.Background(), nil, &grpc.UnaryServerInfo{}, handler)

		require.NoError(t, err)

		requestID := rpc.GetRequestID(capturedCtx)
		require.NotEmpty(t, requestID)
		_, err = uuid.Parse(requestID)
		require.NoError(t, err)
	})

	t.Run("missing actor id leaves the context empty", func(t *testing.T) {
		t.Parallel()

		interceptor := rpc.ContextExtractorInterceptor()

		var capturedCtx context.Context
		handler := func(ctx context.Context, _ any) (any, error) {
			capturedCtx = ctx

			return nil, nil
		}

		_, err := interceptor(context.Background(), nil, &grpc.UnaryServerInfo{}, handler)

		require.NoError(t, err)
		require.Empty(t, rpc.GetActorID(capturedCtx))
	})
}

func TestAccessLogInterceptor(t *testing.T) {
	t.Parallel()

	t.Run("logs completed requests", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.NewBufferedTestLogger(&buf)

		interceptor := rpc.AccessLogInterceptor(log, config.AccessLog{Enabled: true})

		ctx := rpc.WithActorID(context.Background(), "user-1")
		info := &grpc.UnaryServerInfo{FullMethod: "/tracker.v1.TicketService/SearchTickets"}

		handler := func(ctx context.Context, _ any) (any, error) {
			return "ok", nil
		}

		_, err := interceptor(ctx, nil, info, handler)

		require.NoError(t, err)
		require.Contains(t, buf.String(), "/tracker.v1.TicketService/SearchTickets")
		require.Contains(t, buf.String(), "user-1")
		require.Contains(t, buf.String(), "gRPC request completed")
	})

	t.Run("logs the status code of failed requests", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.NewBufferedTestLogger(&buf)

		interceptor := rpc.AccessLogInterceptor(log, config.AccessLog{Enabled: true})

		info := &grpc.UnaryServerInfo{FullMethod: "/tracker.v1.TicketService/GetTicket"}

		handler := func(ctx context.Context, _ any) (any, error) {
			return nil, status.Error(codes.NotFound, "ticket not found")
		}

		_, err := interceptor(context.Background(), nil, info, handler)

		require.Error(t, err)
		require.Contains(t, buf.String(), "NotFound")
		require.Contains(t, buf.String(), "gRPC request failed")
	})

	t.Run("skips health checks by default", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.NewBufferedTestLogger(&buf)

		interceptor := rpc.AccessLogInterceptor(log, config.AccessLog{Enabled: true, LogHealthChecks: false})

		info := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}

		handler := func(ctx context.Context, _ any) (any, error) {
			return nil, nil
		}

		_, err := interceptor(context.Background(), nil, info, handler)

		require.NoError(t, err)
		require.Empty(t, buf.String())
	})

	t.Run("disabled access log stays silent", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.NewBufferedTestLogger(&buf)

		interceptor := rpc.AccessLogInterceptor(log, config.AccessLog{Enabled: false})

		info := &grpc.UnaryServerInfo{FullMethod: "/tracker.v1.TicketService/SearchTickets"}

		handler := func(ctx context.Context, _ any) (any, error) {
			return nil, errors.New("boom")
		}

		_, err := interceptor(context.Background(), nil, info, handler)

		require.Error(t, err)
		require.Empty(t, buf.String())
	})

	t.Run("redacts sensitive metadata", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.NewBufferedTestLogger(&buf)

		interceptor := rpc.AccessLogInterceptor(log, config.AccessLog{Enabled: true, IncludeMetadata: true})

		md := metadata.Pairs("authorization", "Bearer secret-token", "user-agent", "grpc-go/1.78.0")
		ctx := metadata.NewIncomingContext(context.Background(), md)

		info := &grpc.UnaryServerInfo{FullMethod: "/tracker.v1.TicketService/SearchTickets"}

		handler := func(ctx context.Context, _ any) (any, error) {
			return nil, nil
		}

		_, err := interceptor(ctx, nil, info, handler)

		require.NoError(t, err)
		require.NotContains(t, buf.String(), "secret-token")
		require.Contains(t, buf.String(), "[REDACTED]")
	})
}
