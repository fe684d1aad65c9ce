package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/medchain/docanchor/internal/common"
)

// RequestLogger assigns every call a request ID and logs method, outcome, and
// latency. The request ID rides the context so deeper layers can pick it up.
func RequestLogger(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		reqID := uuid.NewString()
		ctx = common.WithRequestID(ctx, reqID)

		start := time.Now()
		resp, err := handler(ctx, req)
		elapsed := time.Since(start)

		if err != nil {
			logger.Error("rpc failed",
				"request_id", reqID,
				"method", info.FullMethod,
				"code", status.Code(err).String(),
				"elapsed_ms", elapsed.Milliseconds(),
				"error", err)
			return resp, err
		}
		logger.Info("rpc ok",
			"request_id", reqID,
			"method", info.FullMethod,
			"elapsed_ms", elapsed.Milliseconds())
		return resp, nil
	}
}
