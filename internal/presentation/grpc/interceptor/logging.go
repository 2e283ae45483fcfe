package interceptor

import (
	"context"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	otelinfra "transaction-api/internal/infrastructure/observability/otel"
)

// RequestIDMetadataKey リクエストIDのメタデータキー
const RequestIDMetadataKey = "x-request-id"

// LoggingInterceptor リクエストIDの付与・ログ出力・メトリクス記録を行うインターセプター
// パニックはcodes.Internalに変換する
func LoggingInterceptor(logger *otelinfra.Logger, metrics *otelinfra.Metrics) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (resp interface{}, err error) {
		start := time.Now()

		requestID := requestIDFromMetadata(ctx)
		_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDMetadataKey, requestID))

		metrics.RecordRequest(ctx, "grpc", info.FullMethod)

		defer func() {
			if r := recover(); r != nil {
				logger.Error(ctx, "Panic recovered in gRPC handler", nil, map[string]interface{}{
					"method":     info.FullMethod,
					"request_id": requestID,
					"panic":      r,
				})
				resp = nil
				err = status.Error(codes.Internal, "Internal server error.")
			}

			duration := time.Since(start)
			metrics.RecordResponseTime(ctx, "grpc", info.FullMethod, duration.Seconds())

			code := status.Code(err)
			fields := map[string]interface{}{
				"method":      info.FullMethod,
				"request_id":  requestID,
				"code":        code.String(),
				"duration_ms": duration.Milliseconds(),
			}

			switch code {
			case codes.OK:
				logger.Info(ctx, "gRPC request completed", fields)
			case codes.Internal, codes.Unknown, codes.Unavailable:
				metrics.RecordError(ctx, "server_error")
				logger.Error(ctx, "gRPC request failed", err, fields)
			default:
				metrics.RecordError(ctx, "client_error")
				logger.Warn(ctx, "gRPC request rejected", fields)
			}
		}()

		return handler(ctx, req)
	}
}

// requestIDFromMetadata 受信メタデータのリクエストIDを返す。無ければ生成する
func requestIDFromMetadata(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if ids := md.Get(RequestIDMetadataKey); len(ids) > 0 && ids[0] != "" {
			return ids[0]
		}
	}
	return uuid.NewString()
}
