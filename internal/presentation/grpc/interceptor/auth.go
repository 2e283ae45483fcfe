package interceptor

import (
	"context"
	"errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	authapp "transaction-api/internal/application/auth"
	"transaction-api/internal/infrastructure/config"
	otelinfra "transaction-api/internal/infrastructure/observability/otel"
)

type userIDKey struct{}

// UserIDFromContext 認証済みのユーザーIDを取り出す
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey{}).(string)
	return userID, ok
}

// AuthInterceptor JWT認証インターセプター
// protectedMethods に含まれるメソッドのみ認証を要求する
func AuthInterceptor(cfg *config.JWTConfig, logger *otelinfra.Logger, protectedMethods ...string) grpc.UnaryServerInterceptor {
	protected := make(map[string]struct{}, len(protectedMethods))
	for _, m := range protectedMethods {
		protected[m] = struct{}{}
	}

	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		if _, ok := protected[info.FullMethod]; !ok {
			return handler(ctx, req)
		}

		// メタデータからトークンを取得
		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			logger.Warn(ctx, "Missing metadata", nil)
			return nil, status.Error(codes.Unauthenticated, "missing metadata")
		}

		authHeaders := md.Get("authorization")
		if len(authHeaders) == 0 {
			logger.Warn(ctx, "Missing authorization header", nil)
			return nil, status.Error(codes.Unauthenticated, "missing authorization header")
		}

		tokenString, ok := authapp.ExtractBearerToken(authHeaders[0])
		if !ok {
			logger.Warn(ctx, "Invalid authorization header format", nil)
			return nil, status.Error(codes.Unauthenticated, "invalid authorization header format")
		}

		userID, err := authapp.ParseToken(cfg, tokenString)
		if err != nil {
			logger.Warn(ctx, "Invalid token", map[string]interface{}{
				"error":  err.Error(),
				"method": info.FullMethod,
			})
			if errors.Is(err, authapp.ErrMissingUserID) {
				return nil, status.Error(codes.Unauthenticated, "missing user_id in token")
			}
			return nil, status.Error(codes.Unauthenticated, "invalid or expired token")
		}

		return handler(context.WithValue(ctx, userIDKey{}, userID), req)
	}
}
