package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"transaction-api/internal/domain/transaction"
	"transaction-api/internal/infrastructure/config"
	otelinfra "transaction-api/internal/infrastructure/observability/otel"
)

// SampleSigner サンプル取引の署名を生成する
type SampleSigner interface {
	SampleSignature(ctx context.Context, timestamp string) (string, error)
}

// AuthApplicationService 認証アプリケーションサービス
type AuthApplicationService struct {
	jwtConfig   *config.JWTConfig
	credentials *config.DemoLoginConfig
	signer      SampleSigner
	logger      *otelinfra.Logger
	metrics     *otelinfra.Metrics
	now         func() time.Time
}

// NewAuthApplicationService 新しいAuthApplicationServiceを作成
func NewAuthApplicationService(
	jwtConfig *config.JWTConfig,
	credentials *config.DemoLoginConfig,
	signer SampleSigner,
	logger *otelinfra.Logger,
	metrics *otelinfra.Metrics,
) *AuthApplicationService {
	return &AuthApplicationService{
		jwtConfig:   jwtConfig,
		credentials: credentials,
		signer:      signer,
		logger:      logger,
		metrics:     metrics,
		now:         time.Now,
	}
}

// Login デモ用の認証情報を確認し、サンプル署名とJWTトークンを返す
func (s *AuthApplicationService) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	tracer := otel.Tracer("auth-service")
	ctx, span := tracer.Start(ctx, "AuthApplicationService.Login")
	defer span.End()

	span.SetAttributes(
		attribute.String("username", req.Username),
	)

	if !s.credentialsMatch(req) {
		err := ErrInvalidCredentials
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.Warn(ctx, "Login failed", map[string]interface{}{
			"username": req.Username,
		})
		s.metrics.RecordLogin(ctx, false)
		return nil, err
	}

	sig, err := s.signer.SampleSignature(ctx, transaction.SampleLoginTimestamp)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.Error(ctx, "Failed to generate sample signature", err, map[string]interface{}{
			"username": req.Username,
		})
		return nil, fmt.Errorf("failed to generate sample signature: %w", err)
	}

	token, err := s.GenerateToken(ctx, &GenerateTokenRequest{UserID: req.Username})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	s.metrics.RecordLogin(ctx, true)
	s.logger.Info(ctx, "Login succeeded", map[string]interface{}{
		"username": req.Username,
	})

	return &LoginResponse{
		Sig:       sig,
		Token:     token.Token,
		ExpiresIn: token.ExpiresIn,
		TokenType: token.TokenType,
	}, nil
}

// GenerateToken JWTトークンを生成
func (s *AuthApplicationService) GenerateToken(ctx context.Context, req *GenerateTokenRequest) (*GenerateTokenResponse, error) {
	tracer := otel.Tracer("auth-service")
	ctx, span := tracer.Start(ctx, "AuthApplicationService.GenerateToken")
	defer span.End()

	span.SetAttributes(
		attribute.String("user_id", req.UserID),
	)

	// ユーザーIDのバリデーション
	if req.UserID == "" {
		err := ErrUserIDRequired
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.Error(ctx, "User ID is required", err, nil)
		return nil, err
	}

	// トークンの有効期限を計算
	now := s.now()
	expiresAt := now.Add(s.jwtConfig.Expiration)

	// JWTクレームを作成
	claims := jwt.MapClaims{
		"user_id": req.UserID,
		"iss":     s.jwtConfig.Issuer,
		"iat":     now.Unix(),
		"exp":     expiresAt.Unix(),
	}

	// JWTトークンを生成
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.jwtConfig.Secret))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.Error(ctx, "Failed to generate token", err, map[string]interface{}{
			"user_id": req.UserID,
		})
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info(ctx, "Token generated successfully", map[string]interface{}{
		"user_id":    req.UserID,
		"expires_at": expiresAt.Unix(),
	})

	return &GenerateTokenResponse{
		Token:     tokenString,
		ExpiresIn: int64(s.jwtConfig.Expiration.Seconds()),
		TokenType: "Bearer",
	}, nil
}

// credentialsMatch ユーザー名とパスワードを定数時間で比較する
func (s *AuthApplicationService) credentialsMatch(req *LoginRequest) bool {
	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.credentials.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.credentials.Password)) == 1
	return userOK && passOK && s.credentials.Username != ""
}
