package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"transaction-api/internal/infrastructure/config"
	otelinfra "transaction-api/internal/infrastructure/observability/otel"
	"transaction-api/internal/presentation/rest/handler"
	restmiddleware "transaction-api/internal/presentation/rest/middleware"
)

// maxBodySize リクエストボディの上限
const maxBodySize = "1M"

// Router REST APIルーター
type Router struct {
	echo               *echo.Echo
	transactionHandler *handler.TransactionHandler
	authHandler        *handler.AuthHandler
}

// NewRouter 新しいRouterを作成
func NewRouter(
	cfg *config.Config,
	logger *otelinfra.Logger,
	metrics *otelinfra.Metrics,
	transactionService handler.TransactionService,
	authService handler.AuthService,
) (*Router, error) {
	if transactionService == nil || authService == nil {
		return nil, errors.New("transaction and auth services are required")
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Server.IdleTimeout = cfg.Server.IdleTimeout

	// エラーはErrorHandlerMiddlewareで処理する。ここには応答前に漏れたものだけが届く
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		logger.Error(c.Request().Context(), "Unhandled error", err, map[string]interface{}{
			"path": c.Request().URL.Path,
		})
		_ = c.JSON(http.StatusInternalServerError, restmiddleware.ErrorResponse{
			Error:   "internal_server_error",
			Message: restmiddleware.InternalErrorMessage,
		})
	}

	setupMiddleware(e, logger, metrics)

	transactionHandler := handler.NewTransactionHandler(transactionService)
	authHandler := handler.NewAuthHandler(authService)

	setupRoutes(e, cfg, logger, transactionHandler, authHandler)

	// Swagger UI / ReDoc統合
	SetupSwagger(e)

	return &Router{
		echo:               e,
		transactionHandler: transactionHandler,
		authHandler:        authHandler,
	}, nil
}

// setupMiddleware ミドルウェアを設定
// 登録順に外側から実行される
func setupMiddleware(e *echo.Echo, logger *otelinfra.Logger, metrics *otelinfra.Metrics) {
	// リクエストIDの設定
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	// CORS設定
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.Use(restmiddleware.SecurityHeadersMiddleware())
	e.Use(restmiddleware.TracingMiddleware())
	e.Use(restmiddleware.MetricsMiddleware(metrics))
	e.Use(restmiddleware.LoggingMiddleware(logger))

	// エラーハンドリングミドルウェア
	e.Use(restmiddleware.ErrorHandlerMiddleware(logger))

	// パニックは500応答に変換する
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(maxBodySize))
}

// setupRoutes ルーティングを設定
func setupRoutes(
	e *echo.Echo,
	cfg *config.Config,
	logger *otelinfra.Logger,
	transactionHandler *handler.TransactionHandler,
	authHandler *handler.AuthHandler,
) {
	api := e.Group("/api/transaction")

	api.GET("", transactionHandler.Welcome)
	api.POST("/submittrxmessage", transactionHandler.SubmitTransaction)
	api.GET("/test-signature", transactionHandler.TestSignature)
	api.POST("/login", authHandler.Login)

	// 認証が必要なエンドポイント
	api.POST("/generate-signature", transactionHandler.GenerateSignature,
		restmiddleware.AuthMiddleware(&cfg.JWT, logger))

	// ヘルスチェックエンドポイント（認証不要）
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
}

// ServeHTTP http.Handlerとしてリクエストを処理する
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.echo.ServeHTTP(w, req)
}

// Start サーバーを起動
// Shutdownによる停止はエラーとして扱わない
func (r *Router) Start(address string) error {
	if err := r.echo.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown 処理中のリクエストを待ってサーバーを停止
func (r *Router) Shutdown(ctx context.Context) error {
	return r.echo.Shutdown(ctx)
}
