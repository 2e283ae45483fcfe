package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	authapp "transaction-api/internal/application/auth"
	"transaction-api/internal/domain/transaction"
	otelinfra "transaction-api/internal/infrastructure/observability/otel"
)

// InternalErrorMessage 予期しないエラー時にクライアントへ返す固定メッセージ
const InternalErrorMessage = "Internal server error."

// ErrorResponse エラーレスポンス
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// ErrorHandlerMiddleware エラーハンドリングミドルウェア
func ErrorHandlerMiddleware(logger *otelinfra.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err == nil {
				return nil
			}

			// エラーハンドリング
			return handleError(c, err, logger)
		}
	}
}

// handleError エラーを処理して適切なHTTPレスポンスを返す
func handleError(c echo.Context, err error, logger *otelinfra.Logger) error {
	ctx := c.Request().Context()

	// 検証による拒否は取引レスポンスの形で400を返す
	if rejection, ok := transaction.AsRejection(err); ok {
		logger.Warn(ctx, "Transaction rejected", map[string]interface{}{
			"code":   rejection.Code,
			"kind":   rejection.Kind.String(),
			"reason": rejection.Message,
			"path":   c.Request().URL.Path,
		})
		return c.JSON(http.StatusBadRequest, transaction.NewRejectedResponse(rejection.Message))
	}

	if errors.Is(err, authapp.ErrInvalidCredentials) {
		logger.Warn(ctx, "Invalid credentials", map[string]interface{}{
			"path": c.Request().URL.Path,
		})
		return c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "unauthorized",
			Message: "Invalid username or password.",
		})
	}

	// EchoのHTTPエラー
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		logger.Warn(ctx, "HTTP error", map[string]interface{}{
			"status_code": httpErr.Code,
			"message":     httpErr.Message,
		})
		message := ""
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		} else {
			message = http.StatusText(httpErr.Code)
		}
		return c.JSON(httpErr.Code, ErrorResponse{
			Error:   http.StatusText(httpErr.Code),
			Message: message,
		})
	}

	// 予期しないエラー（内部情報はクライアントに返さない）
	logger.Error(ctx, "Internal server error", err, map[string]interface{}{
		"path": c.Request().URL.Path,
	})
	return c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_server_error",
		Message: InternalErrorMessage,
	})
}
