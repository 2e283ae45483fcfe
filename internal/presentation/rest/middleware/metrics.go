package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	otelinfra "transaction-api/internal/infrastructure/observability/otel"
)

// MetricsMiddleware メトリクス記録ミドルウェア
func MetricsMiddleware(metrics *otelinfra.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			ctx := c.Request().Context()

			// ルート未登録の場合はパスの爆発を避けるため生のURLは使わない
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}

			metrics.RecordRequest(ctx, c.Request().Method, route)

			err := next(c)

			// レスポンス時間を記録（秒単位）
			duration := time.Since(start).Seconds()
			metrics.RecordResponseTime(ctx, c.Request().Method, route, duration)

			if errorType := classifyStatus(responseStatus(c, err)); errorType != "" {
				metrics.RecordError(ctx, errorType)
			}

			return err
		}
	}
}

// responseStatus 応答済みのステータス、未応答ならエラーから推定したステータスを返す
// 未応答でエラーもなければ200として扱う
func responseStatus(c echo.Context, err error) int {
	if c.Response().Committed {
		return c.Response().Status
	}
	if err == nil {
		if status := c.Response().Status; status != 0 {
			return status
		}
		return http.StatusOK
	}
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}
	return http.StatusInternalServerError
}

// classifyStatus 4xx/5xxをエラー種別に分類する
func classifyStatus(status int) string {
	switch {
	case status >= http.StatusInternalServerError:
		return "server_error"
	case status >= http.StatusBadRequest:
		return "client_error"
	default:
		return ""
	}
}
