package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	authapp "transaction-api/internal/application/auth"
	"transaction-api/internal/domain/transaction"
	otelinfra "transaction-api/internal/infrastructure/observability/otel"
)

func runErrorHandler(t *testing.T, handlerErr error) *httptest.ResponseRecorder {
	t.Helper()
	tracer := noop.NewTracerProvider().Tracer("test")
	logger := otelinfra.NewLogger(tracer)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/transaction/submittrxmessage", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	middleware := ErrorHandlerMiddleware(logger)
	handler := middleware(func(c echo.Context) error {
		if handlerErr == nil {
			return c.String(http.StatusOK, "ok")
		}
		return handlerErr
	})

	require.NoError(t, handler(c))
	return rec
}

func TestErrorHandlerMiddleware_NoError(t *testing.T) {
	rec := runErrorHandler(t, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestErrorHandlerMiddleware_Rejection(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{
			name:    "異常系: パートナー不明",
			err:     transaction.ErrAccessDenied,
			message: "Access Denied!",
		},
		{
			name:    "異常系: 署名不一致",
			err:     transaction.ErrSignatureMismatch,
			message: "Signature Mismatch.",
		},
		{
			name:    "異常系: 数量不正",
			err:     transaction.ErrInvalidItemQty,
			message: "Quantity must be > 1 and <= 5.",
		},
		{
			name:    "異常系: 入力パラメータ不正",
			err:     transaction.ErrInvalidInputParameters,
			message: "Invalid input parameters.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := runErrorHandler(t, tt.err)

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, float64(0), body["Result"])
			assert.Equal(t, tt.message, body["ResultMessage"])
			assert.Equal(t, float64(0), body["TotalAmount"])
			assert.Equal(t, float64(0), body["TotalDiscount"])
			assert.Equal(t, float64(0), body["FinalAmount"])
		})
	}
}

func TestErrorHandlerMiddleware_WrappedRejection(t *testing.T) {
	rec := runErrorHandler(t, errors.Join(errors.New("context"), transaction.ErrTimestampExpired))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Time Expired.")
}

func TestErrorHandlerMiddleware_InvalidCredentials(t *testing.T) {
	rec := runErrorHandler(t, authapp.ErrInvalidCredentials)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "unauthorized", body.Error)
}

func TestErrorHandlerMiddleware_HTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "文字列メッセージ",
			err:        echo.NewHTTPError(http.StatusBadRequest, "invalid request body"),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "invalid request body",
		},
		{
			name:       "メッセージなし",
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantMsg:    "Not Found",
		},
		{
			name:       "非文字列メッセージ",
			err:        echo.NewHTTPError(http.StatusUnprocessableEntity, map[string]string{"k": "v"}),
			wantStatus: http.StatusUnprocessableEntity,
			wantMsg:    http.StatusText(http.StatusUnprocessableEntity),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := runErrorHandler(t, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMsg, body.Message)
		})
	}
}

func TestErrorHandlerMiddleware_InternalError(t *testing.T) {
	rec := runErrorHandler(t, errors.New("secret table lookup failed"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, InternalErrorMessage, body.Message)
	assert.NotContains(t, rec.Body.String(), "secret table")
}
