package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"transaction-api/internal/domain/transaction"
)

// TransactionService 取引受付アプリケーションサービス
type TransactionService interface {
	SubmitTransaction(ctx context.Context, req *transaction.TransactionRequest) (*transaction.TransactionResponse, error)
	GenerateSignature(ctx context.Context, req *transaction.TransactionRequest) (string, error)
	SampleSignature(ctx context.Context, timestamp string) (string, error)
}

// TransactionHandler 取引関連ハンドラー
type TransactionHandler struct {
	transactionService TransactionService
}

// NewTransactionHandler 新しいTransactionHandlerを作成
func NewTransactionHandler(transactionService TransactionService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// Welcome ウェルカムメッセージ
// @Summary ウェルカムメッセージ
// @Tags transaction
// @Produce json
// @Success 200 {object} WelcomeResponse
// @Router /api/transaction [get]
func (h *TransactionHandler) Welcome(c echo.Context) error {
	return c.JSON(http.StatusOK, WelcomeResponse{
		Message: "Welcome to the Transaction API!",
	})
}

// SubmitTransaction 取引受付ハンドラー
// @Summary 取引を受け付ける
// @Description 署名と内容を検証し、割引を適用した金額を返します
// @Tags transaction
// @Accept json
// @Produce json
// @Param request body SubmitTransactionRequest true "取引受付リクエスト"
// @Success 200 {object} TransactionResponse "受理"
// @Failure 400 {object} TransactionResponse "却下"
// @Failure 500 {object} ErrorResponse "内部エラー"
// @Router /api/transaction/submittrxmessage [post]
func (h *TransactionHandler) SubmitTransaction(c echo.Context) error {
	var reqBody SubmitTransactionRequest
	if err := c.Bind(&reqBody); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	resp, err := h.transactionService.SubmitTransaction(c.Request().Context(), reqBody.toDomain())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newTransactionResponse(resp))
}

// TestSignature サンプル取引の署名を返す
// @Summary サンプル署名を取得
// @Description 固定のサンプル取引（FAKEGOOGLE / FG-00001 / 100000）の署名を返します
// @Tags transaction
// @Produce json
// @Success 200 {object} SignatureResponse
// @Failure 500 {object} ErrorResponse "内部エラー"
// @Router /api/transaction/test-signature [get]
func (h *TransactionHandler) TestSignature(c echo.Context) error {
	sig, err := h.transactionService.SampleSignature(c.Request().Context(), transaction.SampleTimestamp)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, SignatureResponse{Signature: sig})
}

// GenerateSignature 署名生成ハンドラー
// @Summary 取引リクエストの署名を生成
// @Description 入力を簡易検証し、取引リクエストの署名を生成します
// @Tags transaction
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body SubmitTransactionRequest true "署名対象の取引"
// @Success 200 {object} SignatureResponse
// @Failure 400 {object} TransactionResponse "入力不正"
// @Failure 401 {object} ErrorResponse "認証エラー"
// @Router /api/transaction/generate-signature [post]
func (h *TransactionHandler) GenerateSignature(c echo.Context) error {
	var reqBody SubmitTransactionRequest
	if err := c.Bind(&reqBody); err != nil {
		return transaction.ErrInvalidInputParameters
	}

	sig, err := h.transactionService.GenerateSignature(c.Request().Context(), reqBody.toDomain())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, SignatureResponse{Signature: sig})
}
