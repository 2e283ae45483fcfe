package handler

import (
	"context"
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	authapp "transaction-api/internal/application/auth"
	"transaction-api/internal/domain/transaction"
)

// ErrorDomain ErrorInfoに設定するエラードメイン
const ErrorDomain = "transaction-api"

// internalErrorMessage 内部エラー時にクライアントへ返す文言
const internalErrorMessage = "Internal server error."

// TransactionService 取引受付アプリケーションサービス
type TransactionService interface {
	SubmitTransaction(ctx context.Context, req *transaction.TransactionRequest) (*transaction.TransactionResponse, error)
	GenerateSignature(ctx context.Context, req *transaction.TransactionRequest) (string, error)
	SampleSignature(ctx context.Context, timestamp string) (string, error)
}

// AuthService 認証アプリケーションサービス
type AuthService interface {
	Login(ctx context.Context, req *authapp.LoginRequest) (*authapp.LoginResponse, error)
}

// TransactionHandler gRPC取引サービスハンドラー
type TransactionHandler struct {
	transactionService TransactionService
	authService        AuthService
}

// NewTransactionHandler 新しいTransactionHandlerを作成
func NewTransactionHandler(transactionService TransactionService, authService AuthService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		authService:        authService,
	}
}

// SubmitTransaction 取引受付
func (h *TransactionHandler) SubmitTransaction(ctx context.Context, req *SubmitTransactionRequest) (*SubmitTransactionResponse, error) {
	resp, err := h.transactionService.SubmitTransaction(ctx, req.toDomain())
	if err != nil {
		return nil, handleError(err)
	}

	return &SubmitTransactionResponse{
		Result:        int(resp.Result),
		ResultMessage: resp.ResultMessage,
		TotalAmount:   resp.TotalAmount,
		TotalDiscount: resp.TotalDiscount,
		FinalAmount:   resp.FinalAmount,
	}, nil
}

// Login デモ用ログイン
func (h *TransactionHandler) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	if req == nil {
		req = &LoginRequest{}
	}

	resp, err := h.authService.Login(ctx, &authapp.LoginRequest{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return nil, handleError(err)
	}

	return &LoginResponse{
		Sig:       resp.Sig,
		Token:     resp.Token,
		ExpiresIn: resp.ExpiresIn,
		TokenType: resp.TokenType,
	}, nil
}

// GenerateSignature 署名生成
func (h *TransactionHandler) GenerateSignature(ctx context.Context, req *SubmitTransactionRequest) (*SignatureResponse, error) {
	sig, err := h.transactionService.GenerateSignature(ctx, req.toDomain())
	if err != nil {
		return nil, handleError(err)
	}
	return &SignatureResponse{Signature: sig}, nil
}

// TestSignature サンプル取引の署名
func (h *TransactionHandler) TestSignature(ctx context.Context, _ *TestSignatureRequest) (*SignatureResponse, error) {
	sig, err := h.transactionService.SampleSignature(ctx, transaction.SampleTimestamp)
	if err != nil {
		return nil, handleError(err)
	}
	return &SignatureResponse{Signature: sig}, nil
}

// handleError エラーをgRPCステータスに変換
func handleError(err error) error {
	if rejection, ok := transaction.AsRejection(err); ok {
		st := status.New(codes.InvalidArgument, rejection.Message)
		detailed, detailErr := st.WithDetails(&errdetails.ErrorInfo{
			Reason: rejection.Code,
			Domain: ErrorDomain,
			Metadata: map[string]string{
				"kind": rejection.Kind.String(),
			},
		})
		if detailErr != nil {
			return st.Err()
		}
		return detailed.Err()
	}

	if errors.Is(err, authapp.ErrInvalidCredentials) {
		return status.Error(codes.Unauthenticated, "Invalid username or password.")
	}

	if errors.Is(err, authapp.ErrInvalidToken) || errors.Is(err, authapp.ErrMissingUserID) {
		return status.Error(codes.Unauthenticated, err.Error())
	}

	return status.Error(codes.Internal, internalErrorMessage)
}
