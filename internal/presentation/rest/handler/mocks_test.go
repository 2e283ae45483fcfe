package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	authapp "transaction-api/internal/application/auth"
	"transaction-api/internal/domain/transaction"
)

// MockTransactionService モック取引サービス
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) SubmitTransaction(ctx context.Context, req *transaction.TransactionRequest) (*transaction.TransactionResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transaction.TransactionResponse), args.Error(1)
}

func (m *MockTransactionService) GenerateSignature(ctx context.Context, req *transaction.TransactionRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockTransactionService) SampleSignature(ctx context.Context, timestamp string) (string, error) {
	args := m.Called(ctx, timestamp)
	return args.String(0), args.Error(1)
}

// MockAuthService モック認証サービス
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, req *authapp.LoginRequest) (*authapp.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authapp.LoginResponse), args.Error(1)
}
