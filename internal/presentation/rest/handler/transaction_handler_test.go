package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"transaction-api/internal/domain/transaction"
	otelinfra "transaction-api/internal/infrastructure/observability/otel"
	restmiddleware "transaction-api/internal/presentation/rest/middleware"
)

const submitBody = `{
	"partnerkey": "FAKEGOOGLE",
	"partnerrefno": "FG-00001",
	"partnerpassword": "RkFLRVBBU1NXT1JEMTIzNA==",
	"totalamount": 100000,
	"items": [
		{"partneritemref": "i-00001", "name": "Pen", "qty": 4, "unitprice": 20000},
		{"partneritemref": "i-00002", "name": "Ruler", "qty": 2, "unitprice": 10000}
	],
	"timestamp": "2025-01-18T18:00:00Z",
	"sig": "20250118162534FAKEGOOGLEFG-00001100000XPkb2QNXpw6r556tIc3+oRwZFQ3J9eOgLBKkbLbYVxg="
}`

// serve ErrorHandlerMiddlewareを通してハンドラーを実行する
func serve(t *testing.T, h echo.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	logger := otelinfra.NewLogger(noop.NewTracerProvider().Tracer("test"))

	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, restmiddleware.ErrorHandlerMiddleware(logger)(h)(c))
	return rec
}

func decodeTransactionResponse(t *testing.T, rec *httptest.ResponseRecorder) TransactionResponse {
	t.Helper()
	var resp TransactionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestTransactionHandler_Welcome(t *testing.T) {
	h := NewTransactionHandler(new(MockTransactionService))

	rec := serve(t, h.Welcome, http.MethodGet, "/api/transaction", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"Message":"Welcome to the Transaction API!"}`, rec.Body.String())
}

func TestTransactionHandler_SubmitTransaction(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMocks func(*MockTransactionService)
		wantStatus int
		checkFunc  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "正常系: 受理",
			body: submitBody,
			setupMocks: func(ms *MockTransactionService) {
				ms.On("SubmitTransaction", mock.Anything, mock.MatchedBy(func(req *transaction.TransactionRequest) bool {
					return req.PartnerKey == "FAKEGOOGLE" &&
						req.PartnerRefNo == "FG-00001" &&
						req.PartnerPassword == "RkFLRVBBU1NXT1JEMTIzNA==" &&
						req.TotalAmount == 100000 &&
						len(req.Items) == 2 &&
						req.Items[0].Name == "Pen" && req.Items[0].Qty == 4 && req.Items[0].UnitPrice == 20000 &&
						req.Items[1].PartnerItemRef == "i-00002" &&
						req.Timestamp == "2025-01-18T18:00:00Z" &&
						strings.HasPrefix(req.Sig, "20250118162534FAKEGOOGLE")
				})).Return(transaction.NewAcceptedResponse(100000, 10000), nil)
			},
			wantStatus: http.StatusOK,
			checkFunc: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.JSONEq(t, `{"Result":1,"ResultMessage":"","TotalAmount":100000,"TotalDiscount":10000,"FinalAmount":90000}`, rec.Body.String())
			},
		},
		{
			name: "正常系: キーの大文字小文字を区別しない",
			body: `{"PartnerKey":"FAKEPEOPLE","PartnerRefNo":"FP-00001","TotalAmount":50000}`,
			setupMocks: func(ms *MockTransactionService) {
				ms.On("SubmitTransaction", mock.Anything, mock.MatchedBy(func(req *transaction.TransactionRequest) bool {
					return req.PartnerKey == "FAKEPEOPLE" && req.PartnerRefNo == "FP-00001" && req.TotalAmount == 50000
				})).Return(transaction.NewAcceptedResponse(50000, 2500), nil)
			},
			wantStatus: http.StatusOK,
			checkFunc: func(t *testing.T, rec *httptest.ResponseRecorder) {
				resp := decodeTransactionResponse(t, rec)
				assert.Equal(t, int64(47500), resp.FinalAmount)
			},
		},
		{
			name: "異常系: 検証で却下",
			body: submitBody,
			setupMocks: func(ms *MockTransactionService) {
				ms.On("SubmitTransaction", mock.Anything, mock.Anything).Return(nil, transaction.ErrSignatureMismatch)
			},
			wantStatus: http.StatusBadRequest,
			checkFunc: func(t *testing.T, rec *httptest.ResponseRecorder) {
				resp := decodeTransactionResponse(t, rec)
				assert.Equal(t, 0, resp.Result)
				assert.Equal(t, "Signature Mismatch.", resp.ResultMessage)
				assert.Zero(t, resp.TotalAmount)
			},
		},
		{
			name: "異常系: 合計不一致で却下",
			body: submitBody,
			setupMocks: func(ms *MockTransactionService) {
				ms.On("SubmitTransaction", mock.Anything, mock.Anything).Return(nil, transaction.ErrTotalAmountMismatch)
			},
			wantStatus: http.StatusBadRequest,
			checkFunc: func(t *testing.T, rec *httptest.ResponseRecorder) {
				resp := decodeTransactionResponse(t, rec)
				assert.Equal(t, "Invalid Total Amount.", resp.ResultMessage)
			},
		},
		{
			name:       "異常系: 不正なJSON",
			body:       `{"partnerkey":`,
			setupMocks: func(ms *MockTransactionService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "異常系: 金額が数値でない",
			body:       `{"partnerkey":"FAKEGOOGLE","totalamount":"abc"}`,
			setupMocks: func(ms *MockTransactionService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "異常系: 内部エラー",
			body: submitBody,
			setupMocks: func(ms *MockTransactionService) {
				ms.On("SubmitTransaction", mock.Anything, mock.Anything).Return(nil, errors.New("failed to validate transaction: bad secret"))
			},
			wantStatus: http.StatusInternalServerError,
			checkFunc: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Contains(t, rec.Body.String(), "Internal server error.")
				assert.NotContains(t, rec.Body.String(), "bad secret")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms := new(MockTransactionService)
			tt.setupMocks(ms)
			h := NewTransactionHandler(ms)

			rec := serve(t, h.SubmitTransaction, http.MethodPost, "/api/transaction/submittrxmessage", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.checkFunc != nil {
				tt.checkFunc(t, rec)
			}
			ms.AssertExpectations(t)
		})
	}
}

func TestTransactionHandler_TestSignature(t *testing.T) {
	tests := []struct {
		name       string
		sig        string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "正常系: サンプル署名",
			sig:        "20250118162534FAKEGOOGLEFG-00001100000XPkb2QNXpw6r556tIc3+oRwZFQ3J9eOgLBKkbLbYVxg=",
			wantStatus: http.StatusOK,
			wantBody:   `{"Signature":"20250118162534FAKEGOOGLEFG-00001100000XPkb2QNXpw6r556tIc3+oRwZFQ3J9eOgLBKkbLbYVxg="}`,
		},
		{
			name:       "異常系: 署名生成失敗",
			err:        errors.New("partner not found"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms := new(MockTransactionService)
			ms.On("SampleSignature", mock.Anything, transaction.SampleTimestamp).Return(tt.sig, tt.err)
			h := NewTransactionHandler(ms)

			rec := serve(t, h.TestSignature, http.MethodGet, "/api/transaction/test-signature", "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
			ms.AssertExpectations(t)
		})
	}
}

func TestTransactionHandler_GenerateSignature(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMocks func(*MockTransactionService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "正常系: 署名を生成",
			body: submitBody,
			setupMocks: func(ms *MockTransactionService) {
				ms.On("GenerateSignature", mock.Anything, mock.Anything).Return("sig-value", nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"Signature":"sig-value"}`,
		},
		{
			name: "異常系: 入力不正",
			body: `{"partnerkey":"UNKNOWN"}`,
			setupMocks: func(ms *MockTransactionService) {
				ms.On("GenerateSignature", mock.Anything, mock.Anything).Return("", transaction.ErrInvalidInputParameters)
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"Result":0,"ResultMessage":"Invalid input parameters.","TotalAmount":0,"TotalDiscount":0,"FinalAmount":0}`,
		},
		{
			name:       "異常系: 不正なJSON",
			body:       `not-json`,
			setupMocks: func(ms *MockTransactionService) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"Result":0,"ResultMessage":"Invalid input parameters.","TotalAmount":0,"TotalDiscount":0,"FinalAmount":0}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms := new(MockTransactionService)
			tt.setupMocks(ms)
			h := NewTransactionHandler(ms)

			rec := serve(t, h.GenerateSignature, http.MethodPost, "/api/transaction/generate-signature", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			ms.AssertExpectations(t)
		})
	}
}
