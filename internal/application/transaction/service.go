package transaction

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"transaction-api/internal/domain/discount"
	"transaction-api/internal/domain/transaction"
	otelinfra "transaction-api/internal/infrastructure/observability/otel"
)

// Validator 取引リクエストの検証
type Validator interface {
	Validate(req *transaction.TransactionRequest) error
	CheckSignable(req *transaction.TransactionRequest) error
}

// RequestSigner 取引リクエストの署名生成
type RequestSigner interface {
	SignRequest(req *transaction.TransactionRequest) (string, error)
}

// TransactionApplicationService 取引受付アプリケーションサービス
type TransactionApplicationService struct {
	validator Validator
	signer    RequestSigner
	logger    *otelinfra.Logger
	metrics   *otelinfra.Metrics
	tracer    trace.Tracer
}

// NewTransactionApplicationService 新しいTransactionApplicationServiceを作成
func NewTransactionApplicationService(
	validator Validator,
	signer RequestSigner,
	logger *otelinfra.Logger,
	metrics *otelinfra.Metrics,
) *TransactionApplicationService {
	return &TransactionApplicationService{
		validator: validator,
		signer:    signer,
		logger:    logger,
		metrics:   metrics,
		tracer:    otel.Tracer("transaction-service"),
	}
}

// SubmitTransaction 取引を検証し、割引を計算した結果を返す
// 検証で拒否された場合は *transaction.Rejection を返す
func (s *TransactionApplicationService) SubmitTransaction(ctx context.Context, req *transaction.TransactionRequest) (*transaction.TransactionResponse, error) {
	ctx, span := s.tracer.Start(ctx, "TransactionApplicationService.SubmitTransaction")
	defer span.End()

	if req == nil {
		span.SetStatus(otelcodes.Error, transaction.ErrAccessDenied.Message)
		s.logger.Warn(ctx, "Transaction rejected", map[string]interface{}{
			"code":   transaction.ErrAccessDenied.Code,
			"reason": "request is empty",
		})
		s.metrics.RecordRejection(ctx, transaction.ErrAccessDenied.Code, transaction.ErrAccessDenied.Kind.String())
		return nil, transaction.ErrAccessDenied
	}

	span.SetAttributes(
		attribute.String("partner_key", req.PartnerKey),
		attribute.String("partner_ref_no", req.PartnerRefNo),
		attribute.Int64("total_amount", req.TotalAmount),
		attribute.Int("item_count", len(req.Items)),
	)

	s.logger.Info(ctx, "Transaction received", req.Redacted())

	if err := s.validator.Validate(req); err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())

		rejection, ok := transaction.AsRejection(err)
		if !ok {
			s.logger.Error(ctx, "Failed to validate transaction", err, map[string]interface{}{
				"partner_key":    req.PartnerKey,
				"partner_ref_no": req.PartnerRefNo,
			})
			s.metrics.RecordError(ctx, "validation_internal")
			return nil, fmt.Errorf("failed to validate transaction: %w", err)
		}

		s.logger.Warn(ctx, "Transaction rejected", map[string]interface{}{
			"partner_key":    req.PartnerKey,
			"partner_ref_no": req.PartnerRefNo,
			"code":           rejection.Code,
			"kind":           rejection.Kind.String(),
			"reason":         rejection.Message,
		})
		s.metrics.RecordSubmission(ctx, req.PartnerKey, false)
		s.metrics.RecordRejection(ctx, rejection.Code, rejection.Kind.String())
		s.logRequestResponse(ctx, req, transaction.NewRejectedResponse(rejection.Message))
		return nil, rejection
	}

	breakdown := discount.Explain(req.TotalAmount)
	resp := transaction.NewAcceptedResponse(req.TotalAmount, breakdown.Discount)

	span.SetAttributes(
		attribute.String("discount_rate", breakdown.Rate().String()),
		attribute.Bool("discount_capped", breakdown.Capped),
		attribute.Int64("total_discount", resp.TotalDiscount),
		attribute.Int64("final_amount", resp.FinalAmount),
	)

	s.metrics.RecordSubmission(ctx, req.PartnerKey, true)
	s.metrics.RecordDiscount(ctx, req.PartnerKey, resp.TotalDiscount)
	s.logRequestResponse(ctx, req, resp)

	return resp, nil
}

// GenerateSignature 入力を簡易検証したうえで取引リクエストの署名を生成する
func (s *TransactionApplicationService) GenerateSignature(ctx context.Context, req *transaction.TransactionRequest) (string, error) {
	ctx, span := s.tracer.Start(ctx, "TransactionApplicationService.GenerateSignature")
	defer span.End()

	if req == nil {
		span.SetStatus(otelcodes.Error, transaction.ErrInvalidInputParameters.Message)
		s.logger.Warn(ctx, "Invalid signature input", map[string]interface{}{
			"reason": "request is empty",
		})
		return "", transaction.ErrInvalidInputParameters
	}

	span.SetAttributes(
		attribute.String("partner_key", req.PartnerKey),
		attribute.String("partner_ref_no", req.PartnerRefNo),
	)

	if err := s.validator.CheckSignable(req); err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		s.logger.Warn(ctx, "Invalid signature input", map[string]interface{}{
			"partner_key":    req.PartnerKey,
			"partner_ref_no": req.PartnerRefNo,
		})
		return "", err
	}

	return s.sign(ctx, span, req, "generate")
}

// SampleSignature 固定のサンプル取引に対する署名を生成する
func (s *TransactionApplicationService) SampleSignature(ctx context.Context, timestamp string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "TransactionApplicationService.SampleSignature")
	defer span.End()

	return s.sign(ctx, span, transaction.NewSampleRequest(timestamp), "sample")
}

func (s *TransactionApplicationService) sign(ctx context.Context, span trace.Span, req *transaction.TransactionRequest, source string) (string, error) {
	sig, err := s.signer.SignRequest(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		s.logger.Error(ctx, "Failed to generate signature", err, map[string]interface{}{
			"partner_key": req.PartnerKey,
			"source":      source,
		})
		s.metrics.RecordError(ctx, "signature_generation")
		return "", fmt.Errorf("failed to generate signature: %w", err)
	}

	s.metrics.RecordSignature(ctx, source)
	s.logger.Info(ctx, "Signature generated", map[string]interface{}{
		"partner_key":    req.PartnerKey,
		"partner_ref_no": req.PartnerRefNo,
		"source":         source,
	})
	return sig, nil
}

func (s *TransactionApplicationService) logRequestResponse(ctx context.Context, req *transaction.TransactionRequest, resp *transaction.TransactionResponse) {
	s.logger.Info(ctx, "Transaction processed", map[string]interface{}{
		"request": req.Redacted(),
		"response": map[string]interface{}{
			"result":         int(resp.Result),
			"result_message": resp.ResultMessage,
			"total_amount":   resp.TotalAmount,
			"total_discount": resp.TotalDiscount,
			"final_amount":   resp.FinalAmount,
		},
	})
}
