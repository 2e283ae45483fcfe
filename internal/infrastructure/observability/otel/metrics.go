package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics メトリクス定義
type Metrics struct {
	// 取引受付数（result: accepted / rejected）
	SubmissionCount metric.Int64Counter

	// 拒否理由ごとの件数
	RejectionCount metric.Int64Counter

	// 受理された取引の割引額の分布
	DiscountAmount metric.Int64Histogram

	// 署名生成数
	SignatureCount metric.Int64Counter

	// ログイン試行数
	LoginCount metric.Int64Counter

	// リクエスト数
	RequestCount metric.Int64Counter

	// レスポンス時間
	ResponseTime metric.Float64Histogram

	// エラー数
	ErrorCount metric.Int64Counter
}

// NewMetrics 新しいMetricsを作成
func NewMetrics(meterName string) (*Metrics, error) {
	return newMetrics(otel.Meter(meterName))
}

func newMetrics(meter metric.Meter) (*Metrics, error) {
	submissionCount, err := meter.Int64Counter(
		"transaction_submissions_total",
		metric.WithDescription("Total number of submitted transactions"),
	)
	if err != nil {
		return nil, err
	}

	rejectionCount, err := meter.Int64Counter(
		"transaction_rejections_total",
		metric.WithDescription("Total number of rejected transactions by reason"),
	)
	if err != nil {
		return nil, err
	}

	discountAmount, err := meter.Int64Histogram(
		"transaction_discount_amount",
		metric.WithDescription("Discount granted to accepted transactions"),
		metric.WithUnit("{cent}"),
	)
	if err != nil {
		return nil, err
	}

	signatureCount, err := meter.Int64Counter(
		"signatures_generated_total",
		metric.WithDescription("Total number of generated signatures"),
	)
	if err != nil {
		return nil, err
	}

	loginCount, err := meter.Int64Counter(
		"login_attempts_total",
		metric.WithDescription("Total number of login attempts"),
	)
	if err != nil {
		return nil, err
	}

	requestCount, err := meter.Int64Counter(
		"requests_total",
		metric.WithDescription("Total number of requests"),
	)
	if err != nil {
		return nil, err
	}

	responseTime, err := meter.Float64Histogram(
		"response_time_seconds",
		metric.WithDescription("Response time in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	errorCount, err := meter.Int64Counter(
		"errors_total",
		metric.WithDescription("Total number of errors"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		SubmissionCount: submissionCount,
		RejectionCount:  rejectionCount,
		DiscountAmount:  discountAmount,
		SignatureCount:  signatureCount,
		LoginCount:      loginCount,
		RequestCount:    requestCount,
		ResponseTime:    responseTime,
		ErrorCount:      errorCount,
	}, nil
}

// RecordSubmission 取引の受付結果を記録
func (m *Metrics) RecordSubmission(ctx context.Context, partnerKey string, accepted bool) {
	result := "rejected"
	if accepted {
		result = "accepted"
	}
	m.SubmissionCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("partner_key", partnerKey),
			attribute.String("result", result),
		),
	)
}

// RecordRejection 拒否理由を記録
func (m *Metrics) RecordRejection(ctx context.Context, code, kind string) {
	m.RejectionCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("code", code),
			attribute.String("kind", kind),
		),
	)
}

// RecordDiscount 割引額を記録
func (m *Metrics) RecordDiscount(ctx context.Context, partnerKey string, discount int64) {
	m.DiscountAmount.Record(ctx, discount,
		metric.WithAttributes(
			attribute.String("partner_key", partnerKey),
		),
	)
}

// RecordSignature 署名生成を記録
func (m *Metrics) RecordSignature(ctx context.Context, source string) {
	m.SignatureCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("source", source),
		),
	)
}

// RecordLogin ログイン試行を記録
func (m *Metrics) RecordLogin(ctx context.Context, success bool) {
	m.LoginCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.Bool("success", success),
		),
	)
}

// RecordRequest リクエストを記録
func (m *Metrics) RecordRequest(ctx context.Context, method, path string) {
	m.RequestCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("method", method),
			attribute.String("path", path),
		),
	)
}

// RecordResponseTime レスポンス時間を記録
func (m *Metrics) RecordResponseTime(ctx context.Context, method, path string, duration float64) {
	m.ResponseTime.Record(ctx, duration,
		metric.WithAttributes(
			attribute.String("method", method),
			attribute.String("path", path),
		),
	)
}

// RecordError エラーを記録
func (m *Metrics) RecordError(ctx context.Context, errorType string) {
	m.ErrorCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("error_type", errorType),
		),
	)
}
