package service

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"time"

	"transaction-api/internal/domain/transaction"
)

const (
	// DefaultTimestampOffset 現在時刻に加算するパートナー側の時差
	DefaultTimestampOffset = 8 * time.Hour
	// DefaultTimestampWindow タイムスタンプの許容幅（前後）
	DefaultTimestampWindow = 60 * time.Minute
)

// PartnerDirectory パートナーの共有シークレットを引く
type PartnerDirectory interface {
	Lookup(partnerID string) (string, error)
}

// RequestSigner 取引リクエストの署名を検証する
type RequestSigner interface {
	VerifyRequest(req *transaction.TransactionRequest) (bool, error)
}

// ValidationPolicy 検証の設定値
type ValidationPolicy struct {
	TimestampOffset time.Duration
	TimestampWindow time.Duration
	// VerifyPartnerPassword trueの場合、partnerpasswordがシークレットのBase64表現と一致することを要求する
	VerifyPartnerPassword bool
}

// DefaultValidationPolicy 既存の挙動と互換の設定を返す
func DefaultValidationPolicy() ValidationPolicy {
	return ValidationPolicy{
		TimestampOffset: DefaultTimestampOffset,
		TimestampWindow: DefaultTimestampWindow,
	}
}

// TransactionValidator 取引リクエストの検証を行うドメインサービス
// 検証は定められた順に行い、最初に失敗した項目で打ち切る
type TransactionValidator struct {
	directory PartnerDirectory
	signer    RequestSigner
	policy    ValidationPolicy
	now       func() time.Time
}

// ValidatorOption TransactionValidatorのオプション
type ValidatorOption func(*TransactionValidator)

// WithClock 現在時刻の取得方法を差し替える
func WithClock(now func() time.Time) ValidatorOption {
	return func(v *TransactionValidator) {
		v.now = now
	}
}

// NewTransactionValidator 新しいTransactionValidatorを作成
func NewTransactionValidator(
	directory PartnerDirectory,
	signer RequestSigner,
	policy ValidationPolicy,
	opts ...ValidatorOption,
) *TransactionValidator {
	v := &TransactionValidator{
		directory: directory,
		signer:    signer,
		policy:    policy,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate 取引リクエストを検証する
// 却下の場合は *transaction.Rejection を、想定外の失敗の場合はそれ以外のエラーを返す
func (v *TransactionValidator) Validate(req *transaction.TransactionRequest) error {
	if req == nil {
		return transaction.ErrAccessDenied
	}

	secret, err := v.checkPartner(req)
	if err != nil {
		return err
	}

	if req.PartnerRefNo == "" {
		return transaction.ErrPartnerRefNoRequired
	}

	if req.PartnerPassword == "" {
		return transaction.ErrPartnerPasswordRequired
	}
	if v.policy.VerifyPartnerPassword && !passwordMatches(req.PartnerPassword, secret) {
		return transaction.ErrAccessDenied
	}

	if req.TotalAmount <= 0 {
		return transaction.ErrInvalidTotalAmount
	}

	if err := checkItems(req.Items); err != nil {
		return err
	}

	if total, ok := req.CalculatedTotal(); !ok || total != req.TotalAmount {
		return transaction.ErrTotalAmountMismatch
	}

	if err := v.checkTimestamp(req.Timestamp); err != nil {
		return err
	}

	ok, err := v.signer.VerifyRequest(req)
	if err != nil {
		return fmt.Errorf("failed to verify signature: %w", err)
	}
	if !ok {
		return transaction.ErrSignatureMismatch
	}

	return nil
}

// CheckSignable 署名生成に必要な最低限の項目を確認する
func (v *TransactionValidator) CheckSignable(req *transaction.TransactionRequest) error {
	if req == nil ||
		req.PartnerKey == "" ||
		req.PartnerRefNo == "" ||
		req.TotalAmount <= 0 ||
		req.PartnerPassword == "" ||
		len(req.Items) == 0 {
		return transaction.ErrInvalidInputParameters
	}
	if _, err := v.directory.Lookup(req.PartnerKey); err != nil {
		return transaction.ErrInvalidInputParameters
	}
	return nil
}

// checkPartner パートナーIDの存在を確認し、共有シークレットを返す
func (v *TransactionValidator) checkPartner(req *transaction.TransactionRequest) (string, error) {
	if req.PartnerKey == "" {
		return "", transaction.ErrAccessDenied
	}
	secret, err := v.directory.Lookup(req.PartnerKey)
	if err != nil {
		return "", transaction.ErrAccessDenied
	}
	return secret, nil
}

// checkItems 明細を先頭から順に確認する
func checkItems(items []transaction.ItemDetail) error {
	if len(items) == 0 {
		return transaction.ErrItemsRequired
	}
	for _, item := range items {
		if item.Name == "" {
			return transaction.ErrItemNameRequired
		}
		if item.Qty <= transaction.MinItemQty || item.Qty > transaction.MaxItemQty {
			return transaction.ErrInvalidItemQty
		}
		if item.UnitPrice <= 0 {
			return transaction.ErrInvalidUnitPrice
		}
	}
	return nil
}

// checkTimestamp タイムスタンプが「現在時刻+時差」から許容幅以内かを確認する
func (v *TransactionValidator) checkTimestamp(value string) error {
	now := v.now()

	ts, err := transaction.ParseTimestamp(value)
	if err != nil {
		return transaction.NewTimestampExpired(now)
	}

	expected := now.UTC().Add(v.policy.TimestampOffset)
	diff := expected.Sub(ts)
	if diff < 0 {
		diff = -diff
	}
	if diff > v.policy.TimestampWindow {
		return transaction.NewTimestampExpired(now)
	}
	return nil
}

// passwordMatches 提示されたパスワードがシークレットのBase64表現と一致するかを返す
func passwordMatches(presented, secret string) bool {
	decoded, err := base64.StdEncoding.DecodeString(presented)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(decoded, []byte(secret)) == 1
}
