package signature

import (
	"crypto/subtle"
	"fmt"
	"time"

	"transaction-api/internal/domain/transaction"
)

// DefaultFixedTimestamp 既存パートナーとの互換用に署名へ埋め込む固定タイムスタンプ
const DefaultFixedTimestamp = "20250118162534"

// TimestampMode 署名タイムスタンプの決め方
type TimestampMode string

const (
	// TimestampModeFixed 常に固定値を使う（既存の送信形式と互換）
	TimestampModeFixed TimestampMode = "fixed"
	// TimestampModeRequest リクエスト自身のタイムスタンプから導出する
	TimestampModeRequest TimestampMode = "request"
)

// NewTimestampMode 新しいTimestampModeを作成
func NewTimestampMode(s string) (TimestampMode, error) {
	switch TimestampMode(s) {
	case TimestampModeFixed, TimestampModeRequest:
		return TimestampMode(s), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidTimestampMode, s)
	}
}

// String 文字列表現を返す
func (m TimestampMode) String() string {
	return string(m)
}

// SecretSource パートナーの共有シークレットを引く
type SecretSource interface {
	Lookup(partnerID string) (string, error)
}

// Signer パートナーディレクトリのシークレットで取引リクエストを署名・検証する
type Signer struct {
	secrets        SecretSource
	mode           TimestampMode
	fixedTimestamp string
}

// NewSigner 新しいSignerを作成
func NewSigner(secrets SecretSource, mode TimestampMode, fixedTimestamp string) (*Signer, error) {
	if _, err := NewTimestampMode(string(mode)); err != nil {
		return nil, err
	}
	if mode == TimestampModeFixed {
		if _, err := time.Parse(CanonicalTimestampLayout, fixedTimestamp); err != nil || len(fixedTimestamp) != 14 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidFixedTimestamp, fixedTimestamp)
		}
	}

	return &Signer{
		secrets:        secrets,
		mode:           mode,
		fixedTimestamp: fixedTimestamp,
	}, nil
}

// Mode タイムスタンプモードを返す
func (s *Signer) Mode() TimestampMode {
	return s.mode
}

// CanonicalTimestamp 署名に用いる14桁のタイムスタンプを返す
func (s *Signer) CanonicalTimestamp(timestamp string) (string, error) {
	if s.mode == TimestampModeFixed {
		return s.fixedTimestamp, nil
	}

	t, err := transaction.ParseTimestamp(timestamp)
	if err != nil {
		return "", fmt.Errorf("failed to derive signature timestamp: %w", err)
	}
	return t.Format(CanonicalTimestampLayout), nil
}

// SignRequest リクエストの署名トークンを生成する
// リクエスト内のパスワードは使わず、ディレクトリのシークレットで計算する
func (s *Signer) SignRequest(req *transaction.TransactionRequest) (string, error) {
	secret, err := s.secrets.Lookup(req.PartnerKey)
	if err != nil {
		return "", fmt.Errorf("failed to look up partner secret: %w", err)
	}

	ts, err := s.CanonicalTimestamp(req.Timestamp)
	if err != nil {
		return "", err
	}

	return Sign(ts, req.PartnerKey, req.PartnerRefNo, req.TotalAmount, secret), nil
}

// VerifyRequest リクエストの署名が再計算結果と一致するかを返す
func (s *Signer) VerifyRequest(req *transaction.TransactionRequest) (bool, error) {
	expected, err := s.SignRequest(req)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(req.Sig)) == 1, nil
}
