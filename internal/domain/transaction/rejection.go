package transaction

import (
	"errors"
	"fmt"
	"time"
)

// RejectionKind 却下理由の分類
type RejectionKind string

const (
	RejectionKindStructural     RejectionKind = "structural"     // 項目の欠落・不正
	RejectionKindConsistency    RejectionKind = "consistency"    // 合計金額・署名の不一致
	RejectionKindFreshness      RejectionKind = "freshness"      // タイムスタンプの解析不可・期限切れ
	RejectionKindAuthentication RejectionKind = "authentication" // パートナー認証の失敗
)

// String 文字列表現を返す
func (k RejectionKind) String() string {
	return string(k)
}

// Rejection 検証で却下された理由
// Message はそのまま呼び出し元に返す文言
type Rejection struct {
	Kind    RejectionKind
	Code    string
	Message string
}

// Error errorインターフェースの実装
func (r *Rejection) Error() string {
	return r.Message
}

// Is 同じ却下コードであれば一致とみなす
func (r *Rejection) Is(target error) bool {
	t, ok := target.(*Rejection)
	if !ok {
		return false
	}
	return t.Code == r.Code
}

var (
	// ErrAccessDenied 未登録のパートナー
	ErrAccessDenied = &Rejection{Kind: RejectionKindAuthentication, Code: "access_denied", Message: "Access Denied!"}
	// ErrPartnerRefNoRequired パートナー参照番号の欠落
	ErrPartnerRefNoRequired = &Rejection{Kind: RejectionKindStructural, Code: "partner_ref_no_required", Message: "partnerrefno is required."}
	// ErrPartnerPasswordRequired パートナーパスワードの欠落
	ErrPartnerPasswordRequired = &Rejection{Kind: RejectionKindStructural, Code: "partner_password_required", Message: "partnerpassword is required."}
	// ErrInvalidTotalAmount 合計金額が0以下
	ErrInvalidTotalAmount = &Rejection{Kind: RejectionKindStructural, Code: "invalid_total_amount", Message: "Invalid Total Amount."}
	// ErrItemsRequired 明細の欠落
	ErrItemsRequired = &Rejection{Kind: RejectionKindStructural, Code: "items_required", Message: "Items are required."}
	// ErrItemNameRequired 明細名の欠落
	ErrItemNameRequired = &Rejection{Kind: RejectionKindStructural, Code: "item_name_required", Message: "Item name is required."}
	// ErrInvalidItemQty 数量が範囲外
	ErrInvalidItemQty = &Rejection{Kind: RejectionKindStructural, Code: "invalid_item_qty", Message: "Quantity must be > 1 and <= 5."}
	// ErrInvalidUnitPrice 単価が0以下
	ErrInvalidUnitPrice = &Rejection{Kind: RejectionKindStructural, Code: "invalid_unit_price", Message: "Unit price must be positive."}
	// ErrTotalAmountMismatch 明細合計と宣言された合計金額の不一致
	ErrTotalAmountMismatch = &Rejection{Kind: RejectionKindConsistency, Code: "total_amount_mismatch", Message: "Invalid Total Amount."}
	// ErrTimestampExpired タイムスタンプの解析不可または許容範囲外
	ErrTimestampExpired = &Rejection{Kind: RejectionKindFreshness, Code: "timestamp_expired", Message: "Time Expired."}
	// ErrSignatureMismatch 署名の不一致
	ErrSignatureMismatch = &Rejection{Kind: RejectionKindConsistency, Code: "signature_mismatch", Message: "Signature Mismatch."}
	// ErrInvalidInputParameters 署名生成の入力不正
	ErrInvalidInputParameters = &Rejection{Kind: RejectionKindStructural, Code: "invalid_input_parameters", Message: "Invalid input parameters."}
)

// NewTimestampExpired 現在のUTC時刻を含むタイムスタンプ期限切れの却下を作成
func NewTimestampExpired(now time.Time) *Rejection {
	return &Rejection{
		Kind:    ErrTimestampExpired.Kind,
		Code:    ErrTimestampExpired.Code,
		Message: fmt.Sprintf("Time Expired. Current UTC: %s", now.UTC().Format("2006-01-02T15:04:05Z")),
	}
}

// AsRejection errがRejectionであれば取り出す
func AsRejection(err error) (*Rejection, bool) {
	var rejection *Rejection
	if errors.As(err, &rejection) {
		return rejection, true
	}
	return nil, false
}
