package transaction

import "math"

const (
	// MinItemQty 数量の下限（この値自体は含まない）
	MinItemQty = 1
	// MaxItemQty 数量の上限（この値を含む）
	MaxItemQty = 5
)

// ItemDetail 取引明細の1行
type ItemDetail struct {
	PartnerItemRef string
	Name           string
	Qty            int64
	UnitPrice      int64 // 最小通貨単位
}

// Subtotal 明細の小計を返す（オーバーフロー時はfalse）
func (i ItemDetail) Subtotal() (int64, bool) {
	if i.Qty == 0 || i.UnitPrice == 0 {
		return 0, true
	}
	product := i.Qty * i.UnitPrice
	if product/i.Qty != i.UnitPrice {
		return 0, false
	}
	return product, true
}

// TransactionRequest パートナーから受け付けた署名付き取引リクエスト
type TransactionRequest struct {
	PartnerKey      string
	PartnerRefNo    string
	PartnerPassword string // 存在確認にのみ使用する。署名の検証にはサーバー側のシークレットを使う
	TotalAmount     int64  // 最小通貨単位
	Timestamp       string
	Sig             string
	Items           []ItemDetail
}

// CalculatedTotal 明細から合計金額を算出する（オーバーフロー時はfalse）
func (r *TransactionRequest) CalculatedTotal() (int64, bool) {
	var total int64
	for _, item := range r.Items {
		subtotal, ok := item.Subtotal()
		if !ok {
			return 0, false
		}
		if subtotal > 0 && total > math.MaxInt64-subtotal {
			return 0, false
		}
		if subtotal < 0 && total < math.MinInt64-subtotal {
			return 0, false
		}
		total += subtotal
	}
	return total, true
}

// Redacted ログ出力用に秘匿項目を伏せたコピーを返す
func (r *TransactionRequest) Redacted() map[string]any {
	items := make([]map[string]any, len(r.Items))
	for i, item := range r.Items {
		items[i] = map[string]any{
			"partner_item_ref": item.PartnerItemRef,
			"name":             item.Name,
			"qty":              item.Qty,
			"unit_price":       item.UnitPrice,
		}
	}
	return map[string]any{
		"partner_key":      r.PartnerKey,
		"partner_ref_no":   r.PartnerRefNo,
		"partner_password": mask(r.PartnerPassword),
		"total_amount":     r.TotalAmount,
		"timestamp":        r.Timestamp,
		"sig":              mask(r.Sig),
		"items":            items,
	}
}

func mask(s string) string {
	if s == "" {
		return ""
	}
	return "***"
}
