package handler

import (
	"transaction-api/internal/domain/transaction"
)

// ItemDetail 取引明細
type ItemDetail struct {
	PartnerItemRef string `json:"partneritemref"`
	Name           string `json:"name"`
	Qty            int64  `json:"qty"`
	UnitPrice      int64  `json:"unitprice"`
}

// SubmitTransactionRequest 取引送信リクエスト
type SubmitTransactionRequest struct {
	PartnerKey      string       `json:"partnerkey"`
	PartnerRefNo    string       `json:"partnerrefno"`
	PartnerPassword string       `json:"partnerpassword"`
	TotalAmount     int64        `json:"totalamount"`
	Items           []ItemDetail `json:"items"`
	Timestamp       string       `json:"timestamp"`
	Sig             string       `json:"sig"`
}

// SubmitTransactionResponse 取引送信レスポンス
type SubmitTransactionResponse struct {
	Result        int    `json:"Result"`
	ResultMessage string `json:"ResultMessage"`
	TotalAmount   int64  `json:"TotalAmount"`
	TotalDiscount int64  `json:"TotalDiscount"`
	FinalAmount   int64  `json:"FinalAmount"`
}

// LoginRequest ログインリクエスト
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse ログインレスポンス
type LoginResponse struct {
	Sig       string `json:"Sig"`
	Token     string `json:"Token"`
	ExpiresIn int64  `json:"ExpiresIn"`
	TokenType string `json:"TokenType"`
}

// TestSignatureRequest サンプル署名リクエスト（項目なし）
type TestSignatureRequest struct{}

// SignatureResponse 署名レスポンス
type SignatureResponse struct {
	Signature string `json:"Signature"`
}

// toDomain ドメインの取引リクエストに変換
func (r *SubmitTransactionRequest) toDomain() *transaction.TransactionRequest {
	items := make([]transaction.ItemDetail, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, transaction.ItemDetail{
			PartnerItemRef: item.PartnerItemRef,
			Name:           item.Name,
			Qty:            item.Qty,
			UnitPrice:      item.UnitPrice,
		})
	}

	return &transaction.TransactionRequest{
		PartnerKey:      r.PartnerKey,
		PartnerRefNo:    r.PartnerRefNo,
		PartnerPassword: r.PartnerPassword,
		TotalAmount:     r.TotalAmount,
		Items:           items,
		Timestamp:       r.Timestamp,
		Sig:             r.Sig,
	}
}
