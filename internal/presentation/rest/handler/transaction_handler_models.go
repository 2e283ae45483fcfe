package handler

import (
	"transaction-api/internal/domain/transaction"
)

// WelcomeResponse ウェルカムメッセージ
// @Description ウェルカムメッセージ
type WelcomeResponse struct {
	Message string `json:"Message" example:"Welcome to the Transaction API!"`
}

// ItemDetailRequest 取引明細
// @Description 取引明細
type ItemDetailRequest struct {
	PartnerItemRef string `json:"partneritemref" example:"i-00001"`
	Name           string `json:"name" example:"Pen"`
	Qty            int64  `json:"qty" example:"4"`
	UnitPrice      int64  `json:"unitprice" example:"20000"`
}

// SubmitTransactionRequest 取引受付リクエスト
// @Description 取引受付リクエスト（金額はセント単位）
type SubmitTransactionRequest struct {
	PartnerKey      string              `json:"partnerkey" example:"FAKEGOOGLE"`
	PartnerRefNo    string              `json:"partnerrefno" example:"FG-00001"`
	PartnerPassword string              `json:"partnerpassword" example:"RkFLRVBBU1NXT1JEMTIzNA=="`
	TotalAmount     int64               `json:"totalamount" example:"100000"`
	Items           []ItemDetailRequest `json:"items"`
	Timestamp       string              `json:"timestamp" example:"2025-01-18T18:00:00Z"`
	Sig             string              `json:"sig" example:"20250118162534FAKEGOOGLEFG-00001100000XPkb2QNXpw6r556tIc3+oRwZFQ3J9eOgLBKkbLbYVxg="`
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

// TransactionResponse 取引処理結果
// @Description 取引処理結果（Result: 1=受理, 0=却下）
type TransactionResponse struct {
	Result        int    `json:"Result" example:"1" enums:"0,1"`
	ResultMessage string `json:"ResultMessage" example:""`
	TotalAmount   int64  `json:"TotalAmount" example:"100000"`
	TotalDiscount int64  `json:"TotalDiscount" example:"10000"`
	FinalAmount   int64  `json:"FinalAmount" example:"90000"`
}

func newTransactionResponse(resp *transaction.TransactionResponse) TransactionResponse {
	return TransactionResponse{
		Result:        int(resp.Result),
		ResultMessage: resp.ResultMessage,
		TotalAmount:   resp.TotalAmount,
		TotalDiscount: resp.TotalDiscount,
		FinalAmount:   resp.FinalAmount,
	}
}

// SignatureResponse 署名レスポンス
// @Description 署名レスポンス
type SignatureResponse struct {
	Signature string `json:"Signature" example:"20250118162534FAKEGOOGLEFG-00001100000XPkb2QNXpw6r556tIc3+oRwZFQ3J9eOgLBKkbLbYVxg="`
}
