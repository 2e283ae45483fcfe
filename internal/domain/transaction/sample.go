package transaction

// サンプル取引の固定値
const (
	SamplePartnerKey      = "FAKEGOOGLE"
	SamplePartnerRefNo    = "FG-00001"
	SampleTotalAmount     = 100000
	SampleTimestamp       = "2025-01-17T19:17:26.0000000Z"
	SampleLoginTimestamp  = "2025-01-18T18:22:20Z"
	SamplePartnerPassword = "RkFLRVBBU1NXT1JEMTIzNA=="
)

// SampleItems サンプル取引の明細（合計はSampleTotalAmountと一致する）
func SampleItems() []ItemDetail {
	return []ItemDetail{
		{PartnerItemRef: "i-00001", Name: "Pen", Qty: 4, UnitPrice: 20000},
		{PartnerItemRef: "i-00002", Name: "Ruler", Qty: 2, UnitPrice: 10000},
	}
}

// NewSampleRequest 署名確認用のサンプル取引を作成（署名は未設定）
func NewSampleRequest(timestamp string) *TransactionRequest {
	return &TransactionRequest{
		PartnerKey:      SamplePartnerKey,
		PartnerRefNo:    SamplePartnerRefNo,
		PartnerPassword: SamplePartnerPassword,
		TotalAmount:     SampleTotalAmount,
		Timestamp:       timestamp,
		Items:           SampleItems(),
	}
}
