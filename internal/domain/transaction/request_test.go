package transaction

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionRequest_CalculatedTotal(t *testing.T) {
	tests := []struct {
		name   string
		items  []ItemDetail
		want   int64
		wantOK bool
	}{
		{
			name:   "正常系: サンプル明細",
			items:  SampleItems(),
			want:   100000,
			wantOK: true,
		},
		{
			name:   "正常系: 明細なし",
			items:  nil,
			want:   0,
			wantOK: true,
		},
		{
			name: "異常系: 小計がオーバーフロー",
			items: []ItemDetail{
				{Name: "Huge", Qty: 5, UnitPrice: math.MaxInt64 / 2},
			},
			wantOK: false,
		},
		{
			name: "異常系: 合計がオーバーフロー",
			items: []ItemDetail{
				{Name: "A", Qty: 2, UnitPrice: math.MaxInt64 / 4},
				{Name: "B", Qty: 2, UnitPrice: math.MaxInt64 / 4},
				{Name: "C", Qty: 2, UnitPrice: math.MaxInt64 / 4},
			},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &TransactionRequest{Items: tt.items}
			got, ok := req.CalculatedTotal()
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestTransactionRequest_Redacted(t *testing.T) {
	req := NewSampleRequest(SampleTimestamp)
	req.Sig = "signature"

	got := req.Redacted()

	assert.Equal(t, "***", got["partner_password"])
	assert.Equal(t, "***", got["sig"])
	assert.Equal(t, SamplePartnerKey, got["partner_key"])
	assert.Equal(t, int64(SampleTotalAmount), got["total_amount"])
	items, ok := got["items"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, items, 2)
	assert.Equal(t, "Pen", items[0]["name"])

	// 未設定の秘匿項目は空のまま
	req.Sig = ""
	assert.Equal(t, "", req.Redacted()["sig"])
}

func TestNewAcceptedResponse(t *testing.T) {
	resp := NewAcceptedResponse(100000, 10000)

	assert.True(t, resp.IsAccepted())
	assert.Equal(t, int64(100000), resp.TotalAmount)
	assert.Equal(t, int64(10000), resp.TotalDiscount)
	assert.Equal(t, int64(90000), resp.FinalAmount)
	assert.Empty(t, resp.ResultMessage)
}

func TestNewRejectedResponse(t *testing.T) {
	resp := NewRejectedResponse("Signature Mismatch.")

	assert.False(t, resp.IsAccepted())
	assert.Equal(t, ResultRejected, resp.Result)
	assert.Equal(t, "Signature Mismatch.", resp.ResultMessage)
	assert.Zero(t, resp.FinalAmount)
}
