package transaction

// Result 処理結果コード
type Result int

const (
	ResultRejected Result = 0 // 却下
	ResultAccepted Result = 1 // 受理
)

// TransactionResponse 取引の処理結果
type TransactionResponse struct {
	Result        Result
	ResultMessage string // 受理時は空
	TotalAmount   int64
	TotalDiscount int64
	FinalAmount   int64
}

// NewAcceptedResponse 受理レスポンスを作成
func NewAcceptedResponse(totalAmount, totalDiscount int64) *TransactionResponse {
	return &TransactionResponse{
		Result:        ResultAccepted,
		TotalAmount:   totalAmount,
		TotalDiscount: totalDiscount,
		FinalAmount:   totalAmount - totalDiscount,
	}
}

// NewRejectedResponse 却下レスポンスを作成
func NewRejectedResponse(message string) *TransactionResponse {
	return &TransactionResponse{
		Result:        ResultRejected,
		ResultMessage: message,
	}
}

// IsAccepted 受理されたかどうかを返す
func (r *TransactionResponse) IsAccepted() bool {
	return r.Result == ResultAccepted
}
