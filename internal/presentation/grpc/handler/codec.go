package handler

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// CodecName JSONコーデックのコンテンツサブタイプ
// クライアントは grpc.CallContentSubtype(CodecName) を指定して呼び出す
const CodecName = "json"

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

// jsonCodec メッセージをJSONで送受信するコーデック
type jsonCodec struct{}

func (jsonCodec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return CodecName
}
