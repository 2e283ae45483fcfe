package signature

import "errors"

var (
	// ErrInvalidTimestampMode 未対応のタイムスタンプモード
	ErrInvalidTimestampMode = errors.New("invalid signature timestamp mode")
	// ErrInvalidFixedTimestamp 固定タイムスタンプの形式不正
	ErrInvalidFixedTimestamp = errors.New("fixed signature timestamp must be 14 digits (yyyyMMddHHmmss)")
)
