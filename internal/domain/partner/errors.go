package partner

import "errors"

var (
	// ErrPartnerNotFound パートナーが登録されていないエラー
	ErrPartnerNotFound = errors.New("partner not found")
	// ErrInvalidPartner 無効なパートナー定義エラー
	ErrInvalidPartner = errors.New("invalid partner definition")
)
