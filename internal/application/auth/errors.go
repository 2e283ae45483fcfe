package auth

import "errors"

var (
	// ErrInvalidCredentials ユーザー名またはパスワードが一致しない
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserIDRequired トークン発行対象のユーザーIDが空
	ErrUserIDRequired = errors.New("user_id is required")
	// ErrInvalidToken トークンの署名・有効期限・クレームが不正
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrMissingUserID トークンにuser_idクレームがない
	ErrMissingUserID = errors.New("missing user_id in token")
)
