package handler

// LoginRequest ログインリクエスト
// @Description ログインリクエスト
type LoginRequest struct {
	Username string `json:"username" example:"test"`
	Password string `json:"password" example:"password"`
}

// LoginResponse ログインレスポンス
// @Description ログインレスポンス
type LoginResponse struct {
	Sig       string `json:"Sig" example:"20250118162534FAKEGOOGLEFG-00001100000XPkb2QNXpw6r556tIc3+oRwZFQ3J9eOgLBKkbLbYVxg="`
	Token     string `json:"Token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.eyJ1c2VyX2lkIjoidGVzdCJ9.signature"`
	ExpiresIn int64  `json:"ExpiresIn" example:"86400"`
	TokenType string `json:"TokenType" example:"Bearer"`
}

// ErrorResponse エラーレスポンス
// @Description エラーレスポンス
type ErrorResponse struct {
	Error   string `json:"error" example:"unauthorized"`
	Message string `json:"message" example:"Invalid username or password."`
}
