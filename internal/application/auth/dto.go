package auth

// LoginRequest ログインリクエスト
type LoginRequest struct {
	Username string
	Password string
}

// LoginResponse ログインレスポンス
type LoginResponse struct {
	Sig       string // サンプル取引の署名
	Token     string
	ExpiresIn int64  // 秒単位
	TokenType string // "Bearer"
}

// GenerateTokenRequest トークン生成リクエスト
type GenerateTokenRequest struct {
	UserID string
}

// GenerateTokenResponse トークン生成レスポンス
type GenerateTokenResponse struct {
	Token     string
	ExpiresIn int64  // 秒単位
	TokenType string // "Bearer"
}
