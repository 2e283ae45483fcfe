package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	authapp "transaction-api/internal/application/auth"
)

// AuthService 認証アプリケーションサービス
type AuthService interface {
	Login(ctx context.Context, req *authapp.LoginRequest) (*authapp.LoginResponse, error)
}

// AuthHandler 認証関連ハンドラー
type AuthHandler struct {
	authService AuthService
}

// NewAuthHandler 新しいAuthHandlerを作成
func NewAuthHandler(authService AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login ログインハンドラー
// @Summary デモ用ログイン
// @Description 認証情報を確認し、サンプル署名とJWT認証トークンを返します
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "ログインリクエスト"
// @Success 200 {object} LoginResponse "ログイン成功"
// @Failure 400 {object} ErrorResponse "不正なリクエスト"
// @Failure 401 {object} ErrorResponse "認証エラー"
// @Router /api/transaction/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var reqBody LoginRequest
	if err := c.Bind(&reqBody); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	resp, err := h.authService.Login(c.Request().Context(), &authapp.LoginRequest{
		Username: reqBody.Username,
		Password: reqBody.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, LoginResponse{
		Sig:       resp.Sig,
		Token:     resp.Token,
		ExpiresIn: resp.ExpiresIn,
		TokenType: resp.TokenType,
	})
}
