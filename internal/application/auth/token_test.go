package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
		wantOK bool
	}{
		{name: "正常系: Bearer形式", header: "Bearer abc.def.ghi", want: "abc.def.ghi", wantOK: true},
		{name: "異常系: 空", header: "", wantOK: false},
		{name: "異常系: スキーム違い", header: "Basic abc", wantOK: false},
		{name: "異常系: トークンなし", header: "Bearer ", wantOK: false},
		{name: "異常系: 余分な要素", header: "Bearer a b", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractBearerToken(tt.header)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseToken(t *testing.T) {
	cfg := testJWTConfig()
	now := time.Now()
	valid := jwt.MapClaims{
		"user_id": "test",
		"iss":     cfg.Issuer,
		"iat":     now.Unix(),
		"exp":     now.Add(time.Hour).Unix(),
	}

	tests := []struct {
		name    string
		token   string
		want    string
		wantErr error
	}{
		{
			name:  "正常系: 有効なトークン",
			token: signToken(t, jwt.SigningMethodHS256, []byte(cfg.Secret), valid),
			want:  "test",
		},
		{
			name:    "異常系: 署名鍵が異なる",
			token:   signToken(t, jwt.SigningMethodHS256, []byte("other-secret"), valid),
			wantErr: ErrInvalidToken,
		},
		{
			name: "異常系: 期限切れ",
			token: signToken(t, jwt.SigningMethodHS256, []byte(cfg.Secret), jwt.MapClaims{
				"user_id": "test",
				"iss":     cfg.Issuer,
				"exp":     now.Add(-time.Hour).Unix(),
			}),
			wantErr: ErrInvalidToken,
		},
		{
			name: "異常系: 発行者が異なる",
			token: signToken(t, jwt.SigningMethodHS256, []byte(cfg.Secret), jwt.MapClaims{
				"user_id": "test",
				"iss":     "someone-else",
				"exp":     now.Add(time.Hour).Unix(),
			}),
			wantErr: ErrInvalidToken,
		},
		{
			name: "異常系: user_idなし",
			token: signToken(t, jwt.SigningMethodHS256, []byte(cfg.Secret), jwt.MapClaims{
				"iss": cfg.Issuer,
				"exp": now.Add(time.Hour).Unix(),
			}),
			wantErr: ErrMissingUserID,
		},
		{
			name:    "異常系: 署名なしトークン",
			token:   signToken(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, valid),
			wantErr: ErrInvalidToken,
		},
		{
			name:    "異常系: 不正な文字列",
			token:   "not-a-token",
			wantErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseToken(cfg, tt.token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
