package partner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDirectory(t *testing.T) {
	tests := []struct {
		name    string
		secrets map[string]string
		wantErr bool
	}{
		{
			name: "正常系: パートナーを登録",
			secrets: map[string]string{
				"FAKEGOOGLE": "FAKEPASSWORD1234",
				"FAKEPEOPLE": "FAKEPASSWORD4578",
			},
			wantErr: false,
		},
		{
			name:    "異常系: 空の対応表",
			secrets: map[string]string{},
			wantErr: true,
		},
		{
			name:    "異常系: 空のパートナーID",
			secrets: map[string]string{"": "secret"},
			wantErr: true,
		},
		{
			name:    "異常系: 空のシークレット",
			secrets: map[string]string{"FAKEGOOGLE": ""},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, err := NewDirectory(tt.secrets)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPartner)
				assert.Nil(t, dir)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.secrets), dir.Len())
		})
	}
}

func TestDirectory_Lookup(t *testing.T) {
	dir, err := NewDirectory(map[string]string{
		"FAKEGOOGLE": "FAKEPASSWORD1234",
		"FAKEPEOPLE": "FAKEPASSWORD4578",
	})
	require.NoError(t, err)

	tests := []struct {
		name      string
		partnerID string
		want      string
		wantErr   error
	}{
		{
			name:      "正常系: 登録済みパートナー",
			partnerID: "FAKEGOOGLE",
			want:      "FAKEPASSWORD1234",
		},
		{
			name:      "異常系: 未登録パートナー",
			partnerID: "UNKNOWN",
			wantErr:   ErrPartnerNotFound,
		},
		{
			name:      "異常系: 大文字小文字が異なる",
			partnerID: "fakegoogle",
			wantErr:   ErrPartnerNotFound,
		},
		{
			name:      "異常系: 空のID",
			partnerID: "",
			wantErr:   ErrPartnerNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dir.Lookup(tt.partnerID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, dir.Contains(tt.partnerID))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, dir.Contains(tt.partnerID))
		})
	}
}

func TestDirectory_IsolatedFromInput(t *testing.T) {
	secrets := map[string]string{"FAKEGOOGLE": "FAKEPASSWORD1234"}
	dir, err := NewDirectory(secrets)
	require.NoError(t, err)

	secrets["FAKEGOOGLE"] = "changed"
	secrets["INTRUDER"] = "secret"

	got, err := dir.Lookup("FAKEGOOGLE")
	require.NoError(t, err)
	assert.Equal(t, "FAKEPASSWORD1234", got)
	assert.Equal(t, []string{"FAKEGOOGLE"}, dir.IDs())
}
