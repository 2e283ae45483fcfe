package partner

import (
	"fmt"
	"sort"
)

// Directory パートナーIDと共有シークレットの対応表
// 構築後は読み取り専用のため、複数のリクエストから並行に参照できる
type Directory struct {
	secrets map[string]string
}

// NewDirectory 新しいDirectoryを作成
// 渡されたマップはコピーされるため、呼び出し側での変更は反映されない
func NewDirectory(secrets map[string]string) (*Directory, error) {
	if len(secrets) == 0 {
		return nil, fmt.Errorf("%w: at least one partner is required", ErrInvalidPartner)
	}

	copied := make(map[string]string, len(secrets))
	for id, secret := range secrets {
		if id == "" {
			return nil, fmt.Errorf("%w: partner id must not be empty", ErrInvalidPartner)
		}
		if secret == "" {
			return nil, fmt.Errorf("%w: secret for %s must not be empty", ErrInvalidPartner, id)
		}
		copied[id] = secret
	}

	return &Directory{secrets: copied}, nil
}

// Lookup パートナーIDから共有シークレットを取得（大文字小文字を区別する）
func (d *Directory) Lookup(partnerID string) (string, error) {
	secret, ok := d.secrets[partnerID]
	if !ok {
		return "", ErrPartnerNotFound
	}
	return secret, nil
}

// Contains パートナーIDが登録済みかどうかを返す
func (d *Directory) Contains(partnerID string) bool {
	_, ok := d.secrets[partnerID]
	return ok
}

// IDs 登録済みパートナーIDをソートして返す
func (d *Directory) IDs() []string {
	ids := make([]string, 0, len(d.secrets))
	for id := range d.secrets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len 登録済みパートナー数を返す
func (d *Directory) Len() int {
	return len(d.secrets)
}
