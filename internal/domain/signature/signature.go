package signature

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"strconv"
)

// CanonicalTimestampLayout 署名に用いるタイムスタンプ形式（yyyyMMddHHmmss）
const CanonicalTimestampLayout = "20060102150405"

// Sign 署名トークンを生成する
// トークンは タイムスタンプ・パートナーID・参照番号・合計金額・SHA-256ハッシュのBase64 を区切りなしで連結したもの
// ハッシュ対象はタイムスタンプ・パートナーID・参照番号・合計金額・共有シークレットの連結
func Sign(canonicalTimestamp, partnerID, partnerRefNo string, totalAmount int64, secret string) string {
	prefix := canonicalTimestamp + partnerID + partnerRefNo + strconv.FormatInt(totalAmount, 10)

	hash := sha256.Sum256([]byte(prefix + secret))

	return prefix + base64.StdEncoding.EncodeToString(hash[:])
}

// Verify 署名トークンを再計算して比較する
func Verify(token, canonicalTimestamp, partnerID, partnerRefNo string, totalAmount int64, secret string) bool {
	expected := Sign(canonicalTimestamp, partnerID, partnerRefNo, totalAmount, secret)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(token)) == 1
}
