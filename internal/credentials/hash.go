package credentials

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword returns the lowercase hex SHA-256 digest of the UTF-8 password.
// The scheme is unsalted and deterministic so digests stay comparable with
// rows written by earlier versions of the dashboard.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
