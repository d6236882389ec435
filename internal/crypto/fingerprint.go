package crypto

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint returns a short hex fingerprint of a secret such as a session token.
//
// It hashes with SHA-256 and truncates to 10 bytes (20 hex chars).
func Fingerprint(secret []byte) string {
	sum := sha256.Sum256(secret)
	return hex.EncodeToString(sum[:10])
}
