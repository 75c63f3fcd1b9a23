package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashURL returns the hex-encoded SHA-256 digest of a URL. Used as the
// deduplication key for long URLs.
func HashURL(url string) string {
	sum := sha256.Sum256([]byte(url))
	return hex.EncodeToString(sum[:])
}
