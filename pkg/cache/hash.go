package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Key derives a cache key from a prefix and its parts.
// The parts are hashed so arbitrary notation text yields a fixed-size,
// filesystem-safe key. Format: prefix:hex(sha256(parts joined by NUL)).
func Key(prefix string, parts ...string) string {
	h := sha256.Sum256([]byte(strings.Join(parts, "\x00")))
	return prefix + ":" + hex.EncodeToString(h[:])
}

// Hash computes the SHA-256 hash of data as a 64-character hex string.
func Hash(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}
