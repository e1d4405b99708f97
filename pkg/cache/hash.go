package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// hashKey builds a cache key of the form "prefix:<digest>", where the digest
// is the SHA-256 of the JSON encoding of parts. Keyer implementations use it
// to fold render options into a fixed-length key suffix.
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return prefix + ":" + Hash(data)
}

// Hash returns the hex-encoded SHA-256 digest of data, 64 characters.
// The file backend uses it to map arbitrary keys to safe filenames.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
