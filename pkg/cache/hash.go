package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// hashKey builds a namespaced cache key from a stage prefix and the inputs
// that define the entry's identity. Parts are serialized to JSON before
// hashing so option structs key reliably.
func hashKey(prefix string, parts ...any) string {
	raw, _ := json.Marshal(parts)
	sum := sha256.Sum256(raw)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(sum[:]))
}

// Hash returns the hex-encoded SHA-256 of data. Chart and layout documents
// are hashed this way to derive the pipeline's cache identities.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
