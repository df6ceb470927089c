package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// keyVersion is bumped whenever the cached payload layout changes.
const keyVersion = "v1"

// Hash computes the SHA-256 of data as a 64-character hex string.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// KeyOpts are the translation settings that change the output bytes.
type KeyOpts struct {
	Allocator string `json:"allocator"`
	InfToken  string `json:"inf_token"`
	Strict    bool   `json:"strict"`
}

// Key builds the cache key for an input with content hash inputHash.
// The input file name is not part of the key; identical files share an
// entry.
func Key(inputHash string, opts KeyOpts) string {
	data, _ := json.Marshal(struct {
		Input string  `json:"input"`
		Opts  KeyOpts `json:"opts"`
	}{inputHash, opts})
	return fmt.Sprintf("sgmwcs:%s:%s", keyVersion, Hash(data))
}
