// Package idhash derives deterministic identifiers for journal
// records imported without one.
package idhash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// TradeID computes a deterministic trade ID using SHA256.
// Formula: SHA256(symbolKey|direction|entryMillis)
// Returns a hex-encoded hash (64 characters). The same imported row
// always maps to the same ID, so re-imports stay idempotent.
func TradeID(symbolKey, direction string, entryMillis int64) string {
	data := fmt.Sprintf("%s|%s|%d", symbolKey, direction, entryMillis)
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
