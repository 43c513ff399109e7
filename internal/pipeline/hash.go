package pipeline

import (
	"crypto/sha256"
	"fmt"
)

// ContentHashHex computes SHA-256 of content and returns hex string.
// Reports hash the normalised extracted text, so the same document saved
// with different line endings or a BOM gets the same hash.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}
