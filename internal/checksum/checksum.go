// Package checksum computes and verifies integrity digests over serialized
// save documents. The digest detects accidental corruption and truncation;
// it carries no cryptographic strength and must not be used for security.
package checksum

import (
	"crypto/subtle"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Compute returns the hex-encoded 64-bit xxhash digest of payload.
// The digest is deterministic for byte-identical input across processes and
// platforms; callers are responsible for serializing their data canonically
// before hashing.
func Compute(payload []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(payload))
}

// Verify reports whether digest matches the computed digest of payload.
func Verify(payload []byte, digest string) bool {
	computed := Compute(payload)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) == 1
}
