// Package fingerprint derives the stable content identity of a document from
// its canonical text. The fingerprint is what gets anchored on the ledger and
// what a verifier recomputes from disclosed plaintext.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// Size is the digest length in bytes.
const Size = sha256.Size

// Fingerprint is the 0x-prefixed lowercase hex SHA-256 of the UTF-8 bytes of
// canonical text. Equal canonical text always yields an equal Fingerprint.
type Fingerprint string

// Hash computes the fingerprint of canonical text. Deterministic, no side
// effects.
func Hash(canonical string) Fingerprint {
	sum := sha256.Sum256([]byte(canonical))
	return Fingerprint("0x" + hex.EncodeToString(sum[:]))
}

// String returns the hex form stored in metadata and returned to callers.
func (f Fingerprint) String() string { return string(f) }

// Bytes32 returns the raw 32-byte digest, the form the ledger contract takes.
func (f Fingerprint) Bytes32() ([Size]byte, error) {
	var out [Size]byte
	s := strings.TrimPrefix(string(f), "0x")
	raw, err := hex.DecodeString(s)
	if err != nil {
		return out, fmt.Errorf("fingerprint is not hex: %w", err)
	}
	if len(raw) != Size {
		return out, fmt.Errorf("fingerprint is %d bytes, want %d", len(raw), Size)
	}
	copy(out[:], raw)
	return out, nil
}

// Parse validates an externally supplied fingerprint string.
func Parse(s string) (Fingerprint, error) {
	f := Fingerprint(strings.ToLower(strings.TrimSpace(s)))
	if _, err := f.Bytes32(); err != nil {
		return "", err
	}
	if !strings.HasPrefix(string(f), "0x") {
		f = "0x" + f
	}
	return f, nil
}
