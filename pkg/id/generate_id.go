package id

import (
	"crypto/rand"
	"encoding/hex"
)

// NewID32 returns a public identifier of exactly 32 lowercase hex
// characters (no separators/prefixes). Applications and settings rows
// carry one of these alongside their numeric PK so external callers never
// see auto-increment values.
func NewID32() string {
	var buf [16]byte
	_, _ = rand.Read(buf[:])
	return hex.EncodeToString(buf[:])
}
