package id

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"time"
)

// NewID32 returns exactly 32 hex characters (no separators/prefixes).
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// NewLoanNumber returns a human-readable loan number like LN-202608-104233:
// the origination year-month plus a random 6-digit suffix.
func NewLoanNumber(at time.Time) string {
	var b [4]byte
	_, _ = rand.Read(b[:])
	n := binary.BigEndian.Uint32(b[:]) % 1_000_000
	return fmt.Sprintf("LN-%s-%06d", at.UTC().Format("200601"), n)
}
