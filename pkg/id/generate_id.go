package id

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"
)

// NewID32 returns exactly 32 hex characters (no separators/prefixes).
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// NewOrderNumber returns "ORD-YYYYMMDD-XXXXXX" where the suffix is 6 random
// uppercase hex characters. Collisions are possible; callers retry against
// the unique index.
func NewOrderNumber(now time.Time) string {
	b := make([]byte, 3)
	_, _ = rand.Read(b)
	return "ORD-" + now.UTC().Format("20060102") + "-" + strings.ToUpper(hex.EncodeToString(b))
}
