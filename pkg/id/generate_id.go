package id

import (
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// Prefixes tag each record type so an id alone tells which table it lives in.
const (
	PrefixApplication            = "yap"
	PrefixYouth                  = "yth"
	PrefixGuardian               = "gdn"
	PrefixVolunteer              = "vol"
	PrefixUser                   = "usr"
	PrefixDistrict               = "dst"
	PrefixSubdistrict            = "sbd"
	PrefixSponsoringOrganization = "spo"
	PrefixUnit                   = "unt"
)

// NewID32 returns exactly 32 hex characters (no separators/prefixes).
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// New returns "<prefix>-<32 hex>" built from a random (v4) UUID.
func New(prefix string) string {
	u := uuid.New()
	return prefix + "-" + hex.EncodeToString(u[:])
}

// Prefix returns the record-type tag of a prefixed id, or "" when the id has none.
func Prefix(s string) string {
	i := strings.IndexByte(s, '-')
	if i <= 0 {
		return ""
	}
	return s[:i]
}

// HasPrefix reports whether s is tagged with the given prefix.
func HasPrefix(s, prefix string) bool {
	return Prefix(s) == prefix && len(s) > len(prefix)+1
}

// Derive returns a stable "<prefix>-<32 hex>" id for a natural key, so re-importing
// the same record resolves to the same row.
func Derive(prefix, key string) string {
	u := uuid.NewSHA1(uuid.NameSpaceOID, []byte(prefix+":"+key))
	return prefix + "-" + hex.EncodeToString(u[:])
}
