package scanner

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"

	"github.com/driftwave/release-radar/internal/domain"
)

// ComputeHash derives the dedup hash for a detected release. The hash is
// stable across scan runs: the same source entity, release type and
// normalized title always produce the same value, which the unique index
// on releases relies on.
func ComputeHash(sourceID uuid.UUID, releaseType domain.ReleaseType, title string) string {
	payload := sourceID.String() + "|" + string(releaseType) + "|" + NormalizeTitle(title)
	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])
}

// NormalizeTitle lowercases the title and collapses runs of whitespace so
// cosmetic differences between provider responses do not defeat dedup
func NormalizeTitle(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(title)), " ")
}
