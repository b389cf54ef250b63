package scanner_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/driftwave/release-radar/internal/domain"
	"github.com/driftwave/release-radar/internal/scanner"
)

func TestComputeHash_Stable(t *testing.T) {
	sourceID := uuid.MustParse("b6f6f0f0-6a1f-4a95-a9a4-111111111111")

	h1 := scanner.ComputeHash(sourceID, domain.ReleaseTypeArtist, "In Rainbows")
	h2 := scanner.ComputeHash(sourceID, domain.ReleaseTypeArtist, "In Rainbows")

	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 64)
}

func TestComputeHash_NormalizesTitle(t *testing.T) {
	sourceID := uuid.MustParse("b6f6f0f0-6a1f-4a95-a9a4-111111111111")

	h1 := scanner.ComputeHash(sourceID, domain.ReleaseTypeArtist, "In Rainbows")
	h2 := scanner.ComputeHash(sourceID, domain.ReleaseTypeArtist, "  in   RAINBOWS ")

	assert.Equal(t, h1, h2)
}

func TestComputeHash_DistinguishesInputs(t *testing.T) {
	a := uuid.MustParse("b6f6f0f0-6a1f-4a95-a9a4-111111111111")
	b := uuid.MustParse("b6f6f0f0-6a1f-4a95-a9a4-222222222222")

	base := scanner.ComputeHash(a, domain.ReleaseTypeArtist, "In Rainbows")

	assert.NotEqual(t, base, scanner.ComputeHash(b, domain.ReleaseTypeArtist, "In Rainbows"))
	assert.NotEqual(t, base, scanner.ComputeHash(a, domain.ReleaseTypeGame, "In Rainbows"))
	assert.NotEqual(t, base, scanner.ComputeHash(a, domain.ReleaseTypeArtist, "OK Computer"))
}

func TestNormalizeTitle(t *testing.T) {
	assert.Equal(t, "ok computer", scanner.NormalizeTitle("  OK   Computer "))
	assert.Equal(t, "", scanner.NormalizeTitle("   "))
}
