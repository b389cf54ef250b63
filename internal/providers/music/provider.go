// Package music defines the provider abstraction for music release sources.
package music

import (
	"context"
	"time"

	"github.com/driftwave/release-radar/internal/domain"
)

// Artist is a provider-side artist record
type Artist struct {
	ID       string
	Name     string
	URL      string
	ImageURL *string
}

// Release is a provider-side release record (album, single or EP)
type Release struct {
	ID          string
	Title       string
	RecordType  string
	URL         string
	ImageURL    *string
	ReleasedAt  time.Time
	TotalTracks int
}

// Provider defines the interface for a music release source to enable mocking
//
//go:generate mockgen -source=provider.go -destination=../../mocks/music_provider.go -package=mocks -mock_names=Provider=MockMusicProvider
type Provider interface {
	// Name returns the provider identifier used for rate limiting and logging
	Name() domain.ProviderName

	// Enabled reports whether the provider has the credentials it needs
	Enabled() bool

	// SearchArtist resolves an artist name to the provider's artist record.
	// Returns domain.ErrEntityNotFound when no artist matches.
	SearchArtist(ctx context.Context, name string) (*Artist, error)

	// GetRecentReleases returns the artist's releases published at or after
	// since, newest first
	GetRecentReleases(ctx context.Context, artistID string, since time.Time) ([]Release, error)
}
