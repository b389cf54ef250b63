// Package games defines the provider abstraction for game release sources.
package games

import (
	"context"
	"time"

	"github.com/driftwave/release-radar/internal/domain"
)

// UpdateKind classifies what a provider-side update represents
type UpdateKind string

const (
	// UpdateKindPatchNotes is a published news or patch notes item
	UpdateKindPatchNotes UpdateKind = "patch_notes"
	// UpdateKindAddition is DLC or other additional content
	UpdateKindAddition UpdateKind = "addition"
)

// Status is a provider-side view of a game's release state
type Status struct {
	Status      domain.GameStatus
	ReleaseDate *time.Time
}

// Update is a provider-side game update record
type Update struct {
	ID          string
	Kind        UpdateKind
	Title       string
	Body        string
	URL         string
	PublishedAt time.Time
}

// Provider defines the interface for a game release source to enable mocking
//
//go:generate mockgen -source=provider.go -destination=../../mocks/games_provider.go -package=mocks -mock_names=Provider=MockGamesProvider
type Provider interface {
	// Name returns the provider identifier used for rate limiting and logging
	Name() domain.ProviderName

	// Enabled reports whether the provider has the credentials it needs
	Enabled() bool

	// GetStatus returns the game's current release status.
	// Returns domain.ErrEntityNotFound when the provider does not know the game.
	GetStatus(ctx context.Context, gameID string) (*Status, error)

	// GetRecentUpdates returns updates published at or after since
	GetRecentUpdates(ctx context.Context, gameID string, since time.Time) ([]Update, error)
}
