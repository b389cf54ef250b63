package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/driftwave/release-radar/internal/domain"
	"github.com/driftwave/release-radar/internal/store/schema"
)

// TrackedEntityFilter restricts tracked-entity listings to one user or one entity
type TrackedEntityFilter struct {
	UserID   *string
	EntityID *uuid.UUID
}

// CreateTrackedArtistInput holds the fields for adding a tracked artist
type CreateTrackedArtistInput struct {
	UserID          string
	Name            string
	Platform        string
	URL             string
	SpotifyArtistID *string
	DeezerArtistID  *string
}

// CreateTrackedGameInput holds the fields for adding a tracked game
type CreateTrackedGameInput struct {
	UserID      string
	Name        string
	Platform    string
	URL         string
	SteamAppID  *string
	RAWGSlug    *string
	Status      domain.GameStatus
	ReleaseDate *time.Time
}

// ReleaseFilter restricts release listings
type ReleaseFilter struct {
	UserID string
	Type   *domain.ReleaseType
	Limit  int
	Offset int
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// CreateTrackedArtist adds an artist to a user's tracked list
	CreateTrackedArtist(ctx context.Context, input CreateTrackedArtistInput) (*schema.TrackedArtist, error)
	// GetTrackedArtist retrieves one tracked artist by ID
	GetTrackedArtist(ctx context.Context, id uuid.UUID) (*schema.TrackedArtist, error)
	// ListTrackedArtists retrieves tracked artists, optionally scoped by the filter
	ListTrackedArtists(ctx context.Context, filter TrackedEntityFilter) ([]schema.TrackedArtist, error)
	// DeleteTrackedArtist removes a tracked artist owned by the given user.
	// Releases referencing it remain until they expire.
	DeleteTrackedArtist(ctx context.Context, id uuid.UUID, userID string) error
	// UpdateArtistLastChecked records when the scanner last processed an artist
	UpdateArtistLastChecked(ctx context.Context, id uuid.UUID, checkedAt time.Time) error

	// CreateTrackedGame adds a game to a user's tracked list
	CreateTrackedGame(ctx context.Context, input CreateTrackedGameInput) (*schema.TrackedGame, error)
	// GetTrackedGame retrieves one tracked game by ID
	GetTrackedGame(ctx context.Context, id uuid.UUID) (*schema.TrackedGame, error)
	// ListTrackedGames retrieves tracked games, optionally scoped by the filter
	ListTrackedGames(ctx context.Context, filter TrackedEntityFilter) ([]schema.TrackedGame, error)
	// DeleteTrackedGame removes a tracked game owned by the given user
	DeleteTrackedGame(ctx context.Context, id uuid.UUID, userID string) error
	// UpdateGameScanState records the provider-reported status/date and the
	// last-checked timestamp after a scan
	UpdateGameScanState(ctx context.Context, id uuid.UUID, status domain.GameStatus, releaseDate *time.Time, checkedAt time.Time) error

	// CreateReleases bulk-inserts staged releases. Conflicts on the dedup
	// index are silently skipped; only rows actually inserted are returned.
	CreateReleases(ctx context.Context, releases []schema.Release) ([]schema.Release, error)
	// ReleaseExists checks whether a release with the given dedup hash is
	// already recorded for the source entity
	ReleaseExists(ctx context.Context, sourceID uuid.UUID, releaseType domain.ReleaseType, uniqueHash string) (bool, error)
	// ListReleases retrieves a user's releases, newest first
	ListReleases(ctx context.Context, filter ReleaseFilter) ([]schema.Release, error)
	// DeleteRelease removes a single release owned by the given user (dismissal)
	DeleteRelease(ctx context.Context, id uuid.UUID, userID string) error
	// DeleteExpiredReleases hard-deletes up to limit releases whose expiry has
	// passed and returns the number deleted
	DeleteExpiredReleases(ctx context.Context, before time.Time, limit int) (int64, error)
	// DeleteExpiredReleasesForUser hard-deletes one user's expired releases
	DeleteExpiredReleasesForUser(ctx context.Context, userID string, before time.Time) (int64, error)

	// GetOrCreateNotificationSettings returns a user's settings, creating the
	// row with defaults if absent. The upsert is idempotent.
	GetOrCreateNotificationSettings(ctx context.Context, userID string) (*schema.NotificationSettings, error)
	// UpdateNotificationSettings persists a user's settings
	UpdateNotificationSettings(ctx context.Context, settings *schema.NotificationSettings) error

	// GetUserByID resolves a user record (email address) by ID
	GetUserByID(ctx context.Context, userID string) (*schema.User, error)
	// UpsertUser mirrors an auth-provider account record
	UpsertUser(ctx context.Context, user *schema.User) error
}
