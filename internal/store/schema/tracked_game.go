package schema

import (
	"time"

	"github.com/google/uuid"

	"github.com/driftwave/release-radar/internal/domain"
)

// TrackedGame represents the tracked_games table - one row per game a user
// follows across store platforms
type TrackedGame struct {
	// ID is the primary key
	ID uuid.UUID `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	// UserID is the owning user
	UserID string `gorm:"column:user_id;not null;index;type:varchar(36)"`
	// Name is the display name shown in the dashboard
	Name string `gorm:"column:name;not null;type:varchar(255)"`
	// Platform is the label of the platform the game was added from
	Platform string `gorm:"column:platform;type:varchar(50)"`
	// URL is the canonical store page
	URL string `gorm:"column:url;type:text"`
	// SteamAppID is the Steam application identifier, when known
	SteamAppID *string `gorm:"column:steam_app_id;type:varchar(32)"`
	// RAWGSlug is the RAWG database slug, when known
	RAWGSlug *string `gorm:"column:rawg_slug;type:varchar(255)"`
	// Status is the last provider-reported availability state
	Status domain.GameStatus `gorm:"column:status;not null;default:unknown;type:varchar(20)"`
	// ReleaseDate is the provider-reported launch date, when known
	ReleaseDate *time.Time `gorm:"column:release_date;type:timestamptz"`
	// LastChecked is when the scanner last processed this game
	LastChecked *time.Time `gorm:"column:last_checked;type:timestamptz"`
	// CreatedAt is when the game was added
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is when the row was last modified
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the TrackedGame model
func (TrackedGame) TableName() string {
	return "tracked_games"
}

// HasProviderID reports whether any game provider can be queried for this game
func (g *TrackedGame) HasProviderID() bool {
	return g.SteamAppID != nil || g.RAWGSlug != nil
}
