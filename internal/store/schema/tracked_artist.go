package schema

import (
	"time"

	"github.com/google/uuid"
)

// TrackedArtist represents the tracked_artists table - one row per music
// artist a user follows. Provider IDs are optional: a manually added artist
// may have none, in which case the scanner skips it.
type TrackedArtist struct {
	// ID is the primary key
	ID uuid.UUID `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	// UserID is the owning user
	UserID string `gorm:"column:user_id;not null;index;type:varchar(36)"`
	// Name is the display name shown in the dashboard
	Name string `gorm:"column:name;not null;type:varchar(255)"`
	// Platform is the label of the platform the artist was added from
	Platform string `gorm:"column:platform;type:varchar(50)"`
	// URL is the canonical artist page
	URL string `gorm:"column:url;type:text"`
	// SpotifyArtistID is the Spotify identifier, when known
	SpotifyArtistID *string `gorm:"column:spotify_artist_id;type:varchar(64)"`
	// DeezerArtistID is the Deezer identifier, when known
	DeezerArtistID *string `gorm:"column:deezer_artist_id;type:varchar(64)"`
	// LastChecked is when the scanner last processed this artist
	LastChecked *time.Time `gorm:"column:last_checked;type:timestamptz"`
	// CreatedAt is when the artist was added
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is when the row was last modified
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the TrackedArtist model
func (TrackedArtist) TableName() string {
	return "tracked_artists"
}

// HasProviderID reports whether any music provider can be queried for this artist
func (a *TrackedArtist) HasProviderID() bool {
	return a.SpotifyArtistID != nil || a.DeezerArtistID != nil
}
