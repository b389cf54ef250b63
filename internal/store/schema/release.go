package schema

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/driftwave/release-radar/internal/domain"
)

// Release represents the releases table - one detected new item surfaced to
// a user (a music release or a game status change/update).
//
// Duplicate suppression is constraint-backed: a unique index over
// (source_id, type, unique_hash) lets bulk inserts use ON CONFLICT DO
// NOTHING, so overlapping scan runs cannot insert the same item twice.
type Release struct {
	// ID is the primary key
	ID uuid.UUID `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	// Type distinguishes artist releases from game updates
	Type domain.ReleaseType `gorm:"column:type;not null;type:varchar(10);uniqueIndex:idx_releases_dedup,priority:2"`
	// SourceID references the tracked entity that produced this release
	SourceID uuid.UUID `gorm:"column:source_id;not null;type:uuid;index;uniqueIndex:idx_releases_dedup,priority:1"`
	// UserID is the owning user
	UserID string `gorm:"column:user_id;not null;index;type:varchar(36)"`
	// Title is the release title
	Title string `gorm:"column:title;not null;type:varchar(512)"`
	// Description is optional detail text
	Description *string `gorm:"column:description;type:text"`
	// ImageURL is optional artwork
	ImageURL *string `gorm:"column:image_url;type:text"`
	// PlatformURL links to the item on the source platform
	PlatformURL *string `gorm:"column:platform_url;type:text"`
	// UniqueHash is a sha256 over (source id, type, normalized title)
	UniqueHash string `gorm:"column:unique_hash;not null;type:char(64);uniqueIndex:idx_releases_dedup,priority:3"`
	// Metadata carries provider-specific context about the item
	Metadata datatypes.JSON `gorm:"column:metadata;type:jsonb"`
	// DetectedAt is when the scanner found this item
	DetectedAt time.Time `gorm:"column:detected_at;not null;default:now();type:timestamptz"`
	// ExpiresAt is when the sweeper may hard-delete this row
	ExpiresAt time.Time `gorm:"column:expires_at;not null;index;type:timestamptz"`
	// CreatedAt is when the row was inserted
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Release model
func (Release) TableName() string {
	return "releases"
}
