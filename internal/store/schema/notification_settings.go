package schema

import (
	"time"

	"github.com/driftwave/release-radar/internal/domain"
)

// NotificationSettings represents the notification_settings table - exactly
// one row per user, created with defaults on first access
type NotificationSettings struct {
	// UserID is the owning user and primary key
	UserID string `gorm:"column:user_id;primaryKey;type:varchar(36)"`
	// EmailEnabled is the master switch for release emails
	EmailEnabled bool `gorm:"column:email_enabled;not null;default:true"`
	// Frequency controls delivery cadence; only immediate is dispatched today
	Frequency domain.NotificationFrequency `gorm:"column:frequency;not null;default:immediate;type:varchar(20)"`
	// ArtistEnabled gates artist-type release emails
	ArtistEnabled bool `gorm:"column:artist_enabled;not null;default:true"`
	// GameEnabled gates game-type release emails
	GameEnabled bool `gorm:"column:game_enabled;not null;default:true"`
	// CreatedAt is when the row was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is when the row was last modified
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the NotificationSettings model
func (NotificationSettings) TableName() string {
	return "notification_settings"
}

// DefaultNotificationSettings returns the defaults applied on first access
func DefaultNotificationSettings(userID string) NotificationSettings {
	return NotificationSettings{
		UserID:        userID,
		EmailEnabled:  true,
		Frequency:     domain.FrequencyImmediate,
		ArtistEnabled: true,
		GameEnabled:   true,
	}
}
