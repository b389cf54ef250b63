package schema

import (
	"time"
)

// User represents the users table - a minimal mirror of the auth provider's
// account record, kept so the notifier can resolve recipient addresses
type User struct {
	// ID is the auth provider's user identifier
	ID string `gorm:"column:id;primaryKey;type:varchar(36)"`
	// Email is the address notifications are delivered to
	Email string `gorm:"column:email;not null;uniqueIndex;type:varchar(255)"`
	// DisplayName is the user's preferred name, used in email greetings
	DisplayName string `gorm:"column:display_name;type:varchar(255)"`
	// CreatedAt is when this mirror row was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is when this mirror row was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}
