package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event subjects published to the message broker
const (
	SubjectScanRequested = "release.scan.request"
	SubjectScanCompleted = "release.scan.completed"
)

// ScanRequested asks the scanner process to run a user- or entity-scoped scan.
// Published by the API when a user manually triggers a check.
type ScanRequested struct {
	// EventID is a ULID for unique, time-sortable identification
	EventID string `json:"event_id"`
	// UserID scopes the scan to one user's entities when set
	UserID string `json:"user_id,omitempty"`
	// EntityID scopes the scan to a single entity when set; EntityType must
	// accompany it
	EntityID   *uuid.UUID   `json:"entity_id,omitempty"`
	EntityType *ReleaseType `json:"entity_type,omitempty"`
	// RequestedAt is when the trigger fired
	RequestedAt time.Time `json:"requested_at"`
}

// ReleaseEvent is the wire form of one newly inserted release
type ReleaseEvent struct {
	ID          uuid.UUID   `json:"id"`
	Type        ReleaseType `json:"type"`
	SourceID    uuid.UUID   `json:"source_id"`
	UserID      string      `json:"user_id"`
	Title       string      `json:"title"`
	Description *string     `json:"description,omitempty"`
	ImageURL    *string     `json:"image_url,omitempty"`
	PlatformURL *string     `json:"platform_url,omitempty"`
	DetectedAt  time.Time   `json:"detected_at"`
}

// ScanCompleted carries the batch of releases inserted by one scan run.
// The notifier consumes it to fan out per-user emails; a run that inserted
// nothing publishes no event.
type ScanCompleted struct {
	EventID     string         `json:"event_id"`
	RunID       string         `json:"run_id"`
	Processed   int            `json:"processed"`
	Releases    []ReleaseEvent `json:"releases"`
	CompletedAt time.Time      `json:"completed_at"`
}
