package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/driftwave/release-radar/internal/domain"
	"github.com/driftwave/release-radar/internal/store/schema"
)

// ArtistResponse represents one tracked artist
type ArtistResponse struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	Platform        string     `json:"platform,omitempty"`
	URL             string     `json:"url,omitempty"`
	SpotifyArtistID *string    `json:"spotify_artist_id,omitempty"`
	DeezerArtistID  *string    `json:"deezer_artist_id,omitempty"`
	LastChecked     *time.Time `json:"last_checked,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// MapArtistToDTO maps a tracked artist row to its response form
func MapArtistToDTO(a *schema.TrackedArtist) *ArtistResponse {
	return &ArtistResponse{
		ID:              a.ID,
		Name:            a.Name,
		Platform:        a.Platform,
		URL:             a.URL,
		SpotifyArtistID: a.SpotifyArtistID,
		DeezerArtistID:  a.DeezerArtistID,
		LastChecked:     a.LastChecked,
		CreatedAt:       a.CreatedAt,
	}
}

// ArtistListResponse wraps a list of tracked artists
type ArtistListResponse struct {
	Artists []ArtistResponse `json:"artists"`
}

// GameResponse represents one tracked game
type GameResponse struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Platform    string            `json:"platform,omitempty"`
	URL         string            `json:"url,omitempty"`
	SteamAppID  *string           `json:"steam_app_id,omitempty"`
	RAWGSlug    *string           `json:"rawg_slug,omitempty"`
	Status      domain.GameStatus `json:"status"`
	ReleaseDate *time.Time        `json:"release_date,omitempty"`
	LastChecked *time.Time        `json:"last_checked,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

// MapGameToDTO maps a tracked game row to its response form
func MapGameToDTO(g *schema.TrackedGame) *GameResponse {
	return &GameResponse{
		ID:          g.ID,
		Name:        g.Name,
		Platform:    g.Platform,
		URL:         g.URL,
		SteamAppID:  g.SteamAppID,
		RAWGSlug:    g.RAWGSlug,
		Status:      g.Status,
		ReleaseDate: g.ReleaseDate,
		LastChecked: g.LastChecked,
		CreatedAt:   g.CreatedAt,
	}
}

// GameListResponse wraps a list of tracked games
type GameListResponse struct {
	Games []GameResponse `json:"games"`
}

// ReleaseResponse represents one detected release
type ReleaseResponse struct {
	ID          uuid.UUID          `json:"id"`
	Type        domain.ReleaseType `json:"type"`
	SourceID    uuid.UUID          `json:"source_id"`
	Title       string             `json:"title"`
	Description *string            `json:"description,omitempty"`
	ImageURL    *string            `json:"image_url,omitempty"`
	PlatformURL *string            `json:"platform_url,omitempty"`
	Metadata    datatypes.JSON     `json:"metadata,omitempty"`
	DetectedAt  time.Time          `json:"detected_at"`
	ExpiresAt   time.Time          `json:"expires_at"`
}

// MapReleaseToDTO maps a release row to its response form
func MapReleaseToDTO(r *schema.Release) *ReleaseResponse {
	return &ReleaseResponse{
		ID:          r.ID,
		Type:        r.Type,
		SourceID:    r.SourceID,
		Title:       r.Title,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		PlatformURL: r.PlatformURL,
		Metadata:    r.Metadata,
		DetectedAt:  r.DetectedAt,
		ExpiresAt:   r.ExpiresAt,
	}
}

// ReleaseListResponse wraps a page of releases
type ReleaseListResponse struct {
	Releases []ReleaseResponse `json:"releases"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}

// SettingsResponse represents a user's notification settings
type SettingsResponse struct {
	EmailEnabled  bool                         `json:"email_enabled"`
	Frequency     domain.NotificationFrequency `json:"frequency"`
	ArtistEnabled bool                         `json:"artist_enabled"`
	GameEnabled   bool                         `json:"game_enabled"`
	UpdatedAt     time.Time                    `json:"updated_at"`
}

// MapSettingsToDTO maps a notification settings row to its response form
func MapSettingsToDTO(s *schema.NotificationSettings) *SettingsResponse {
	return &SettingsResponse{
		EmailEnabled:  s.EmailEnabled,
		Frequency:     s.Frequency,
		ArtistEnabled: s.ArtistEnabled,
		GameEnabled:   s.GameEnabled,
		UpdatedAt:     s.UpdatedAt,
	}
}

// ScanTriggerResponse acknowledges an accepted scan request
type ScanTriggerResponse struct {
	EventID string `json:"event_id"`
	Status  string `json:"status"`
}
