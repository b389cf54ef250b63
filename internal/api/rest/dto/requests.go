package dto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/driftwave/release-radar/internal/domain"
)

const (
	maxNameLength = 255
	maxURLLength  = 2048
)

// CreateArtistRequest represents the request body for tracking a music artist
type CreateArtistRequest struct {
	Name            string  `json:"name"`
	Platform        string  `json:"platform,omitempty"`
	URL             string  `json:"url,omitempty"`
	SpotifyArtistID *string `json:"spotify_artist_id,omitempty"`
	DeezerArtistID  *string `json:"deezer_artist_id,omitempty"`
}

// Validate validates the request body
func (r *CreateArtistRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return errors.New("name is required")
	}
	if len(r.Name) > maxNameLength {
		return fmt.Errorf("name must be at most %d characters", maxNameLength)
	}
	if len(r.URL) > maxURLLength {
		return fmt.Errorf("url must be at most %d characters", maxURLLength)
	}
	if r.SpotifyArtistID != nil && strings.TrimSpace(*r.SpotifyArtistID) == "" {
		return errors.New("spotify_artist_id must not be blank when provided")
	}
	if r.DeezerArtistID != nil && strings.TrimSpace(*r.DeezerArtistID) == "" {
		return errors.New("deezer_artist_id must not be blank when provided")
	}
	return nil
}

// CreateGameRequest represents the request body for tracking a game
type CreateGameRequest struct {
	Name       string  `json:"name"`
	Platform   string  `json:"platform,omitempty"`
	URL        string  `json:"url,omitempty"`
	SteamAppID *string `json:"steam_app_id,omitempty"`
	RAWGSlug   *string `json:"rawg_slug,omitempty"`
}

// Validate validates the request body
func (r *CreateGameRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return errors.New("name is required")
	}
	if len(r.Name) > maxNameLength {
		return fmt.Errorf("name must be at most %d characters", maxNameLength)
	}
	if len(r.URL) > maxURLLength {
		return fmt.Errorf("url must be at most %d characters", maxURLLength)
	}
	if r.SteamAppID != nil && strings.TrimSpace(*r.SteamAppID) == "" {
		return errors.New("steam_app_id must not be blank when provided")
	}
	if r.RAWGSlug != nil && strings.TrimSpace(*r.RAWGSlug) == "" {
		return errors.New("rawg_slug must not be blank when provided")
	}
	return nil
}

// UpdateSettingsRequest represents the request body for updating notification
// settings. Absent fields keep their current values.
type UpdateSettingsRequest struct {
	EmailEnabled  *bool   `json:"email_enabled,omitempty"`
	Frequency     *string `json:"frequency,omitempty"`
	ArtistEnabled *bool   `json:"artist_enabled,omitempty"`
	GameEnabled   *bool   `json:"game_enabled,omitempty"`
}

// Validate validates the request body
func (r *UpdateSettingsRequest) Validate() error {
	if r.Frequency != nil && !domain.NotificationFrequency(*r.Frequency).Valid() {
		return fmt.Errorf("invalid frequency: %s", *r.Frequency)
	}
	return nil
}
