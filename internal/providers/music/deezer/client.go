package deezer

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/driftwave/release-radar/internal/adapter"
	"github.com/driftwave/release-radar/internal/domain"
	"github.com/driftwave/release-radar/internal/providers/music"
	"github.com/driftwave/release-radar/internal/ratelimit"
)

const PROVIDER_NAME = "deezer"

// artistObject represents an artist from the Deezer API
type artistObject struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Link    string `json:"link"`
	Picture string `json:"picture_big"`
}

// searchResponse represents the artist search response
type searchResponse struct {
	Data []artistObject `json:"data"`
}

// albumObject represents an album from the Deezer API
type albumObject struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Link        string `json:"link"`
	Cover       string `json:"cover_big"`
	RecordType  string `json:"record_type"`
	ReleaseDate string `json:"release_date"`
	NbTracks    int    `json:"nb_tracks"`
}

// albumsResponse represents the artist albums response
type albumsResponse struct {
	Data []albumObject `json:"data"`
}

// Client implements the music.Provider interface against the Deezer API.
// Deezer's public endpoints need no credentials.
type Client struct {
	httpClient     adapter.HTTPClient
	rateLimitProxy ratelimit.Proxy
	json           adapter.JSON
	apiURL         string
}

// NewClient creates a new Deezer client
func NewClient(httpClient adapter.HTTPClient, rateLimitProxy ratelimit.Proxy, json adapter.JSON, apiURL string) music.Provider {
	return &Client{
		httpClient:     httpClient,
		rateLimitProxy: rateLimitProxy,
		json:           json,
		apiURL:         apiURL,
	}
}

// Name returns the provider identifier
func (c *Client) Name() domain.ProviderName {
	return domain.ProviderDeezer
}

// Enabled always reports true, the public API is unauthenticated
func (c *Client) Enabled() bool {
	return true
}

// SearchArtist resolves an artist name to a Deezer artist record
func (c *Client) SearchArtist(ctx context.Context, name string) (*music.Artist, error) {
	reqURL := fmt.Sprintf("%s/search/artist?q=%s&limit=1", c.apiURL, url.QueryEscape(name))

	respBody, err := ratelimit.Request(ctx, c.rateLimitProxy, PROVIDER_NAME, func(ctx context.Context) ([]byte, error) {
		return c.httpClient.GetBytes(ctx, reqURL, nil)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search Deezer artist: %w", err)
	}

	var response searchResponse
	if err := c.json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Deezer search response: %w", err)
	}

	if len(response.Data) == 0 {
		return nil, domain.ErrEntityNotFound
	}

	found := response.Data[0]
	artist := &music.Artist{
		ID:   fmt.Sprintf("%d", found.ID),
		Name: found.Name,
		URL:  found.Link,
	}
	if found.Picture != "" {
		artist.ImageURL = &found.Picture
	}

	return artist, nil
}

// GetRecentReleases returns the artist's albums published at or after since
func (c *Client) GetRecentReleases(ctx context.Context, artistID string, since time.Time) ([]music.Release, error) {
	reqURL := fmt.Sprintf("%s/artist/%s/albums?limit=50", c.apiURL, url.PathEscape(artistID))

	respBody, err := ratelimit.Request(ctx, c.rateLimitProxy, PROVIDER_NAME, func(ctx context.Context) ([]byte, error) {
		return c.httpClient.GetBytes(ctx, reqURL, nil)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch Deezer albums: %w", err)
	}

	var response albumsResponse
	if err := c.json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Deezer albums response: %w", err)
	}

	var releases []music.Release
	for _, album := range response.Data {
		releasedAt, err := time.Parse("2006-01-02", album.ReleaseDate)
		if err != nil || releasedAt.Before(since) {
			continue
		}

		release := music.Release{
			ID:          fmt.Sprintf("%d", album.ID),
			Title:       album.Title,
			RecordType:  album.RecordType,
			URL:         album.Link,
			ReleasedAt:  releasedAt.UTC(),
			TotalTracks: album.NbTracks,
		}
		if album.Cover != "" {
			release.ImageURL = &album.Cover
		}
		releases = append(releases, release)
	}

	return releases, nil
}
