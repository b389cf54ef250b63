package spotify

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/driftwave/release-radar/internal/adapter"
	"github.com/driftwave/release-radar/internal/domain"
	"github.com/driftwave/release-radar/internal/providers/music"
	"github.com/driftwave/release-radar/internal/ratelimit"
)

const PROVIDER_NAME = "spotify"

// tokenExpirySlack renews the access token slightly before Spotify's
// advertised expiry to avoid racing it
const tokenExpirySlack = 30 * time.Second

// tokenResponse represents the client credentials grant response
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// artistObject represents an artist from the Spotify Web API
type artistObject struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ExternalURLs struct {
		Spotify string `json:"spotify"`
	} `json:"external_urls"`
	Images []imageObject `json:"images"`
}

type imageObject struct {
	URL    string `json:"url"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

// searchResponse represents the artist search response
type searchResponse struct {
	Artists struct {
		Items []artistObject `json:"items"`
	} `json:"artists"`
}

// albumObject represents a simplified album from the Spotify Web API
type albumObject struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	AlbumType            string `json:"album_type"`
	ReleaseDate          string `json:"release_date"`
	ReleaseDatePrecision string `json:"release_date_precision"`
	TotalTracks          int    `json:"total_tracks"`
	ExternalURLs         struct {
		Spotify string `json:"spotify"`
	} `json:"external_urls"`
	Images []imageObject `json:"images"`
}

// albumsResponse represents the artist albums response
type albumsResponse struct {
	Items []albumObject `json:"items"`
}

// Client implements the music.Provider interface against the Spotify Web API
type Client struct {
	httpClient     adapter.HTTPClient
	rateLimitProxy ratelimit.Proxy
	clock          adapter.Clock
	json           adapter.JSON
	apiURL         string
	tokenURL       string
	clientID       string
	clientSecret   string

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// NewClient creates a new Spotify client using the client credentials flow
func NewClient(
	httpClient adapter.HTTPClient,
	rateLimitProxy ratelimit.Proxy,
	clock adapter.Clock,
	json adapter.JSON,
	apiURL string,
	tokenURL string,
	clientID string,
	clientSecret string,
) music.Provider {
	return &Client{
		httpClient:     httpClient,
		rateLimitProxy: rateLimitProxy,
		clock:          clock,
		json:           json,
		apiURL:         apiURL,
		tokenURL:       tokenURL,
		clientID:       clientID,
		clientSecret:   clientSecret,
	}
}

// Name returns the provider identifier
func (c *Client) Name() domain.ProviderName {
	return domain.ProviderSpotify
}

// Enabled reports whether client credentials are configured
func (c *Client) Enabled() bool {
	return c.clientID != "" && c.clientSecret != ""
}

// SearchArtist resolves an artist name to a Spotify artist record
func (c *Client) SearchArtist(ctx context.Context, name string) (*music.Artist, error) {
	if !c.Enabled() {
		return nil, domain.ErrNoCredentials
	}

	reqURL := fmt.Sprintf("%s/search?q=%s&type=artist&limit=1",
		c.apiURL,
		url.QueryEscape(name),
	)

	respBody, err := c.authorizedGet(ctx, reqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to search Spotify artist: %w", err)
	}

	var response searchResponse
	if err := c.json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Spotify search response: %w", err)
	}

	if len(response.Artists.Items) == 0 {
		return nil, domain.ErrEntityNotFound
	}

	return toArtist(response.Artists.Items[0]), nil
}

// GetRecentReleases returns the artist's albums and singles published at or
// after since
func (c *Client) GetRecentReleases(ctx context.Context, artistID string, since time.Time) ([]music.Release, error) {
	if !c.Enabled() {
		return nil, domain.ErrNoCredentials
	}

	reqURL := fmt.Sprintf("%s/artists/%s/albums?include_groups=album,single&limit=50",
		c.apiURL,
		url.PathEscape(artistID),
	)

	respBody, err := c.authorizedGet(ctx, reqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch Spotify albums: %w", err)
	}

	var response albumsResponse
	if err := c.json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Spotify albums response: %w", err)
	}

	var releases []music.Release
	for _, album := range response.Items {
		releasedAt, ok := parseReleaseDate(album.ReleaseDate, album.ReleaseDatePrecision)
		if !ok || releasedAt.Before(since) {
			continue
		}

		release := music.Release{
			ID:          album.ID,
			Title:       album.Name,
			RecordType:  album.AlbumType,
			URL:         album.ExternalURLs.Spotify,
			ReleasedAt:  releasedAt,
			TotalTracks: album.TotalTracks,
		}
		if len(album.Images) > 0 {
			release.ImageURL = &album.Images[0].URL
		}
		releases = append(releases, release)
	}

	return releases, nil
}

// authorizedGet performs a rate-limited GET with a valid bearer token
func (c *Client) authorizedGet(ctx context.Context, reqURL string) ([]byte, error) {
	token, err := c.getAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	headers := map[string]string{
		"Authorization": "Bearer " + token,
	}

	return ratelimit.Request(ctx, c.rateLimitProxy, PROVIDER_NAME, func(ctx context.Context) ([]byte, error) {
		return c.httpClient.GetBytes(ctx, reqURL, headers)
	})
}

// getAccessToken returns a cached token or requests a new one via the
// client credentials grant
func (c *Client) getAccessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && c.clock.Now().Before(c.tokenExpiry) {
		return c.accessToken, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	credentials := base64.StdEncoding.EncodeToString([]byte(c.clientID + ":" + c.clientSecret))
	headers := map[string]string{
		"Authorization": "Basic " + credentials,
	}

	respBody, err := ratelimit.Request(ctx, c.rateLimitProxy, PROVIDER_NAME, func(ctx context.Context) ([]byte, error) {
		return c.httpClient.PostForm(ctx, c.tokenURL, headers, form)
	})
	if err != nil {
		return "", fmt.Errorf("failed to request Spotify access token: %w", err)
	}

	var token tokenResponse
	if err := c.json.Unmarshal(respBody, &token); err != nil {
		return "", fmt.Errorf("failed to unmarshal Spotify token response: %w", err)
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("spotify token response missing access_token")
	}

	c.accessToken = token.AccessToken
	c.tokenExpiry = c.clock.Now().Add(time.Duration(token.ExpiresIn)*time.Second - tokenExpirySlack)

	return c.accessToken, nil
}

// parseReleaseDate interprets Spotify's variable-precision release dates.
// Year and month precision resolve to the first day of the period.
func parseReleaseDate(value string, precision string) (time.Time, bool) {
	var layout string
	switch precision {
	case "day":
		layout = "2006-01-02"
	case "month":
		layout = "2006-01"
	case "year":
		layout = "2006"
	default:
		layout = "2006-01-02"
	}

	t, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

func toArtist(a artistObject) *music.Artist {
	artist := &music.Artist{
		ID:   a.ID,
		Name: a.Name,
		URL:  a.ExternalURLs.Spotify,
	}
	if len(a.Images) > 0 {
		artist.ImageURL = &a.Images[0].URL
	}
	return artist
}
