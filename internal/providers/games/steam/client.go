package steam

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/driftwave/release-radar/internal/adapter"
	"github.com/driftwave/release-radar/internal/domain"
	"github.com/driftwave/release-radar/internal/providers/games"
	"github.com/driftwave/release-radar/internal/ratelimit"
)

const PROVIDER_NAME = "steam"

const earlyAccessGenreID = "70"

// appDetails represents the store appdetails payload for a single app
type appDetails struct {
	Success bool `json:"success"`
	Data    struct {
		Name        string `json:"name"`
		ReleaseDate struct {
			ComingSoon bool   `json:"coming_soon"`
			Date       string `json:"date"`
		} `json:"release_date"`
		Genres []struct {
			ID          string `json:"id"`
			Description string `json:"description"`
		} `json:"genres"`
	} `json:"data"`
}

// newsItem represents a single news entry from GetNewsForApp
type newsItem struct {
	GID      string `json:"gid"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Contents string `json:"contents"`
	Date     int64  `json:"date"`
	FeedType int    `json:"feed_type"`
}

// newsResponse represents the GetNewsForApp payload
type newsResponse struct {
	AppNews struct {
		AppID     int64      `json:"appid"`
		NewsItems []newsItem `json:"newsitems"`
	} `json:"appnews"`
}

// Client implements the games.Provider interface against the Steam store
// and Web APIs. Both endpoints are public.
type Client struct {
	httpClient     adapter.HTTPClient
	rateLimitProxy ratelimit.Proxy
	json           adapter.JSON
	storeURL       string
	apiURL         string
}

// NewClient creates a new Steam client
func NewClient(httpClient adapter.HTTPClient, rateLimitProxy ratelimit.Proxy, json adapter.JSON, storeURL string, apiURL string) games.Provider {
	return &Client{
		httpClient:     httpClient,
		rateLimitProxy: rateLimitProxy,
		json:           json,
		storeURL:       storeURL,
		apiURL:         apiURL,
	}
}

// Name returns the provider identifier
func (c *Client) Name() domain.ProviderName {
	return domain.ProviderSteam
}

// Enabled always reports true, the endpoints are unauthenticated
func (c *Client) Enabled() bool {
	return true
}

// GetStatus returns the game's release status from the store appdetails
// endpoint
func (c *Client) GetStatus(ctx context.Context, appID string) (*games.Status, error) {
	reqURL := fmt.Sprintf("%s/appdetails?appids=%s", c.storeURL, url.QueryEscape(appID))

	respBody, err := ratelimit.Request(ctx, c.rateLimitProxy, PROVIDER_NAME, func(ctx context.Context) ([]byte, error) {
		return c.httpClient.GetBytes(ctx, reqURL, nil)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch Steam app details: %w", err)
	}

	// The response is keyed by app ID
	var response map[string]appDetails
	if err := c.json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Steam app details: %w", err)
	}

	details, ok := response[appID]
	if !ok || !details.Success {
		return nil, domain.ErrEntityNotFound
	}

	status := &games.Status{Status: resolveStatus(details)}
	if t, ok := parseSteamDate(details.Data.ReleaseDate.Date); ok {
		status.ReleaseDate = &t
	}

	return status, nil
}

// GetRecentUpdates returns news items published at or after since
func (c *Client) GetRecentUpdates(ctx context.Context, appID string, since time.Time) ([]games.Update, error) {
	reqURL := fmt.Sprintf("%s/ISteamNews/GetNewsForApp/v2/?appid=%s&count=20&maxlength=500",
		c.apiURL,
		url.QueryEscape(appID),
	)

	respBody, err := ratelimit.Request(ctx, c.rateLimitProxy, PROVIDER_NAME, func(ctx context.Context) ([]byte, error) {
		return c.httpClient.GetBytes(ctx, reqURL, nil)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch Steam news: %w", err)
	}

	var response newsResponse
	if err := c.json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Steam news: %w", err)
	}

	var updates []games.Update
	for _, item := range response.AppNews.NewsItems {
		publishedAt := time.Unix(item.Date, 0).UTC()
		if publishedAt.Before(since) {
			continue
		}

		updates = append(updates, games.Update{
			ID:          item.GID,
			Kind:        games.UpdateKindPatchNotes,
			Title:       item.Title,
			Body:        item.Contents,
			URL:         item.URL,
			PublishedAt: publishedAt,
		})
	}

	return updates, nil
}

// resolveStatus maps the appdetails payload to a release status
func resolveStatus(details appDetails) domain.GameStatus {
	if details.Data.ReleaseDate.ComingSoon {
		return domain.GameStatusComingSoon
	}
	for _, genre := range details.Data.Genres {
		if genre.ID == earlyAccessGenreID || strings.EqualFold(genre.Description, "Early Access") {
			return domain.GameStatusEarlyAccess
		}
	}
	return domain.GameStatusReleased
}

// parseSteamDate interprets the store's human-oriented release date. Exact
// formats vary ("2 Jan, 2026", "Jan 2026", "2026", "Coming soon"); anything
// unparseable is treated as no date.
func parseSteamDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}

	layouts := []string{"2 Jan, 2006", "Jan 2, 2006", "Jan 2006", "2006"}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), true
		}
	}

	return time.Time{}, false
}
