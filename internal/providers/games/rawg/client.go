package rawg

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/driftwave/release-radar/internal/adapter"
	"github.com/driftwave/release-radar/internal/domain"
	"github.com/driftwave/release-radar/internal/providers/games"
	"github.com/driftwave/release-radar/internal/ratelimit"
)

const PROVIDER_NAME = "rawg"

// gameDetails represents the RAWG game details payload
type gameDetails struct {
	ID       int64  `json:"id"`
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	TBA      bool   `json:"tba"`
	Released string `json:"released"`
	Detail   string `json:"detail"` // set on error payloads
}

// addition represents a DLC or edition attached to a game
type addition struct {
	ID       int64  `json:"id"`
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	Released string `json:"released"`
}

// additionsResponse represents the paginated additions payload
type additionsResponse struct {
	Results []addition `json:"results"`
}

// Client implements the games.Provider interface against the RAWG API.
// RAWG requires an API key; without one the provider reports disabled.
type Client struct {
	httpClient     adapter.HTTPClient
	rateLimitProxy ratelimit.Proxy
	clock          adapter.Clock
	json           adapter.JSON
	apiURL         string
	apiKey         string
}

// NewClient creates a new RAWG client
func NewClient(httpClient adapter.HTTPClient, rateLimitProxy ratelimit.Proxy, clock adapter.Clock, json adapter.JSON, apiURL string, apiKey string) games.Provider {
	return &Client{
		httpClient:     httpClient,
		rateLimitProxy: rateLimitProxy,
		clock:          clock,
		json:           json,
		apiURL:         apiURL,
		apiKey:         apiKey,
	}
}

// Name returns the provider identifier
func (c *Client) Name() domain.ProviderName {
	return domain.ProviderRAWG
}

// Enabled reports whether an API key is configured
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// GetStatus returns the game's release status from the game details endpoint
func (c *Client) GetStatus(ctx context.Context, slug string) (*games.Status, error) {
	if !c.Enabled() {
		return nil, domain.ErrNoCredentials
	}

	reqURL := fmt.Sprintf("%s/games/%s?key=%s", c.apiURL, url.PathEscape(slug), url.QueryEscape(c.apiKey))

	respBody, err := ratelimit.Request(ctx, c.rateLimitProxy, PROVIDER_NAME, func(ctx context.Context) ([]byte, error) {
		return c.httpClient.GetBytes(ctx, reqURL, nil)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch RAWG game details: %w", err)
	}

	var details gameDetails
	if err := c.json.Unmarshal(respBody, &details); err != nil {
		return nil, fmt.Errorf("failed to unmarshal RAWG game details: %w", err)
	}

	if details.ID == 0 {
		return nil, domain.ErrEntityNotFound
	}

	status := &games.Status{}
	switch {
	case details.TBA:
		status.Status = domain.GameStatusComingSoon
	case details.Released != "":
		releasedAt, err := time.Parse("2006-01-02", details.Released)
		if err != nil {
			status.Status = domain.GameStatusUnknown
			break
		}
		releasedAt = releasedAt.UTC()
		status.ReleaseDate = &releasedAt
		if releasedAt.After(c.clock.Now()) {
			status.Status = domain.GameStatusComingSoon
		} else {
			status.Status = domain.GameStatusReleased
		}
	default:
		status.Status = domain.GameStatusUnknown
	}

	return status, nil
}

// GetRecentUpdates returns DLC and additions released at or after since
func (c *Client) GetRecentUpdates(ctx context.Context, slug string, since time.Time) ([]games.Update, error) {
	if !c.Enabled() {
		return nil, domain.ErrNoCredentials
	}

	reqURL := fmt.Sprintf("%s/games/%s/additions?key=%s", c.apiURL, url.PathEscape(slug), url.QueryEscape(c.apiKey))

	respBody, err := ratelimit.Request(ctx, c.rateLimitProxy, PROVIDER_NAME, func(ctx context.Context) ([]byte, error) {
		return c.httpClient.GetBytes(ctx, reqURL, nil)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch RAWG additions: %w", err)
	}

	var response additionsResponse
	if err := c.json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal RAWG additions: %w", err)
	}

	var updates []games.Update
	for _, item := range response.Results {
		if item.Released == "" {
			continue
		}
		releasedAt, err := time.Parse("2006-01-02", item.Released)
		if err != nil || releasedAt.Before(since) {
			continue
		}

		updates = append(updates, games.Update{
			ID:          fmt.Sprintf("%d", item.ID),
			Kind:        games.UpdateKindAddition,
			Title:       item.Name,
			URL:         fmt.Sprintf("https://rawg.io/games/%s", item.Slug),
			PublishedAt: releasedAt.UTC(),
		})
	}

	return updates, nil
}
