package steam_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftwave/release-radar/internal/adapter"
	"github.com/driftwave/release-radar/internal/domain"
	"github.com/driftwave/release-radar/internal/mocks"
	"github.com/driftwave/release-radar/internal/providers/games"
	"github.com/driftwave/release-radar/internal/providers/games/steam"
)

const (
	testStoreURL = "https://store.steampowered.test/api"
	testAPIURL   = "https://api.steampowered.test"
)

func TestSteamClient_GetStatus_ComingSoon(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTP := mocks.NewMockHTTPClient(ctrl)
	client := steam.NewClient(mockHTTP, nil, adapter.NewJSON(), testStoreURL, testAPIURL)

	detailsJSON := []byte(`{
		"1091500": {
			"success": true,
			"data": {
				"name": "Cyberpunk 2078",
				"release_date": {"coming_soon": true, "date": "Jan 2027"},
				"genres": [{"id": "3", "description": "RPG"}]
			}
		}
	}`)

	expectedURL := testStoreURL + "/appdetails?appids=1091500"
	mockHTTP.EXPECT().
		GetBytes(gomock.Any(), expectedURL, nil).
		Return(detailsJSON, nil)

	status, err := client.GetStatus(context.Background(), "1091500")

	require.NoError(t, err)
	assert.Equal(t, domain.GameStatusComingSoon, status.Status)
	require.NotNil(t, status.ReleaseDate)
	assert.Equal(t, 2027, status.ReleaseDate.Year())
}

func TestSteamClient_GetStatus_EarlyAccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTP := mocks.NewMockHTTPClient(ctrl)
	client := steam.NewClient(mockHTTP, nil, adapter.NewJSON(), testStoreURL, testAPIURL)

	detailsJSON := []byte(`{
		"892970": {
			"success": true,
			"data": {
				"name": "Valheim",
				"release_date": {"coming_soon": false, "date": "2 Feb, 2021"},
				"genres": [{"id": "70", "description": "Early Access"}]
			}
		}
	}`)

	mockHTTP.EXPECT().
		GetBytes(gomock.Any(), gomock.Any(), nil).
		Return(detailsJSON, nil)

	status, err := client.GetStatus(context.Background(), "892970")

	require.NoError(t, err)
	assert.Equal(t, domain.GameStatusEarlyAccess, status.Status)
}

func TestSteamClient_GetStatus_Released(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTP := mocks.NewMockHTTPClient(ctrl)
	client := steam.NewClient(mockHTTP, nil, adapter.NewJSON(), testStoreURL, testAPIURL)

	detailsJSON := []byte(`{
		"620": {
			"success": true,
			"data": {
				"name": "Portal 2",
				"release_date": {"coming_soon": false, "date": "18 Apr, 2011"},
				"genres": [{"id": "1", "description": "Action"}]
			}
		}
	}`)

	mockHTTP.EXPECT().
		GetBytes(gomock.Any(), gomock.Any(), nil).
		Return(detailsJSON, nil)

	status, err := client.GetStatus(context.Background(), "620")

	require.NoError(t, err)
	assert.Equal(t, domain.GameStatusReleased, status.Status)
	require.NotNil(t, status.ReleaseDate)
	assert.Equal(t, time.Date(2011, 4, 18, 0, 0, 0, 0, time.UTC), *status.ReleaseDate)
}

func TestSteamClient_GetStatus_UnknownApp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTP := mocks.NewMockHTTPClient(ctrl)
	client := steam.NewClient(mockHTTP, nil, adapter.NewJSON(), testStoreURL, testAPIURL)

	mockHTTP.EXPECT().
		GetBytes(gomock.Any(), gomock.Any(), nil).
		Return([]byte(`{"999999999": {"success": false}}`), nil)

	status, err := client.GetStatus(context.Background(), "999999999")

	assert.ErrorIs(t, err, domain.ErrEntityNotFound)
	assert.Nil(t, status)
}

func TestSteamClient_GetRecentUpdates_FiltersBySince(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTP := mocks.NewMockHTTPClient(ctrl)
	client := steam.NewClient(mockHTTP, nil, adapter.NewJSON(), testStoreURL, testAPIURL)

	recent := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	stale := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	newsJSON := []byte(`{
		"appnews": {
			"appid": 892970,
			"newsitems": [
				{
					"gid": "5124",
					"title": "Patch 0.220.5",
					"url": "https://steamcommunity.com/news/1",
					"contents": "Bug fixes",
					"date": ` + unixStr(recent) + `,
					"feed_type": 1
				},
				{
					"gid": "5000",
					"title": "Old News",
					"url": "https://steamcommunity.com/news/2",
					"contents": "Ancient history",
					"date": ` + unixStr(stale) + `,
					"feed_type": 1
				}
			]
		}
	}`)

	expectedURL := testAPIURL + "/ISteamNews/GetNewsForApp/v2/?appid=892970&count=20&maxlength=500"
	mockHTTP.EXPECT().
		GetBytes(gomock.Any(), expectedURL, nil).
		Return(newsJSON, nil)

	since := time.Date(2026, 8, 21, 0, 0, 0, 0, time.UTC)
	updates, err := client.GetRecentUpdates(context.Background(), "892970", since)

	require.NoError(t, err)
	require.Len(t, updates, 1)
	assert.Equal(t, "Patch 0.220.5", updates[0].Title)
	assert.Equal(t, games.UpdateKindPatchNotes, updates[0].Kind)
	assert.Equal(t, recent, updates[0].PublishedAt)
}

func unixStr(t time.Time) string {
	return fmt.Sprintf("%d", t.Unix())
}
