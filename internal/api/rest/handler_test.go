package rest_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftwave/release-radar/internal/api/middleware"
	"github.com/driftwave/release-radar/internal/api/rest"
	"github.com/driftwave/release-radar/internal/domain"
	"github.com/driftwave/release-radar/internal/logger"
	"github.com/driftwave/release-radar/internal/mocks"
	"github.com/driftwave/release-radar/internal/store"
	"github.com/driftwave/release-radar/internal/store/schema"
)

const testUserID = "user-123"

// testHandlerMocks contains all the mocks needed for testing handlers
type testHandlerMocks struct {
	ctrl      *gomock.Controller
	store     *mocks.MockStore
	publisher *mocks.MockPublisher
	clock     *mocks.MockClock
	router    *gin.Engine
}

// setupTestHandler wires the handler into a router with the authenticated
// user preset, bypassing the auth middleware
func setupTestHandler(t *testing.T) *testHandlerMocks {
	err := logger.Initialize(logger.Config{
		Debug: true,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	tm := &testHandlerMocks{
		ctrl:      ctrl,
		store:     mocks.NewMockStore(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
		clock:     mocks.NewMockClock(ctrl),
	}

	handler := rest.NewHandler(tm.store, tm.publisher, tm.clock)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(middleware.AUTH_SUBJECT_KEY, testUserID)
		c.Next()
	})

	router.GET("/health", handler.HealthCheck)
	v1 := router.Group("/api/v1")
	{
		v1.POST("/artists", handler.CreateArtist)
		v1.GET("/artists", handler.ListArtists)
		v1.GET("/artists/:id", handler.GetArtist)
		v1.DELETE("/artists/:id", handler.DeleteArtist)
		v1.POST("/artists/:id/scan", handler.TriggerArtistScan)
		v1.POST("/games", handler.CreateGame)
		v1.GET("/games", handler.ListGames)
		v1.GET("/games/:id", handler.GetGame)
		v1.DELETE("/games/:id", handler.DeleteGame)
		v1.POST("/games/:id/scan", handler.TriggerGameScan)
		v1.GET("/releases", handler.ListReleases)
		v1.DELETE("/releases/:id", handler.DismissRelease)
		v1.GET("/settings", handler.GetSettings)
		v1.PUT("/settings", handler.UpdateSettings)
		v1.POST("/scan", handler.TriggerScan)
	}

	tm.router = router
	return tm
}

func tearDownTestHandler(tm *testHandlerMocks) {
	tm.ctrl.Finish()
}

// doRequest performs a request against the test router
func doRequest(tm *testHandlerMocks, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		data, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	tm.router.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	w := doRequest(tm, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestCreateArtist(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	spotifyID := "4tZwfgrHOc3mvqYlEYSvVi"
	artistID := uuid.New()

	tm.store.EXPECT().
		CreateTrackedArtist(gomock.Any(), store.CreateTrackedArtistInput{
			UserID:          testUserID,
			Name:            "Daft Punk",
			Platform:        "spotify",
			SpotifyArtistID: &spotifyID,
		}).
		Return(&schema.TrackedArtist{
			ID:              artistID,
			UserID:          testUserID,
			Name:            "Daft Punk",
			Platform:        "spotify",
			SpotifyArtistID: &spotifyID,
		}, nil)

	w := doRequest(tm, http.MethodPost, "/api/v1/artists", gin.H{
		"name":              "Daft Punk",
		"platform":          "spotify",
		"spotify_artist_id": spotifyID,
	})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), artistID.String())
	assert.Contains(t, w.Body.String(), "Daft Punk")
}

func TestCreateArtistEmptyNameRejected(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	w := doRequest(tm, http.MethodPost, "/api/v1/artists", gin.H{
		"name": "   ",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "name is required")
}

func TestGetArtistOwnedByAnotherUserHidden(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	artistID := uuid.New()
	tm.store.EXPECT().
		GetTrackedArtist(gomock.Any(), artistID).
		Return(&schema.TrackedArtist{
			ID:     artistID,
			UserID: "someone-else",
			Name:   "Boards of Canada",
		}, nil)

	w := doRequest(tm, http.MethodGet, "/api/v1/artists/"+artistID.String(), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteGameNotFound(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	gameID := uuid.New()
	tm.store.EXPECT().
		DeleteTrackedGame(gomock.Any(), gameID, testUserID).
		Return(domain.ErrEntityNotFound)

	w := doRequest(tm, http.MethodDelete, "/api/v1/games/"+gameID.String(), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListReleasesWithTypeFilter(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	releaseID := uuid.New()
	tm.store.EXPECT().
		ListReleases(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, filter store.ReleaseFilter) ([]schema.Release, error) {
			assert.Equal(t, testUserID, filter.UserID)
			require.NotNil(t, filter.Type)
			assert.Equal(t, domain.ReleaseTypeArtist, *filter.Type)
			assert.Equal(t, 10, filter.Limit)
			return []schema.Release{
				{ID: releaseID, Type: domain.ReleaseTypeArtist, UserID: testUserID, Title: "Random Access Memories"},
			}, nil
		})

	w := doRequest(tm, http.MethodGet, "/api/v1/releases?type=artist&limit=10", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), releaseID.String())
}

func TestListReleasesInvalidTypeRejected(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	w := doRequest(tm, http.MethodGet, "/api/v1/releases?type=podcast", nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "invalid type")
}

func TestDismissReleaseNotFound(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	releaseID := uuid.New()
	tm.store.EXPECT().
		DeleteRelease(gomock.Any(), releaseID, testUserID).
		Return(domain.ErrReleaseNotFound)

	w := doRequest(tm, http.MethodDelete, "/api/v1/releases/"+releaseID.String(), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetSettingsCreatesDefaults(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	settings := schema.DefaultNotificationSettings(testUserID)
	tm.store.EXPECT().
		GetOrCreateNotificationSettings(gomock.Any(), testUserID).
		Return(&settings, nil)

	w := doRequest(tm, http.MethodGet, "/api/v1/settings", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"email_enabled":true`)
	assert.Contains(t, w.Body.String(), `"frequency":"immediate"`)
}

func TestUpdateSettingsPartial(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	settings := schema.DefaultNotificationSettings(testUserID)
	tm.store.EXPECT().
		GetOrCreateNotificationSettings(gomock.Any(), testUserID).
		Return(&settings, nil)
	tm.store.EXPECT().
		UpdateNotificationSettings(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, s *schema.NotificationSettings) error {
			assert.False(t, s.EmailEnabled)
			assert.Equal(t, domain.FrequencyDisabled, s.Frequency)
			// Untouched fields keep their defaults
			assert.True(t, s.ArtistEnabled)
			assert.True(t, s.GameEnabled)
			return nil
		})

	w := doRequest(tm, http.MethodPut, "/api/v1/settings", gin.H{
		"email_enabled": false,
		"frequency":     "disabled",
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateSettingsInvalidFrequencyRejected(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	w := doRequest(tm, http.MethodPut, "/api/v1/settings", gin.H{
		"frequency": "hourly",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "invalid frequency")
}

func TestTriggerScanPublishesEvent(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now).Times(2)

	// A manual refresh sweeps the caller's expired releases first
	tm.store.EXPECT().
		DeleteExpiredReleasesForUser(gomock.Any(), testUserID, now).
		Return(int64(2), nil)

	tm.publisher.EXPECT().
		PublishScanRequested(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, event *domain.ScanRequested) error {
			assert.NotEmpty(t, event.EventID)
			assert.Equal(t, testUserID, event.UserID)
			assert.Nil(t, event.EntityID)
			assert.Equal(t, now, event.RequestedAt)
			return nil
		})

	w := doRequest(tm, http.MethodPost, "/api/v1/scan", nil)

	require.Equal(t, http.StatusAccepted, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"accepted"`)
}

func TestTriggerScanSweepFailureStillAccepted(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now).Times(2)

	tm.store.EXPECT().
		DeleteExpiredReleasesForUser(gomock.Any(), testUserID, now).
		Return(int64(0), errors.New("connection reset"))

	tm.publisher.EXPECT().
		PublishScanRequested(gomock.Any(), gomock.Any()).
		Return(nil)

	w := doRequest(tm, http.MethodPost, "/api/v1/scan", nil)

	require.Equal(t, http.StatusAccepted, w.Code)
}

func TestTriggerArtistScanScopedToEntity(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	artistID := uuid.New()
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	tm.store.EXPECT().
		GetTrackedArtist(gomock.Any(), artistID).
		Return(&schema.TrackedArtist{ID: artistID, UserID: testUserID, Name: "Autechre"}, nil)
	tm.clock.EXPECT().Now().Return(now)
	tm.publisher.EXPECT().
		PublishScanRequested(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, event *domain.ScanRequested) error {
			require.NotNil(t, event.EntityID)
			assert.Equal(t, artistID, *event.EntityID)
			require.NotNil(t, event.EntityType)
			assert.Equal(t, domain.ReleaseTypeArtist, *event.EntityType)
			return nil
		})

	w := doRequest(tm, http.MethodPost, "/api/v1/artists/"+artistID.String()+"/scan", nil)

	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestTriggerGameScanOtherUsersEntityRejected(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	gameID := uuid.New()
	tm.store.EXPECT().
		GetTrackedGame(gomock.Any(), gameID).
		Return(&schema.TrackedGame{ID: gameID, UserID: "someone-else", Name: "Hades II"}, nil)

	w := doRequest(tm, http.MethodPost, "/api/v1/games/"+gameID.String()+"/scan", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
