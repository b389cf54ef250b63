package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftwave/release-radar/internal/domain"
	"github.com/driftwave/release-radar/internal/store/schema"
)

// InitStoreFunc creates a fresh store for one test
type InitStoreFunc func(t *testing.T) Store

// RunStoreTests runs the full store test suite against any Store
// implementation
func RunStoreTests(t *testing.T, initStore InitStoreFunc) {
	t.Run("TrackedArtists", func(t *testing.T) { testTrackedArtists(t, initStore) })
	t.Run("TrackedGames", func(t *testing.T) { testTrackedGames(t, initStore) })
	t.Run("Releases", func(t *testing.T) { testReleases(t, initStore) })
	t.Run("ExpiredReleases", func(t *testing.T) { testExpiredReleases(t, initStore) })
	t.Run("NotificationSettings", func(t *testing.T) { testNotificationSettings(t, initStore) })
	t.Run("Users", func(t *testing.T) { testUsers(t, initStore) })
}

func strPtr(s string) *string {
	return &s
}

func testTrackedArtists(t *testing.T, initStore InitStoreFunc) {
	ctx := context.Background()

	t.Run("CreateAndGet", func(t *testing.T) {
		s := initStore(t)

		created, err := s.CreateTrackedArtist(ctx, CreateTrackedArtistInput{
			UserID:          "user-1",
			Name:            "Aphex Twin",
			Platform:        "spotify",
			SpotifyArtistID: strPtr("6kBDZFXuLrZgHnvmPu9NsG"),
		})
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, created.ID)

		got, err := s.GetTrackedArtist(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Aphex Twin", got.Name)
		assert.Equal(t, "user-1", got.UserID)
		require.NotNil(t, got.SpotifyArtistID)
		assert.Equal(t, "6kBDZFXuLrZgHnvmPu9NsG", *got.SpotifyArtistID)
		assert.Nil(t, got.DeezerArtistID)
		assert.Nil(t, got.LastChecked)
	})

	t.Run("GetNotFound", func(t *testing.T) {
		s := initStore(t)

		_, err := s.GetTrackedArtist(ctx, uuid.New())
		assert.ErrorIs(t, err, domain.ErrEntityNotFound)
	})

	t.Run("ListScopedToUser", func(t *testing.T) {
		s := initStore(t)

		for i := 0; i < 3; i++ {
			_, err := s.CreateTrackedArtist(ctx, CreateTrackedArtistInput{
				UserID: "user-1",
				Name:   fmt.Sprintf("Artist %d", i),
			})
			require.NoError(t, err)
		}
		_, err := s.CreateTrackedArtist(ctx, CreateTrackedArtistInput{
			UserID: "user-2",
			Name:   "Other Artist",
		})
		require.NoError(t, err)

		userID := "user-1"
		artists, err := s.ListTrackedArtists(ctx, TrackedEntityFilter{UserID: &userID})
		require.NoError(t, err)
		assert.Len(t, artists, 3)
	})

	t.Run("DeleteEnforcesOwnership", func(t *testing.T) {
		s := initStore(t)

		created, err := s.CreateTrackedArtist(ctx, CreateTrackedArtistInput{
			UserID: "user-1",
			Name:   "Burial",
		})
		require.NoError(t, err)

		err = s.DeleteTrackedArtist(ctx, created.ID, "user-2")
		assert.ErrorIs(t, err, domain.ErrEntityNotFound)

		err = s.DeleteTrackedArtist(ctx, created.ID, "user-1")
		require.NoError(t, err)

		_, err = s.GetTrackedArtist(ctx, created.ID)
		assert.ErrorIs(t, err, domain.ErrEntityNotFound)
	})

	t.Run("UpdateLastChecked", func(t *testing.T) {
		s := initStore(t)

		created, err := s.CreateTrackedArtist(ctx, CreateTrackedArtistInput{
			UserID: "user-1",
			Name:   "Four Tet",
		})
		require.NoError(t, err)

		checkedAt := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
		err = s.UpdateArtistLastChecked(ctx, created.ID, checkedAt)
		require.NoError(t, err)

		got, err := s.GetTrackedArtist(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, got.LastChecked)
		assert.WithinDuration(t, checkedAt, *got.LastChecked, time.Second)
	})
}

func testTrackedGames(t *testing.T, initStore InitStoreFunc) {
	ctx := context.Background()

	t.Run("CreateDefaultsToUnknownStatus", func(t *testing.T) {
		s := initStore(t)

		created, err := s.CreateTrackedGame(ctx, CreateTrackedGameInput{
			UserID:     "user-1",
			Name:       "Silksong",
			SteamAppID: strPtr("1030300"),
		})
		require.NoError(t, err)
		assert.Equal(t, domain.GameStatusUnknown, created.Status)

		got, err := s.GetTrackedGame(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.GameStatusUnknown, got.Status)
		assert.Nil(t, got.ReleaseDate)
	})

	t.Run("UpdateScanState", func(t *testing.T) {
		s := initStore(t)

		created, err := s.CreateTrackedGame(ctx, CreateTrackedGameInput{
			UserID: "user-1",
			Name:   "Hades II",
		})
		require.NoError(t, err)

		checkedAt := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
		releaseDate := time.Date(2026, 9, 24, 0, 0, 0, 0, time.UTC)
		err = s.UpdateGameScanState(ctx, created.ID, domain.GameStatusReleased, &releaseDate, checkedAt)
		require.NoError(t, err)

		got, err := s.GetTrackedGame(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.GameStatusReleased, got.Status)
		require.NotNil(t, got.ReleaseDate)
		assert.WithinDuration(t, releaseDate, *got.ReleaseDate, time.Second)
		require.NotNil(t, got.LastChecked)
	})

	t.Run("UpdateScanStateKeepsReleaseDateWhenNil", func(t *testing.T) {
		s := initStore(t)

		releaseDate := time.Date(2026, 9, 24, 0, 0, 0, 0, time.UTC)
		created, err := s.CreateTrackedGame(ctx, CreateTrackedGameInput{
			UserID:      "user-1",
			Name:        "Hades II",
			ReleaseDate: &releaseDate,
		})
		require.NoError(t, err)

		err = s.UpdateGameScanState(ctx, created.ID, domain.GameStatusComingSoon, nil, time.Now())
		require.NoError(t, err)

		got, err := s.GetTrackedGame(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, got.ReleaseDate)
		assert.WithinDuration(t, releaseDate, *got.ReleaseDate, time.Second)
	})

	t.Run("DeleteEnforcesOwnership", func(t *testing.T) {
		s := initStore(t)

		created, err := s.CreateTrackedGame(ctx, CreateTrackedGameInput{
			UserID: "user-1",
			Name:   "Factorio",
		})
		require.NoError(t, err)

		err = s.DeleteTrackedGame(ctx, created.ID, "user-2")
		assert.ErrorIs(t, err, domain.ErrEntityNotFound)

		err = s.DeleteTrackedGame(ctx, created.ID, "user-1")
		require.NoError(t, err)
	})
}

func makeRelease(sourceID uuid.UUID, userID, title, hash string, expiresAt time.Time) schema.Release {
	return schema.Release{
		Type:       domain.ReleaseTypeArtist,
		SourceID:   sourceID,
		UserID:     userID,
		Title:      title,
		UniqueHash: hash,
		DetectedAt: time.Now().UTC(),
		ExpiresAt:  expiresAt,
	}
}

// testHash builds a distinct 64-char hash for test fixtures
func testHash(seed byte) string {
	b := make([]byte, 64)
	for i := range b {
		b[i] = 'a' + (seed+byte(i))%16
	}
	return string(b)
}

func testReleases(t *testing.T, initStore InitStoreFunc) {
	ctx := context.Background()
	expiry := time.Now().UTC().Add(7 * 24 * time.Hour)

	t.Run("BulkInsertSkipsDuplicates", func(t *testing.T) {
		s := initStore(t)
		sourceID := uuid.New()

		first, err := s.CreateReleases(ctx, []schema.Release{
			makeRelease(sourceID, "user-1", "Album One", testHash(0), expiry),
			makeRelease(sourceID, "user-1", "Album Two", testHash(1), expiry),
		})
		require.NoError(t, err)
		assert.Len(t, first, 2)

		// Re-inserting the same items plus one new one only inserts the new one
		second, err := s.CreateReleases(ctx, []schema.Release{
			makeRelease(sourceID, "user-1", "Album One", testHash(0), expiry),
			makeRelease(sourceID, "user-1", "Album Three", testHash(2), expiry),
		})
		require.NoError(t, err)
		require.Len(t, second, 1)
		assert.Equal(t, "Album Three", second[0].Title)

		all, err := s.ListReleases(ctx, ReleaseFilter{UserID: "user-1"})
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("SameHashDifferentSourceInsertsBoth", func(t *testing.T) {
		s := initStore(t)

		inserted, err := s.CreateReleases(ctx, []schema.Release{
			makeRelease(uuid.New(), "user-1", "Album", testHash(3), expiry),
			makeRelease(uuid.New(), "user-1", "Album", testHash(3), expiry),
		})
		require.NoError(t, err)
		assert.Len(t, inserted, 2)
	})

	t.Run("ReleaseExists", func(t *testing.T) {
		s := initStore(t)
		sourceID := uuid.New()

		_, err := s.CreateReleases(ctx, []schema.Release{
			makeRelease(sourceID, "user-1", "Album", testHash(4), expiry),
		})
		require.NoError(t, err)

		exists, err := s.ReleaseExists(ctx, sourceID, domain.ReleaseTypeArtist, testHash(4))
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = s.ReleaseExists(ctx, sourceID, domain.ReleaseTypeGame, testHash(4))
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("ListNewestFirstWithTypeFilter", func(t *testing.T) {
		s := initStore(t)
		now := time.Now().UTC()

		older := makeRelease(uuid.New(), "user-1", "Older", testHash(5), expiry)
		older.DetectedAt = now.Add(-time.Hour)
		newer := makeRelease(uuid.New(), "user-1", "Newer", testHash(6), expiry)
		newer.DetectedAt = now
		gameRelease := makeRelease(uuid.New(), "user-1", "Patch 1.2", testHash(7), expiry)
		gameRelease.Type = domain.ReleaseTypeGame

		_, err := s.CreateReleases(ctx, []schema.Release{older, newer, gameRelease})
		require.NoError(t, err)

		artistType := domain.ReleaseTypeArtist
		releases, err := s.ListReleases(ctx, ReleaseFilter{UserID: "user-1", Type: &artistType})
		require.NoError(t, err)
		require.Len(t, releases, 2)
		assert.Equal(t, "Newer", releases[0].Title)
		assert.Equal(t, "Older", releases[1].Title)
	})

	t.Run("ListHonorsLimitAndOffset", func(t *testing.T) {
		s := initStore(t)
		now := time.Now().UTC()

		var staged []schema.Release
		for i := 0; i < 5; i++ {
			r := makeRelease(uuid.New(), "user-1", fmt.Sprintf("Release %d", i), testHash(byte(8+i)), expiry)
			r.DetectedAt = now.Add(time.Duration(i) * time.Minute)
			staged = append(staged, r)
		}
		_, err := s.CreateReleases(ctx, staged)
		require.NoError(t, err)

		page, err := s.ListReleases(ctx, ReleaseFilter{UserID: "user-1", Limit: 2, Offset: 2})
		require.NoError(t, err)
		require.Len(t, page, 2)
		assert.Equal(t, "Release 2", page[0].Title)
		assert.Equal(t, "Release 1", page[1].Title)
	})

	t.Run("DismissEnforcesOwnership", func(t *testing.T) {
		s := initStore(t)

		inserted, err := s.CreateReleases(ctx, []schema.Release{
			makeRelease(uuid.New(), "user-1", "Album", testHash(13), expiry),
		})
		require.NoError(t, err)
		require.Len(t, inserted, 1)

		err = s.DeleteRelease(ctx, inserted[0].ID, "user-2")
		assert.ErrorIs(t, err, domain.ErrReleaseNotFound)

		err = s.DeleteRelease(ctx, inserted[0].ID, "user-1")
		require.NoError(t, err)

		err = s.DeleteRelease(ctx, inserted[0].ID, "user-1")
		assert.ErrorIs(t, err, domain.ErrReleaseNotFound)
	})
}

func testExpiredReleases(t *testing.T, initStore InitStoreFunc) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("DeletesOnlyExpired", func(t *testing.T) {
		s := initStore(t)

		_, err := s.CreateReleases(ctx, []schema.Release{
			makeRelease(uuid.New(), "user-1", "Expired", testHash(0), now.Add(-time.Hour)),
			makeRelease(uuid.New(), "user-1", "Live", testHash(1), now.Add(time.Hour)),
		})
		require.NoError(t, err)

		deleted, err := s.DeleteExpiredReleases(ctx, now, 100)
		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted)

		remaining, err := s.ListReleases(ctx, ReleaseFilter{UserID: "user-1"})
		require.NoError(t, err)
		require.Len(t, remaining, 1)
		assert.Equal(t, "Live", remaining[0].Title)
	})

	t.Run("HonorsBatchLimit", func(t *testing.T) {
		s := initStore(t)

		var staged []schema.Release
		for i := 0; i < 5; i++ {
			staged = append(staged, makeRelease(uuid.New(), "user-1",
				fmt.Sprintf("Expired %d", i), testHash(byte(2+i)), now.Add(-time.Hour)))
		}
		_, err := s.CreateReleases(ctx, staged)
		require.NoError(t, err)

		deleted, err := s.DeleteExpiredReleases(ctx, now, 3)
		require.NoError(t, err)
		assert.Equal(t, int64(3), deleted)

		deleted, err = s.DeleteExpiredReleases(ctx, now, 3)
		require.NoError(t, err)
		assert.Equal(t, int64(2), deleted)
	})

	t.Run("ScopedToUser", func(t *testing.T) {
		s := initStore(t)

		_, err := s.CreateReleases(ctx, []schema.Release{
			makeRelease(uuid.New(), "user-1", "Mine", testHash(7), now.Add(-time.Hour)),
			makeRelease(uuid.New(), "user-2", "Theirs", testHash(8), now.Add(-time.Hour)),
		})
		require.NoError(t, err)

		deleted, err := s.DeleteExpiredReleasesForUser(ctx, "user-1", now)
		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted)

		theirs, err := s.ListReleases(ctx, ReleaseFilter{UserID: "user-2"})
		require.NoError(t, err)
		assert.Len(t, theirs, 1)
	})
}

func testNotificationSettings(t *testing.T, initStore InitStoreFunc) {
	ctx := context.Background()

	t.Run("FirstAccessCreatesDefaults", func(t *testing.T) {
		s := initStore(t)

		settings, err := s.GetOrCreateNotificationSettings(ctx, "user-1")
		require.NoError(t, err)
		assert.True(t, settings.EmailEnabled)
		assert.Equal(t, domain.FrequencyImmediate, settings.Frequency)
		assert.True(t, settings.ArtistEnabled)
		assert.True(t, settings.GameEnabled)
	})

	t.Run("RepeatAccessReturnsSameRow", func(t *testing.T) {
		s := initStore(t)

		first, err := s.GetOrCreateNotificationSettings(ctx, "user-1")
		require.NoError(t, err)

		first.EmailEnabled = false
		first.Frequency = domain.FrequencyDaily
		require.NoError(t, s.UpdateNotificationSettings(ctx, first))

		// A second get-or-create must not reset the stored values
		again, err := s.GetOrCreateNotificationSettings(ctx, "user-1")
		require.NoError(t, err)
		assert.False(t, again.EmailEnabled)
		assert.Equal(t, domain.FrequencyDaily, again.Frequency)
	})
}

func testUsers(t *testing.T, initStore InitStoreFunc) {
	ctx := context.Background()

	t.Run("UpsertAndGet", func(t *testing.T) {
		s := initStore(t)

		err := s.UpsertUser(ctx, &schema.User{
			ID:          "user-1",
			Email:       "one@example.com",
			DisplayName: "One",
		})
		require.NoError(t, err)

		got, err := s.GetUserByID(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, "one@example.com", got.Email)

		// Upserting again updates the mirror in place
		err = s.UpsertUser(ctx, &schema.User{
			ID:          "user-1",
			Email:       "renamed@example.com",
			DisplayName: "Renamed",
		})
		require.NoError(t, err)

		got, err = s.GetUserByID(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, "renamed@example.com", got.Email)
		assert.Equal(t, "Renamed", got.DisplayName)
	})

	t.Run("GetNotFound", func(t *testing.T) {
		s := initStore(t)

		_, err := s.GetUserByID(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}
