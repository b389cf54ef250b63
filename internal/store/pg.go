package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/driftwave/release-radar/internal/domain"
	"github.com/driftwave/release-radar/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to reasonable defaults.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// CreateTrackedArtist adds an artist to a user's tracked list
func (s *pgStore) CreateTrackedArtist(ctx context.Context, input CreateTrackedArtistInput) (*schema.TrackedArtist, error) {
	artist := schema.TrackedArtist{
		ID:              uuid.New(),
		UserID:          input.UserID,
		Name:            input.Name,
		Platform:        input.Platform,
		URL:             input.URL,
		SpotifyArtistID: input.SpotifyArtistID,
		DeezerArtistID:  input.DeezerArtistID,
	}

	if err := s.db.WithContext(ctx).Create(&artist).Error; err != nil {
		return nil, fmt.Errorf("failed to create tracked artist: %w", err)
	}

	return &artist, nil
}

// GetTrackedArtist retrieves one tracked artist by ID
func (s *pgStore) GetTrackedArtist(ctx context.Context, id uuid.UUID) (*schema.TrackedArtist, error) {
	var artist schema.TrackedArtist
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&artist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEntityNotFound
		}
		return nil, fmt.Errorf("failed to get tracked artist: %w", err)
	}

	return &artist, nil
}

// ListTrackedArtists retrieves tracked artists, optionally scoped by the filter
func (s *pgStore) ListTrackedArtists(ctx context.Context, filter TrackedEntityFilter) ([]schema.TrackedArtist, error) {
	query := s.db.WithContext(ctx).Model(&schema.TrackedArtist{})
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.EntityID != nil {
		query = query.Where("id = ?", *filter.EntityID)
	}

	var artists []schema.TrackedArtist
	if err := query.Order("created_at ASC").Find(&artists).Error; err != nil {
		return nil, fmt.Errorf("failed to list tracked artists: %w", err)
	}

	return artists, nil
}

// DeleteTrackedArtist removes a tracked artist owned by the given user
func (s *pgStore) DeleteTrackedArtist(ctx context.Context, id uuid.UUID, userID string) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&schema.TrackedArtist{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete tracked artist: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrEntityNotFound
	}

	return nil
}

// UpdateArtistLastChecked records when the scanner last processed an artist
func (s *pgStore) UpdateArtistLastChecked(ctx context.Context, id uuid.UUID, checkedAt time.Time) error {
	err := s.db.WithContext(ctx).
		Model(&schema.TrackedArtist{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"last_checked": checkedAt,
			"updated_at":   checkedAt,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update artist last checked: %w", err)
	}

	return nil
}

// CreateTrackedGame adds a game to a user's tracked list
func (s *pgStore) CreateTrackedGame(ctx context.Context, input CreateTrackedGameInput) (*schema.TrackedGame, error) {
	status := input.Status
	if status == "" {
		status = domain.GameStatusUnknown
	}

	game := schema.TrackedGame{
		ID:          uuid.New(),
		UserID:      input.UserID,
		Name:        input.Name,
		Platform:    input.Platform,
		URL:         input.URL,
		SteamAppID:  input.SteamAppID,
		RAWGSlug:    input.RAWGSlug,
		Status:      status,
		ReleaseDate: input.ReleaseDate,
	}

	if err := s.db.WithContext(ctx).Create(&game).Error; err != nil {
		return nil, fmt.Errorf("failed to create tracked game: %w", err)
	}

	return &game, nil
}

// GetTrackedGame retrieves one tracked game by ID
func (s *pgStore) GetTrackedGame(ctx context.Context, id uuid.UUID) (*schema.TrackedGame, error) {
	var game schema.TrackedGame
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&game).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEntityNotFound
		}
		return nil, fmt.Errorf("failed to get tracked game: %w", err)
	}

	return &game, nil
}

// ListTrackedGames retrieves tracked games, optionally scoped by the filter
func (s *pgStore) ListTrackedGames(ctx context.Context, filter TrackedEntityFilter) ([]schema.TrackedGame, error) {
	query := s.db.WithContext(ctx).Model(&schema.TrackedGame{})
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.EntityID != nil {
		query = query.Where("id = ?", *filter.EntityID)
	}

	var games []schema.TrackedGame
	if err := query.Order("created_at ASC").Find(&games).Error; err != nil {
		return nil, fmt.Errorf("failed to list tracked games: %w", err)
	}

	return games, nil
}

// DeleteTrackedGame removes a tracked game owned by the given user
func (s *pgStore) DeleteTrackedGame(ctx context.Context, id uuid.UUID, userID string) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&schema.TrackedGame{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete tracked game: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrEntityNotFound
	}

	return nil
}

// UpdateGameScanState records the provider-reported status/date and the
// last-checked timestamp after a scan
func (s *pgStore) UpdateGameScanState(ctx context.Context, id uuid.UUID, status domain.GameStatus, releaseDate *time.Time, checkedAt time.Time) error {
	updates := map[string]interface{}{
		"status":       status,
		"last_checked": checkedAt,
		"updated_at":   checkedAt,
	}
	if releaseDate != nil {
		updates["release_date"] = *releaseDate
	}

	err := s.db.WithContext(ctx).
		Model(&schema.TrackedGame{}).
		Where("id = ?", id).
		Updates(updates).Error
	if err != nil {
		return fmt.Errorf("failed to update game scan state: %w", err)
	}

	return nil
}

// CreateReleases bulk-inserts staged releases. The dedup unique index makes
// the insert idempotent: conflicting rows are skipped via ON CONFLICT DO
// NOTHING, and only rows actually inserted are returned.
func (s *pgStore) CreateReleases(ctx context.Context, releases []schema.Release) ([]schema.Release, error) {
	if len(releases) == 0 {
		return []schema.Release{}, nil
	}

	// Assign IDs up front so we can query back exactly which rows survived
	// the conflict clause
	ids := make([]uuid.UUID, 0, len(releases))
	for i := range releases {
		if releases[i].ID == uuid.Nil {
			releases[i].ID = uuid.New()
		}
		ids = append(ids, releases[i].ID)
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&releases).Error
	if err != nil {
		return nil, fmt.Errorf("failed to bulk insert releases: %w", err)
	}

	var inserted []schema.Release
	err = s.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("detected_at ASC").
		Find(&inserted).Error
	if err != nil {
		return nil, fmt.Errorf("failed to read back inserted releases: %w", err)
	}

	return inserted, nil
}

// ReleaseExists checks whether a release with the given dedup hash is already
// recorded for the source entity
func (s *pgStore) ReleaseExists(ctx context.Context, sourceID uuid.UUID, releaseType domain.ReleaseType, uniqueHash string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.Release{}).
		Where("source_id = ? AND type = ? AND unique_hash = ?", sourceID, releaseType, uniqueHash).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check release existence: %w", err)
	}

	return count > 0, nil
}

// ListReleases retrieves a user's releases, newest first
func (s *pgStore) ListReleases(ctx context.Context, filter ReleaseFilter) ([]schema.Release, error) {
	query := s.db.WithContext(ctx).
		Model(&schema.Release{}).
		Where("user_id = ?", filter.UserID)
	if filter.Type != nil {
		query = query.Where("type = ?", *filter.Type)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var releases []schema.Release
	if err := query.Order("detected_at DESC").Find(&releases).Error; err != nil {
		return nil, fmt.Errorf("failed to list releases: %w", err)
	}

	return releases, nil
}

// DeleteRelease removes a single release owned by the given user (dismissal)
func (s *pgStore) DeleteRelease(ctx context.Context, id uuid.UUID, userID string) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&schema.Release{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete release: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrReleaseNotFound
	}

	return nil
}

// DeleteExpiredReleases hard-deletes up to limit releases whose expiry has
// passed and returns the number deleted
func (s *pgStore) DeleteExpiredReleases(ctx context.Context, before time.Time, limit int) (int64, error) {
	result := s.db.WithContext(ctx).Exec(
		"DELETE FROM releases WHERE id IN (SELECT id FROM releases WHERE expires_at < ? LIMIT ?)",
		before, limit,
	)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete expired releases: %w", result.Error)
	}

	return result.RowsAffected, nil
}

// DeleteExpiredReleasesForUser hard-deletes one user's expired releases
func (s *pgStore) DeleteExpiredReleasesForUser(ctx context.Context, userID string, before time.Time) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND expires_at < ?", userID, before).
		Delete(&schema.Release{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete expired releases for user: %w", result.Error)
	}

	return result.RowsAffected, nil
}

// GetOrCreateNotificationSettings returns a user's settings, creating the row
// with defaults if absent. Insert-or-ignore keeps the operation idempotent
// under concurrent first access.
func (s *pgStore) GetOrCreateNotificationSettings(ctx context.Context, userID string) (*schema.NotificationSettings, error) {
	defaults := schema.DefaultNotificationSettings(userID)
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&defaults).Error
	if err != nil {
		return nil, fmt.Errorf("failed to ensure notification settings: %w", err)
	}

	var settings schema.NotificationSettings
	err = s.db.WithContext(ctx).Where("user_id = ?", userID).First(&settings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get notification settings: %w", err)
	}

	return &settings, nil
}

// UpdateNotificationSettings persists a user's settings
func (s *pgStore) UpdateNotificationSettings(ctx context.Context, settings *schema.NotificationSettings) error {
	err := s.db.WithContext(ctx).
		Model(&schema.NotificationSettings{}).
		Where("user_id = ?", settings.UserID).
		Updates(map[string]interface{}{
			"email_enabled":  settings.EmailEnabled,
			"frequency":      settings.Frequency,
			"artist_enabled": settings.ArtistEnabled,
			"game_enabled":   settings.GameEnabled,
			"updated_at":     time.Now(),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update notification settings: %w", err)
	}

	return nil
}

// GetUserByID resolves a user record by ID
func (s *pgStore) GetUserByID(ctx context.Context, userID string) (*schema.User, error) {
	var user schema.User
	err := s.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// UpsertUser mirrors an auth-provider account record
func (s *pgStore) UpsertUser(ctx context.Context, user *schema.User) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"email", "display_name", "updated_at"}),
		}).
		Create(user).Error
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}

	return nil
}
