// Package scanner walks tracked entities, asks providers for new material
// and stages releases for storage and notification.
package scanner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/driftwave/release-radar/internal/adapter"
	"github.com/driftwave/release-radar/internal/domain"
	"github.com/driftwave/release-radar/internal/logger"
	"github.com/driftwave/release-radar/internal/messaging"
	"github.com/driftwave/release-radar/internal/providers/games"
	"github.com/driftwave/release-radar/internal/providers/music"
	"github.com/driftwave/release-radar/internal/store"
	"github.com/driftwave/release-radar/internal/store/schema"
)

// Config holds the scan tuning knobs
type Config struct {
	// EntityDelay is the pause between scanned entities
	EntityDelay time.Duration
	// ArtistWindow bounds how far back artist releases count as new
	ArtistWindow time.Duration
	// PatchNotesWindow bounds how far back game news counts as new
	PatchNotesWindow time.Duration
	// AdditionsWindow bounds how far back game DLC counts as new
	AdditionsWindow time.Duration
	// ReleaseTTL is how long an inserted release lives before expiry
	ReleaseTTL time.Duration
}

// Filter restricts a scan run to one user or one entity
type Filter struct {
	// UserID scopes the run to a single user's entities when set
	UserID string
	// EntityID scopes the run to one entity; EntityType must accompany it
	EntityID   *uuid.UUID
	EntityType *domain.ReleaseType
}

// Result summarizes one scan run
type Result struct {
	RunID     string
	Processed int
	Failed    int
	Inserted  int
	Releases  []domain.ReleaseEvent
}

// Scanner defines the interface for running release scans
//
//go:generate mockgen -source=scanner.go -destination=../mocks/scanner.go -package=mocks -mock_names=Scanner=MockScanner
type Scanner interface {
	// Scan walks the tracked entities matched by filter, stages detected
	// releases and bulk-inserts them. Per-entity provider failures are
	// logged and skipped; the run keeps going.
	Scan(ctx context.Context, filter Filter) (*Result, error)
}

type scanner struct {
	store          store.Store
	musicProviders []music.Provider
	gameProviders  []games.Provider
	publisher      messaging.Publisher
	clock          adapter.Clock
	cfg            Config
}

// New creates a scanner. Game providers must be passed in confidence order:
// the first provider returning a definite status wins a status merge.
func New(
	st store.Store,
	musicProviders []music.Provider,
	gameProviders []games.Provider,
	publisher messaging.Publisher,
	clock adapter.Clock,
	cfg Config,
) Scanner {
	return &scanner{
		store:          st,
		musicProviders: musicProviders,
		gameProviders:  gameProviders,
		publisher:      publisher,
		clock:          clock,
		cfg:            cfg,
	}
}

// Scan walks the tracked entities matched by filter
func (s *scanner) Scan(ctx context.Context, filter Filter) (*Result, error) {
	runID := ulid.Make().String()
	now := s.clock.Now().UTC()

	artists, gamesList, err := s.collectEntities(ctx, filter)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Scan run started",
		zap.String("run_id", runID),
		zap.Int("artists", len(artists)),
		zap.Int("games", len(gamesList)),
	)

	result := &Result{RunID: runID}
	var staged []schema.Release
	first := true

	for i := range artists {
		if err := s.throttle(ctx, &first); err != nil {
			return nil, err
		}

		artist := &artists[i]
		releases, err := s.scanArtist(ctx, now, artist)
		if err != nil {
			s.reportEntityFailure(ctx, runID, "artist", artist.ID, artist.Name, err)
			result.Failed++
			continue
		}

		staged = append(staged, releases...)
		result.Processed++

		if err := s.store.UpdateArtistLastChecked(ctx, artist.ID, now); err != nil {
			logger.WarnCtx(ctx, "failed to update artist last_checked",
				zap.String("artist_id", artist.ID.String()),
				zap.Error(err),
			)
		}
	}

	for i := range gamesList {
		if err := s.throttle(ctx, &first); err != nil {
			return nil, err
		}

		game := &gamesList[i]
		releases, status, releaseDate, err := s.scanGame(ctx, now, game)
		if err != nil {
			s.reportEntityFailure(ctx, runID, "game", game.ID, game.Name, err)
			result.Failed++
			continue
		}

		staged = append(staged, releases...)
		result.Processed++

		if err := s.store.UpdateGameScanState(ctx, game.ID, status, releaseDate, now); err != nil {
			logger.WarnCtx(ctx, "failed to update game scan state",
				zap.String("game_id", game.ID.String()),
				zap.Error(err),
			)
		}
	}

	inserted, err := s.persist(ctx, staged)
	if err != nil {
		return nil, fmt.Errorf("failed to persist releases for run %s: %w", runID, err)
	}

	result.Inserted = len(inserted)
	result.Releases = toReleaseEvents(inserted)

	logger.InfoCtx(ctx, "Scan run finished",
		zap.String("run_id", runID),
		zap.Int("processed", result.Processed),
		zap.Int("failed", result.Failed),
		zap.Int("staged", len(staged)),
		zap.Int("inserted", result.Inserted),
	)

	if result.Inserted > 0 && s.publisher != nil {
		event := &domain.ScanCompleted{
			EventID:     ulid.Make().String(),
			RunID:       runID,
			Processed:   result.Processed,
			Releases:    result.Releases,
			CompletedAt: s.clock.Now().UTC(),
		}
		if err := s.publisher.PublishScanCompleted(ctx, event); err != nil {
			// Releases are stored; only the notification fan-out is lost
			logger.ErrorCtx(ctx, fmt.Errorf("failed to publish scan completion: %w", err),
				zap.String("run_id", runID),
			)
		}
	}

	return result, nil
}

// collectEntities resolves the filter to the concrete artists and games to scan
func (s *scanner) collectEntities(ctx context.Context, filter Filter) ([]schema.TrackedArtist, []schema.TrackedGame, error) {
	if filter.EntityID != nil {
		if filter.EntityType == nil {
			return nil, nil, fmt.Errorf("entity-scoped scan requires an entity type")
		}

		switch *filter.EntityType {
		case domain.ReleaseTypeArtist:
			artist, err := s.store.GetTrackedArtist(ctx, *filter.EntityID)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to load tracked artist: %w", err)
			}
			return []schema.TrackedArtist{*artist}, nil, nil
		case domain.ReleaseTypeGame:
			game, err := s.store.GetTrackedGame(ctx, *filter.EntityID)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to load tracked game: %w", err)
			}
			return nil, []schema.TrackedGame{*game}, nil
		default:
			return nil, nil, fmt.Errorf("unknown entity type %q", *filter.EntityType)
		}
	}

	entityFilter := store.TrackedEntityFilter{}
	if filter.UserID != "" {
		entityFilter.UserID = &filter.UserID
	}

	artists, err := s.store.ListTrackedArtists(ctx, entityFilter)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list tracked artists: %w", err)
	}

	gamesList, err := s.store.ListTrackedGames(ctx, entityFilter)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list tracked games: %w", err)
	}

	return artists, gamesList, nil
}

// throttle pauses between entities so a large library does not burst
// against the providers. The first entity is not delayed.
func (s *scanner) throttle(ctx context.Context, first *bool) error {
	if *first {
		*first = false
		return nil
	}
	if s.cfg.EntityDelay <= 0 {
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.clock.After(s.cfg.EntityDelay):
		return nil
	}
}

// scanArtist queries the artist's music provider for releases inside the
// recency window
func (s *scanner) scanArtist(ctx context.Context, now time.Time, artist *schema.TrackedArtist) ([]schema.Release, error) {
	provider, providerArtistID, err := s.resolveMusicProvider(ctx, artist)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		// Nothing queryable; not an error, the entity is just inert
		logger.DebugCtx(ctx, "artist has no usable provider, skipping",
			zap.String("artist_id", artist.ID.String()),
			zap.String("name", artist.Name),
		)
		return nil, nil
	}

	since := now.Add(-s.cfg.ArtistWindow)
	found, err := provider.GetRecentReleases(ctx, providerArtistID, since)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", provider.Name(), err)
	}

	releases := make([]schema.Release, 0, len(found))
	for _, r := range found {
		description := fmt.Sprintf("New %s from %s", recordTypeLabel(r.RecordType), artist.Name)
		release := schema.Release{
			ID:          uuid.New(),
			Type:        domain.ReleaseTypeArtist,
			SourceID:    artist.ID,
			UserID:      artist.UserID,
			Title:       r.Title,
			Description: &description,
			ImageURL:    r.ImageURL,
			UniqueHash:  ComputeHash(artist.ID, domain.ReleaseTypeArtist, r.Title),
			Metadata: releaseMetadata(map[string]interface{}{
				"provider":    string(provider.Name()),
				"provider_id": r.ID,
				"record_type": r.RecordType,
				"released_at": r.ReleasedAt,
			}),
			DetectedAt: now,
			ExpiresAt:  now.Add(s.cfg.ReleaseTTL),
		}
		if r.URL != "" {
			u := r.URL
			release.PlatformURL = &u
		}
		releases = append(releases, release)
	}

	return releases, nil
}

// resolveMusicProvider picks the provider matching the artist's stored IDs,
// falling back to a name search on the first enabled provider
func (s *scanner) resolveMusicProvider(ctx context.Context, artist *schema.TrackedArtist) (music.Provider, string, error) {
	for _, p := range s.musicProviders {
		if !p.Enabled() {
			continue
		}
		switch p.Name() {
		case domain.ProviderSpotify:
			if artist.SpotifyArtistID != nil {
				return p, *artist.SpotifyArtistID, nil
			}
		case domain.ProviderDeezer:
			if artist.DeezerArtistID != nil {
				return p, *artist.DeezerArtistID, nil
			}
		}
	}

	// No stored ID matched an enabled provider; resolve by name
	for _, p := range s.musicProviders {
		if !p.Enabled() {
			continue
		}
		found, err := p.SearchArtist(ctx, artist.Name)
		if err != nil {
			if errors.Is(err, domain.ErrEntityNotFound) {
				continue
			}
			return nil, "", fmt.Errorf("%s: %w", p.Name(), err)
		}
		return p, found.ID, nil
	}

	return nil, "", nil
}

// scanGame merges provider statuses and collects recent updates, returning
// staged releases plus the merged status and release date to persist
func (s *scanner) scanGame(ctx context.Context, now time.Time, game *schema.TrackedGame) ([]schema.Release, domain.GameStatus, *time.Time, error) {
	var releases []schema.Release

	mergedStatus := game.Status
	releaseDate := game.ReleaseDate
	statusResolved := false
	queried := false

	for _, p := range s.gameProviders {
		if !p.Enabled() {
			continue
		}
		gameID, ok := providerGameID(p.Name(), game)
		if !ok {
			continue
		}
		queried = true

		if !statusResolved {
			status, err := p.GetStatus(ctx, gameID)
			if err != nil {
				if errors.Is(err, domain.ErrEntityNotFound) {
					continue
				}
				return nil, "", nil, fmt.Errorf("%s: %w", p.Name(), err)
			}

			// A definite answer from the highest-confidence provider that
			// has one settles the merge; unknown never overwrites definite
			if status.Status.Definite() {
				mergedStatus = status.Status
				statusResolved = true
				if status.ReleaseDate != nil {
					releaseDate = status.ReleaseDate
				}
			}
		}

		window := s.cfg.PatchNotesWindow
		if p.Name() == domain.ProviderRAWG {
			window = s.cfg.AdditionsWindow
		}

		updates, err := p.GetRecentUpdates(ctx, gameID, now.Add(-window))
		if err != nil {
			return nil, "", nil, fmt.Errorf("%s: %w", p.Name(), err)
		}

		for _, u := range updates {
			releases = append(releases, s.stageGameUpdate(now, game, p.Name(), u))
		}
	}

	if !queried {
		logger.DebugCtx(ctx, "game has no usable provider, skipping",
			zap.String("game_id", game.ID.String()),
			zap.String("name", game.Name),
		)
	}

	// A definite status transition is itself a release worth surfacing
	if statusResolved && mergedStatus != game.Status {
		releases = append(releases, s.stageStatusChange(now, game, mergedStatus))
	}

	return releases, mergedStatus, releaseDate, nil
}

func (s *scanner) stageGameUpdate(now time.Time, game *schema.TrackedGame, provider domain.ProviderName, u games.Update) schema.Release {
	release := schema.Release{
		ID:         uuid.New(),
		Type:       domain.ReleaseTypeGame,
		SourceID:   game.ID,
		UserID:     game.UserID,
		Title:      u.Title,
		UniqueHash: ComputeHash(game.ID, domain.ReleaseTypeGame, u.Title),
		Metadata: releaseMetadata(map[string]interface{}{
			"provider":     string(provider),
			"provider_id":  u.ID,
			"kind":         string(u.Kind),
			"published_at": u.PublishedAt,
		}),
		DetectedAt: now,
		ExpiresAt:  now.Add(s.cfg.ReleaseTTL),
	}

	var description string
	switch u.Kind {
	case games.UpdateKindAddition:
		description = fmt.Sprintf("New content for %s", game.Name)
	default:
		description = fmt.Sprintf("Update for %s", game.Name)
	}
	if u.Body != "" {
		description = u.Body
	}
	release.Description = &description

	if u.URL != "" {
		url := u.URL
		release.PlatformURL = &url
	}

	return release
}

func (s *scanner) stageStatusChange(now time.Time, game *schema.TrackedGame, status domain.GameStatus) schema.Release {
	title := statusChangeTitle(game.Name, status)
	description := fmt.Sprintf("Status changed from %s to %s", game.Status, status)

	release := schema.Release{
		ID:          uuid.New(),
		Type:        domain.ReleaseTypeGame,
		SourceID:    game.ID,
		UserID:      game.UserID,
		Title:       title,
		Description: &description,
		UniqueHash:  ComputeHash(game.ID, domain.ReleaseTypeGame, title),
		Metadata: releaseMetadata(map[string]interface{}{
			"previous_status": string(game.Status),
			"new_status":      string(status),
		}),
		DetectedAt: now,
		ExpiresAt:  now.Add(s.cfg.ReleaseTTL),
	}
	if game.URL != "" {
		url := game.URL
		release.PlatformURL = &url
	}

	return release
}

// persist bulk-inserts staged releases, retrying transient database errors
func (s *scanner) persist(ctx context.Context, staged []schema.Release) ([]schema.Release, error) {
	if len(staged) == 0 {
		return nil, nil
	}

	var inserted []schema.Release
	operation := func() error {
		var err error
		inserted, err = s.store.CreateReleases(ctx, staged)
		return err
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 1 * time.Second
	b.MaxInterval = 15 * time.Second
	b.MaxElapsedTime = 2 * time.Minute

	notify := func(err error, next time.Duration) {
		logger.WarnCtx(ctx, "release insert failed, retrying",
			zap.Duration("next_attempt_in", next),
			zap.Error(err),
		)
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(b, ctx), notify); err != nil {
		return nil, err
	}

	return inserted, nil
}

func (s *scanner) reportEntityFailure(ctx context.Context, runID string, kind string, id uuid.UUID, name string, err error) {
	if domain.IsRateLimited(err) {
		logger.WarnCtx(ctx, "provider rate limited, skipping entity",
			zap.String("run_id", runID),
			zap.String("kind", kind),
			zap.String("entity_id", id.String()),
			zap.String("name", name),
			zap.Error(err),
		)
		return
	}

	logger.ErrorCtx(ctx, fmt.Errorf("failed to scan entity: %w", err),
		zap.String("run_id", runID),
		zap.String("kind", kind),
		zap.String("entity_id", id.String()),
		zap.String("name", name),
	)
}

func providerGameID(name domain.ProviderName, game *schema.TrackedGame) (string, bool) {
	switch name {
	case domain.ProviderSteam:
		if game.SteamAppID != nil {
			return *game.SteamAppID, true
		}
	case domain.ProviderRAWG:
		if game.RAWGSlug != nil {
			return *game.RAWGSlug, true
		}
	}
	return "", false
}

// releaseMetadata marshals provider context attached to a staged release.
// Metadata is informational only, so a marshal failure yields a null column
// rather than failing the scan.
func releaseMetadata(fields map[string]interface{}) datatypes.JSON {
	data, err := json.Marshal(fields)
	if err != nil {
		return nil
	}
	return datatypes.JSON(data)
}

func statusChangeTitle(name string, status domain.GameStatus) string {
	switch status {
	case domain.GameStatusReleased:
		return fmt.Sprintf("%s is out now", name)
	case domain.GameStatusEarlyAccess:
		return fmt.Sprintf("%s entered early access", name)
	case domain.GameStatusComingSoon:
		return fmt.Sprintf("%s is coming soon", name)
	}
	return fmt.Sprintf("%s status update", name)
}

func recordTypeLabel(recordType string) string {
	switch recordType {
	case "single":
		return "single"
	case "ep":
		return "EP"
	case "compilation":
		return "compilation"
	default:
		return "album"
	}
}

func toReleaseEvents(rows []schema.Release) []domain.ReleaseEvent {
	if len(rows) == 0 {
		return nil
	}

	events := make([]domain.ReleaseEvent, 0, len(rows))
	for _, r := range rows {
		events = append(events, domain.ReleaseEvent{
			ID:          r.ID,
			Type:        r.Type,
			SourceID:    r.SourceID,
			UserID:      r.UserID,
			Title:       r.Title,
			Description: r.Description,
			ImageURL:    r.ImageURL,
			PlatformURL: r.PlatformURL,
			DetectedAt:  r.DetectedAt,
		})
	}
	return events
}
