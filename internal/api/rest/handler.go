package rest

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/driftwave/release-radar/internal/adapter"
	"github.com/driftwave/release-radar/internal/api/middleware"
	"github.com/driftwave/release-radar/internal/api/rest/dto"
	"github.com/driftwave/release-radar/internal/domain"
	"github.com/driftwave/release-radar/internal/logger"
	"github.com/driftwave/release-radar/internal/messaging"
	"github.com/driftwave/release-radar/internal/store"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// CreateArtist adds a music artist to the caller's tracked list
	// POST /api/v1/artists
	CreateArtist(c *gin.Context)

	// ListArtists retrieves the caller's tracked artists
	// GET /api/v1/artists
	ListArtists(c *gin.Context)

	// GetArtist retrieves one tracked artist
	// GET /api/v1/artists/:id
	GetArtist(c *gin.Context)

	// DeleteArtist stops tracking an artist
	// DELETE /api/v1/artists/:id
	DeleteArtist(c *gin.Context)

	// CreateGame adds a game to the caller's tracked list
	// POST /api/v1/games
	CreateGame(c *gin.Context)

	// ListGames retrieves the caller's tracked games
	// GET /api/v1/games
	ListGames(c *gin.Context)

	// GetGame retrieves one tracked game
	// GET /api/v1/games/:id
	GetGame(c *gin.Context)

	// DeleteGame stops tracking a game
	// DELETE /api/v1/games/:id
	DeleteGame(c *gin.Context)

	// ListReleases retrieves the caller's releases, newest first
	// GET /api/v1/releases?type=<artist|game>&limit=<limit>&offset=<offset>
	ListReleases(c *gin.Context)

	// DismissRelease removes a single release from the caller's feed
	// DELETE /api/v1/releases/:id
	DismissRelease(c *gin.Context)

	// GetSettings retrieves the caller's notification settings, creating
	// them with defaults on first access
	// GET /api/v1/settings
	GetSettings(c *gin.Context)

	// UpdateSettings applies partial changes to the caller's settings
	// PUT /api/v1/settings
	UpdateSettings(c *gin.Context)

	// TriggerScan requests an asynchronous scan of all the caller's entities
	// POST /api/v1/scan
	TriggerScan(c *gin.Context)

	// TriggerArtistScan requests an asynchronous scan of one tracked artist
	// POST /api/v1/artists/:id/scan
	TriggerArtistScan(c *gin.Context)

	// TriggerGameScan requests an asynchronous scan of one tracked game
	// POST /api/v1/games/:id/scan
	TriggerGameScan(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	store     store.Store
	publisher messaging.Publisher
	clock     adapter.Clock
}

// NewHandler creates a new REST API handler
func NewHandler(st store.Store, publisher messaging.Publisher, clock adapter.Clock) Handler {
	return &handler{
		store:     st,
		publisher: publisher,
		clock:     clock,
	}
}

// requireUser resolves the authenticated user, aborting with 401 otherwise
func requireUser(c *gin.Context) (string, bool) {
	userID := middleware.UserID(c)
	if userID == "" {
		respondUnauthorized(c, "Authentication required")
		return "", false
	}
	return userID, true
}

// parseIDParam parses the :id path parameter as a UUID
func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "Invalid ID", err.Error())
		return uuid.Nil, false
	}
	return id, true
}

// CreateArtist adds a music artist to the caller's tracked list
func (h *handler) CreateArtist(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req dto.CreateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	artist, err := h.store.CreateTrackedArtist(c.Request.Context(), store.CreateTrackedArtistInput{
		UserID:          userID,
		Name:            req.Name,
		Platform:        req.Platform,
		URL:             req.URL,
		SpotifyArtistID: req.SpotifyArtistID,
		DeezerArtistID:  req.DeezerArtistID,
	})
	if err != nil {
		respondInternalError(c, err, "Failed to create tracked artist")
		return
	}

	c.JSON(http.StatusCreated, dto.MapArtistToDTO(artist))
}

// ListArtists retrieves the caller's tracked artists
func (h *handler) ListArtists(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	artists, err := h.store.ListTrackedArtists(c.Request.Context(), store.TrackedEntityFilter{UserID: &userID})
	if err != nil {
		respondInternalError(c, err, "Failed to list tracked artists")
		return
	}

	response := dto.ArtistListResponse{Artists: make([]dto.ArtistResponse, len(artists))}
	for i := range artists {
		response.Artists[i] = *dto.MapArtistToDTO(&artists[i])
	}

	c.JSON(http.StatusOK, response)
}

// GetArtist retrieves one tracked artist
func (h *handler) GetArtist(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	artist, err := h.store.GetTrackedArtist(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrEntityNotFound) {
			respondNotFound(c, "Artist not found")
			return
		}
		respondInternalError(c, err, "Failed to get tracked artist")
		return
	}
	if artist.UserID != userID {
		respondNotFound(c, "Artist not found")
		return
	}

	c.JSON(http.StatusOK, dto.MapArtistToDTO(artist))
}

// DeleteArtist stops tracking an artist
func (h *handler) DeleteArtist(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	err := h.store.DeleteTrackedArtist(c.Request.Context(), id, userID)
	if err != nil {
		if errors.Is(err, domain.ErrEntityNotFound) {
			respondNotFound(c, "Artist not found")
			return
		}
		respondInternalError(c, err, "Failed to delete tracked artist")
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateGame adds a game to the caller's tracked list
func (h *handler) CreateGame(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req dto.CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	game, err := h.store.CreateTrackedGame(c.Request.Context(), store.CreateTrackedGameInput{
		UserID:     userID,
		Name:       req.Name,
		Platform:   req.Platform,
		URL:        req.URL,
		SteamAppID: req.SteamAppID,
		RAWGSlug:   req.RAWGSlug,
		Status:     domain.GameStatusUnknown,
	})
	if err != nil {
		respondInternalError(c, err, "Failed to create tracked game")
		return
	}

	c.JSON(http.StatusCreated, dto.MapGameToDTO(game))
}

// ListGames retrieves the caller's tracked games
func (h *handler) ListGames(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	games, err := h.store.ListTrackedGames(c.Request.Context(), store.TrackedEntityFilter{UserID: &userID})
	if err != nil {
		respondInternalError(c, err, "Failed to list tracked games")
		return
	}

	response := dto.GameListResponse{Games: make([]dto.GameResponse, len(games))}
	for i := range games {
		response.Games[i] = *dto.MapGameToDTO(&games[i])
	}

	c.JSON(http.StatusOK, response)
}

// GetGame retrieves one tracked game
func (h *handler) GetGame(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	game, err := h.store.GetTrackedGame(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrEntityNotFound) {
			respondNotFound(c, "Game not found")
			return
		}
		respondInternalError(c, err, "Failed to get tracked game")
		return
	}
	if game.UserID != userID {
		respondNotFound(c, "Game not found")
		return
	}

	c.JSON(http.StatusOK, dto.MapGameToDTO(game))
}

// DeleteGame stops tracking a game
func (h *handler) DeleteGame(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	err := h.store.DeleteTrackedGame(c.Request.Context(), id, userID)
	if err != nil {
		if errors.Is(err, domain.ErrEntityNotFound) {
			respondNotFound(c, "Game not found")
			return
		}
		respondInternalError(c, err, "Failed to delete tracked game")
		return
	}

	c.Status(http.StatusNoContent)
}

// ListReleases retrieves the caller's releases, newest first
func (h *handler) ListReleases(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	params, err := ParseListReleasesQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if err := params.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	filter := store.ReleaseFilter{
		UserID: userID,
		Limit:  params.Limit,
		Offset: params.Offset,
	}
	if params.Type != "" {
		releaseType := domain.ReleaseType(params.Type)
		filter.Type = &releaseType
	}

	releases, err := h.store.ListReleases(c.Request.Context(), filter)
	if err != nil {
		respondInternalError(c, err, "Failed to list releases")
		return
	}

	response := dto.ReleaseListResponse{
		Releases: make([]dto.ReleaseResponse, len(releases)),
		Limit:    params.Limit,
		Offset:   params.Offset,
	}
	for i := range releases {
		response.Releases[i] = *dto.MapReleaseToDTO(&releases[i])
	}

	c.JSON(http.StatusOK, response)
}

// DismissRelease removes a single release from the caller's feed
func (h *handler) DismissRelease(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	err := h.store.DeleteRelease(c.Request.Context(), id, userID)
	if err != nil {
		if errors.Is(err, domain.ErrReleaseNotFound) {
			respondNotFound(c, "Release not found")
			return
		}
		respondInternalError(c, err, "Failed to dismiss release")
		return
	}

	c.Status(http.StatusNoContent)
}

// GetSettings retrieves the caller's notification settings
func (h *handler) GetSettings(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	settings, err := h.store.GetOrCreateNotificationSettings(c.Request.Context(), userID)
	if err != nil {
		respondInternalError(c, err, "Failed to get notification settings")
		return
	}

	c.JSON(http.StatusOK, dto.MapSettingsToDTO(settings))
}

// UpdateSettings applies partial changes to the caller's settings
func (h *handler) UpdateSettings(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	// Load current settings (created with defaults if absent), then apply
	// only the provided fields
	settings, err := h.store.GetOrCreateNotificationSettings(c.Request.Context(), userID)
	if err != nil {
		respondInternalError(c, err, "Failed to get notification settings")
		return
	}

	if req.EmailEnabled != nil {
		settings.EmailEnabled = *req.EmailEnabled
	}
	if req.Frequency != nil {
		settings.Frequency = domain.NotificationFrequency(*req.Frequency)
	}
	if req.ArtistEnabled != nil {
		settings.ArtistEnabled = *req.ArtistEnabled
	}
	if req.GameEnabled != nil {
		settings.GameEnabled = *req.GameEnabled
	}

	if err := h.store.UpdateNotificationSettings(c.Request.Context(), settings); err != nil {
		respondInternalError(c, err, "Failed to update notification settings")
		return
	}

	c.JSON(http.StatusOK, dto.MapSettingsToDTO(settings))
}

// TriggerScan requests an asynchronous scan of all the caller's entities
func (h *handler) TriggerScan(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	// A manual refresh also clears the caller's expired releases so the
	// feed is current when the scan result lands. Best effort: a failed
	// sweep must not block the scan.
	if _, err := h.store.DeleteExpiredReleasesForUser(c.Request.Context(), userID, h.clock.Now().UTC()); err != nil {
		logger.WarnCtx(c.Request.Context(), "failed to sweep expired releases",
			zap.String("user_id", userID),
			zap.Error(err),
		)
	}

	h.publishScanRequest(c, userID, nil, nil)
}

// TriggerArtistScan requests an asynchronous scan of one tracked artist
func (h *handler) TriggerArtistScan(c *gin.Context) {
	h.triggerEntityScan(c, domain.ReleaseTypeArtist)
}

// TriggerGameScan requests an asynchronous scan of one tracked game
func (h *handler) TriggerGameScan(c *gin.Context) {
	h.triggerEntityScan(c, domain.ReleaseTypeGame)
}

// triggerEntityScan verifies ownership of the entity, then publishes an
// entity-scoped scan request
func (h *handler) triggerEntityScan(c *gin.Context, entityType domain.ReleaseType) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var ownerID string
	var err error
	switch entityType {
	case domain.ReleaseTypeArtist:
		a, getErr := h.store.GetTrackedArtist(c.Request.Context(), id)
		if getErr == nil {
			ownerID = a.UserID
		}
		err = getErr
	case domain.ReleaseTypeGame:
		g, getErr := h.store.GetTrackedGame(c.Request.Context(), id)
		if getErr == nil {
			ownerID = g.UserID
		}
		err = getErr
	}

	if err != nil {
		if errors.Is(err, domain.ErrEntityNotFound) {
			respondNotFound(c, "Entity not found")
			return
		}
		respondInternalError(c, err, "Failed to resolve entity")
		return
	}
	if ownerID != userID {
		respondNotFound(c, "Entity not found")
		return
	}

	h.publishScanRequest(c, userID, &id, &entityType)
}

// publishScanRequest publishes a scan request event and responds 202
func (h *handler) publishScanRequest(c *gin.Context, userID string, entityID *uuid.UUID, entityType *domain.ReleaseType) {
	event := &domain.ScanRequested{
		EventID:     ulid.Make().String(),
		UserID:      userID,
		EntityID:    entityID,
		EntityType:  entityType,
		RequestedAt: h.clock.Now().UTC(),
	}

	if err := h.publisher.PublishScanRequested(c.Request.Context(), event); err != nil {
		respondInternalError(c, err, "Failed to publish scan request",
			zap.String("user_id", userID),
		)
		return
	}

	c.JSON(http.StatusAccepted, dto.ScanTriggerResponse{
		EventID: event.EventID,
		Status:  "accepted",
	})
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"service": "release-radar-api",
	})
}
