package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScannerConfigDefaults(t *testing.T) {
	cfg, err := LoadScannerConfig("", t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "https://api.spotify.com/v1", cfg.Providers.SpotifyURL)
	assert.Equal(t, "https://api.deezer.com", cfg.Providers.DeezerURL)
	assert.Equal(t, "https://api.rawg.io/api", cfg.Providers.RAWGURL)
	assert.Equal(t, time.Second, cfg.Scan.EntityDelay)
	assert.Equal(t, 30*24*time.Hour, cfg.Scan.ArtistWindow)
	assert.Equal(t, 7*24*time.Hour, cfg.Scan.ReleaseTTL)
	assert.Equal(t, "RELEASE_EVENTS", cfg.NATS.StreamName)
	assert.Equal(t, 5, cfg.RateLimiter.Providers["spotify"].RequestsPerSecond)
	assert.True(t, cfg.RateLimiter.EnableLocalFallback)
}

func TestLoadScannerConfigEnvOverride(t *testing.T) {
	t.Setenv("RELEASE_RADAR_DATABASE_HOST", "db.internal")
	t.Setenv("RELEASE_RADAR_PROVIDERS_RAWG_API_KEY", "test-key")
	t.Setenv("RELEASE_RADAR_SCAN_ENTITY_DELAY", "250ms")

	cfg, err := LoadScannerConfig("", t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "test-key", cfg.Providers.RAWGAPIKey)
	assert.Equal(t, 250*time.Millisecond, cfg.Scan.EntityDelay)
}

func TestLoadAPIConfigDefaults(t *testing.T) {
	cfg, err := LoadAPIConfig("", t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "release-radar-api", cfg.NATS.ConnectionName)
}

func TestLoadNotifierConfigRequiresSendGridKey(t *testing.T) {
	_, err := LoadNotifierConfig("", t.TempDir())
	assert.ErrorContains(t, err, "sendgrid_api_key")
}

func TestLoadSweeperConfigRequiresDatabase(t *testing.T) {
	_, err := LoadSweeperConfig("", t.TempDir())
	assert.ErrorContains(t, err, "database.host")
}

func TestDatabaseDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "radar",
		Password: "secret",
		DBName:   "release_radar",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=radar password=secret dbname=release_radar sslmode=disable",
		cfg.DSN())
}
