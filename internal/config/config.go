package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BaseConfig holds base configuration shared by all services
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	ConsumerName   string        `mapstructure:"consumer_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
	AckWait        time.Duration `mapstructure:"ack_wait"`
	MaxDeliver     int           `mapstructure:"max_deliver"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// ProvidersConfig holds external platform API configurations
type ProvidersConfig struct {
	SpotifyURL          string        `mapstructure:"spotify_url"`
	SpotifyTokenURL     string        `mapstructure:"spotify_token_url"`
	SpotifyClientID     string        `mapstructure:"spotify_client_id"`
	SpotifyClientSecret string        `mapstructure:"spotify_client_secret"`
	DeezerURL           string        `mapstructure:"deezer_url"`
	SteamStoreURL       string        `mapstructure:"steam_store_url"`
	SteamAPIURL         string        `mapstructure:"steam_api_url"`
	RAWGURL             string        `mapstructure:"rawg_url"`
	RAWGAPIKey          string        `mapstructure:"rawg_api_key"`
	HTTPTimeout         time.Duration `mapstructure:"http_timeout"`
}

// EmailConfig holds transactional email configuration
type EmailConfig struct {
	SendGridAPIKey string `mapstructure:"sendgrid_api_key"`
	FromName       string `mapstructure:"from_name"`
	FromEmail      string `mapstructure:"from_email"`
	DashboardURL   string `mapstructure:"dashboard_url"`
}

// RateLimitConfig holds per-provider rate limiting configuration
type RateLimitConfig struct {
	RequestsPerSecond int           `mapstructure:"requests_per_second"`
	Burst             int           `mapstructure:"burst"`
	MaxQueueTime      time.Duration `mapstructure:"max_queue_time"`
}

// RateLimiterConfig holds the rate limiter proxy configuration
type RateLimiterConfig struct {
	RedisAddr               string                     `mapstructure:"redis_addr"`
	RedisPassword           string                     `mapstructure:"redis_password"`
	RedisDB                 int                        `mapstructure:"redis_db"`
	RedisKeyPrefix          string                     `mapstructure:"redis_key_prefix"`
	MaxWorkers              int                        `mapstructure:"max_workers"`
	MaxQueueSize            int                        `mapstructure:"max_queue_size"`
	EnableLocalFallback     bool                       `mapstructure:"enable_local_fallback"`
	LocalFallbackMultiplier float64                    `mapstructure:"local_fallback_multiplier"`
	Providers               map[string]RateLimitConfig `mapstructure:"providers"`
}

// ScanConfig holds the release scanner tuning knobs
type ScanConfig struct {
	// Schedule is the cron spec driving periodic global scans
	Schedule string `mapstructure:"schedule"`
	// EntityDelay is the pause between entities, a throttle toward providers
	EntityDelay time.Duration `mapstructure:"entity_delay"`
	// ArtistWindow bounds how far back artist releases are considered new
	ArtistWindow time.Duration `mapstructure:"artist_window"`
	// PatchNotesWindow bounds how far back game patch notes are considered new
	PatchNotesWindow time.Duration `mapstructure:"patch_notes_window"`
	// AdditionsWindow bounds how far back game DLC/additions are considered new
	AdditionsWindow time.Duration `mapstructure:"additions_window"`
	// ReleaseTTL is how long a detected release lives before the sweeper
	// removes it
	ReleaseTTL time.Duration `mapstructure:"release_ttl"`
}

// SweepConfig holds the expiry sweeper tuning knobs
type SweepConfig struct {
	BatchSize     int           `mapstructure:"batch_size"`
	CycleInterval time.Duration `mapstructure:"cycle_interval"`
}

// APIServiceConfig holds configuration for the API server
type APIServiceConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig   `mapstructure:"server"`
	Database   DatabaseConfig `mapstructure:"database"`
	NATS       NATSConfig     `mapstructure:"nats"`
	Auth       AuthConfig     `mapstructure:"auth"`
}

// ScannerServiceConfig holds configuration for the scanner process
type ScannerServiceConfig struct {
	BaseConfig  `mapstructure:",squash"`
	Database    DatabaseConfig    `mapstructure:"database"`
	NATS        NATSConfig        `mapstructure:"nats"`
	Providers   ProvidersConfig   `mapstructure:"providers"`
	RateLimiter RateLimiterConfig `mapstructure:"rate_limiter"`
	Scan        ScanConfig        `mapstructure:"scan"`
}

// NotifierServiceConfig holds configuration for the notifier process
type NotifierServiceConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig `mapstructure:"database"`
	NATS       NATSConfig     `mapstructure:"nats"`
	Email      EmailConfig    `mapstructure:"email"`
}

// SweeperServiceConfig holds configuration for the sweeper process
type SweeperServiceConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig `mapstructure:"database"`
	Sweep      SweepConfig    `mapstructure:"sweep"`
}

// LoadAPIConfig loads configuration for the API server
func LoadAPIConfig(configFile string, envPath string) (*APIServiceConfig, error) {
	v := configureViper("api", configFile, envPath)

	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)
	setDatabaseDefaults(v)
	setNATSDefaults(v)
	v.SetDefault("nats.connection_name", "release-radar-api")

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg APIServiceConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// LoadScannerConfig loads configuration for the scanner process
func LoadScannerConfig(configFile string, envPath string) (*ScannerServiceConfig, error) {
	v := configureViper("scanner", configFile, envPath)

	setDatabaseDefaults(v)
	setNATSDefaults(v)
	v.SetDefault("nats.connection_name", "release-radar-scanner")
	v.SetDefault("nats.consumer_name", "scanner")
	v.SetDefault("providers.spotify_url", "https://api.spotify.com/v1")
	v.SetDefault("providers.spotify_token_url", "https://accounts.spotify.com/api/token")
	v.SetDefault("providers.deezer_url", "https://api.deezer.com")
	v.SetDefault("providers.steam_store_url", "https://store.steampowered.com/api")
	v.SetDefault("providers.steam_api_url", "https://api.steampowered.com")
	v.SetDefault("providers.rawg_url", "https://api.rawg.io/api")
	v.SetDefault("providers.http_timeout", "30s")
	v.SetDefault("rate_limiter.redis_addr", "localhost:6379")
	v.SetDefault("rate_limiter.enable_local_fallback", true)
	v.SetDefault("rate_limiter.providers.spotify.requests_per_second", 5)
	v.SetDefault("rate_limiter.providers.deezer.requests_per_second", 10)
	v.SetDefault("rate_limiter.providers.steam.requests_per_second", 2)
	v.SetDefault("rate_limiter.providers.rawg.requests_per_second", 2)
	v.SetDefault("scan.schedule", "0 */6 * * *")
	v.SetDefault("scan.entity_delay", "1s")
	v.SetDefault("scan.artist_window", "720h")     // 30 days
	v.SetDefault("scan.patch_notes_window", "168h") // 7 days
	v.SetDefault("scan.additions_window", "720h")  // 30 days
	v.SetDefault("scan.release_ttl", "168h")       // 7 days

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg ScannerServiceConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// LoadNotifierConfig loads configuration for the notifier process
func LoadNotifierConfig(configFile string, envPath string) (*NotifierServiceConfig, error) {
	v := configureViper("notifier", configFile, envPath)

	setDatabaseDefaults(v)
	setNATSDefaults(v)
	v.SetDefault("nats.connection_name", "release-radar-notifier")
	v.SetDefault("nats.consumer_name", "notifier")
	v.SetDefault("email.from_name", "Release Radar")

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg NotifierServiceConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Email.SendGridAPIKey == "" {
		return nil, errors.New("email.sendgrid_api_key is required")
	}
	if cfg.Email.FromEmail == "" {
		return nil, errors.New("email.from_email is required")
	}

	return &cfg, nil
}

// LoadSweeperConfig loads configuration for the sweeper process
func LoadSweeperConfig(configFile string, envPath string) (*SweeperServiceConfig, error) {
	v := configureViper("sweeper", configFile, envPath)

	setDatabaseDefaults(v)
	v.SetDefault("database.max_open_conns", 5)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("sweep.batch_size", 500)
	v.SetDefault("sweep.cycle_interval", "15m")

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg SweeperServiceConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Database.Host == "" {
		return nil, errors.New("database.host is required")
	}
	if cfg.Database.DBName == "" {
		return nil, errors.New("database.dbname is required")
	}

	return &cfg, nil
}

func setDatabaseDefaults(v *viper.Viper) {
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
}

func setNATSDefaults(v *viper.Viper) {
	v.SetDefault("nats.url", "nats://localhost:4222")
	v.SetDefault("nats.stream_name", "RELEASE_EVENTS")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.ack_wait", "30s")
	v.SetDefault("nats.max_deliver", 3)
}

// readConfig reads the config file, tolerating a missing file so pure
// environment-variable deployments work
func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// configureViper returns a viper instance with the config file and
// environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	loadEnv(envPath, service)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix("RELEASE_RADAR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all known environment variables. Required
// for viper to map env vars onto config struct fields when no config file
// exists.
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.consumer_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		"nats.ack_wait",
		"nats.max_deliver",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
		// Providers
		"providers.spotify_url",
		"providers.spotify_token_url",
		"providers.spotify_client_id",
		"providers.spotify_client_secret",
		"providers.deezer_url",
		"providers.steam_store_url",
		"providers.steam_api_url",
		"providers.rawg_url",
		"providers.rawg_api_key",
		"providers.http_timeout",
		// Email
		"email.sendgrid_api_key",
		"email.from_name",
		"email.from_email",
		"email.dashboard_url",
		// Rate limiter
		"rate_limiter.redis_addr",
		"rate_limiter.redis_password",
		"rate_limiter.redis_db",
		"rate_limiter.redis_key_prefix",
		"rate_limiter.max_workers",
		"rate_limiter.max_queue_size",
		"rate_limiter.enable_local_fallback",
		"rate_limiter.local_fallback_multiplier",
		// Scan
		"scan.schedule",
		"scan.entity_delay",
		"scan.artist_window",
		"scan.patch_notes_window",
		"scan.additions_window",
		"scan.release_ttl",
		// Sweep
		"sweep.batch_size",
		"sweep.cycle_interval",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // later files override earlier ones
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
