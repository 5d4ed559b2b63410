package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Config holds all configuration for the application
type Config struct {
	Discord DiscordConfig
	Redis   RedisConfig
	Dota    DotaEnvConfig
	Log     LogConfig
	Metrics MetricsConfig
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token   string
	AppID   string
	GuildID string // Optional: for guild-specific commands
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	URL string // Optional: falls back to an in-memory cache
}

// DotaEnvConfig holds the environment overrides for the dota commands
type DotaEnvConfig struct {
	ConfigFile string
	// Enabled forces the dota_info feature on in every guild when set.
	Enabled *bool
	// WatchConfig reloads abbreviation tables when ConfigFile changes.
	WatchConfig bool
}

type LogConfig struct {
	Level  string
	Format string
}

type MetricsConfig struct {
	Addr string // Optional: metrics are not served when empty
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Discord: DiscordConfig{
			Token:   os.Getenv("DISCORD_TOKEN"),
			AppID:   os.Getenv("DISCORD_APP_ID"),
			GuildID: os.Getenv("DISCORD_GUILD_ID"),
		},
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		},
		Dota: DotaEnvConfig{
			ConfigFile:  getEnvOrDefault("DOTA_CONFIG_FILE", "config/dota.yaml"),
			Enabled:     getEnvAsBoolPtr("DOTA_INFO_ENABLED"),
			WatchConfig: getEnvAsBoolOrDefault("DOTA_CONFIG_WATCH", true),
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "text"),
		},
		Metrics: MetricsConfig{
			Addr: os.Getenv("METRICS_ADDR"),
		},
	}

	// Validate required fields
	if cfg.Discord.Token == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN is required")
	}
	if cfg.Discord.AppID == "" {
		return nil, fmt.Errorf("DISCORD_APP_ID is required")
	}

	return cfg, nil
}

// ConfigureLogging applies the level and format to the standard logrus logger
func ConfigureLogging(cfg LogConfig) error {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.Level, err)
	}
	log.SetLevel(level)

	switch strings.ToLower(cfg.Format) {
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	case "", "text":
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	default:
		return fmt.Errorf("invalid LOG_FORMAT %q", cfg.Format)
	}

	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := getEnvAsBoolPtr(key); value != nil {
		return *value
	}
	return defaultValue
}

func getEnvAsBoolPtr(key string) *bool {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		log.Warnf("Ignoring %s=%q: not a boolean", key, value)
		return nil
	}
	return &b
}
