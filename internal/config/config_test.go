package config

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("DISCORD_APP_ID", "app")
	t.Setenv("DOTA_INFO_ENABLED", "true")
	t.Setenv("DOTA_CONFIG_FILE", "/etc/bot/dota.yaml")
	t.Setenv("DOTA_CONFIG_WATCH", "")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "token", cfg.Discord.Token)
	assert.Equal(t, "/etc/bot/dota.yaml", cfg.Dota.ConfigFile)
	require.NotNil(t, cfg.Dota.Enabled)
	assert.True(t, *cfg.Dota.Enabled)
	assert.True(t, cfg.Dota.WatchConfig)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_RequiresDiscordCredentials(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")
	t.Setenv("DISCORD_APP_ID", "app")

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("DISCORD_APP_ID", "")

	_, err = Load()
	assert.Error(t, err)
}

func TestLoad_InvalidBoolIgnored(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("DISCORD_APP_ID", "app")
	t.Setenv("DOTA_INFO_ENABLED", "sometimes")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Nil(t, cfg.Dota.Enabled)
}

func TestConfigureLogging(t *testing.T) {
	defer log.SetLevel(log.InfoLevel)
	defer log.SetFormatter(&log.TextFormatter{})

	require.NoError(t, ConfigureLogging(LogConfig{Level: "debug", Format: "json"}))
	assert.Equal(t, log.DebugLevel, log.GetLevel())

	assert.Error(t, ConfigureLogging(LogConfig{Level: "loud"}))
	assert.Error(t, ConfigureLogging(LogConfig{Level: "info", Format: "xml"}))
}
