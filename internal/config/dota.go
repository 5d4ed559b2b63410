package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"

	"github.com/KirkDiggler/dota-bot-discord/internal/entities"
	"github.com/KirkDiggler/dota-bot-discord/internal/jargon"
)

// DotaConfig is the dota section of the bot configuration file.
type DotaConfig struct {
	BaseURL     string            `yaml:"base_url"`
	ServiceURLs map[string]string `yaml:"service_urls"`
	// CacheTime is in seconds. Zero caches datafeed responses until they
	// are evicted.
	CacheTime      int                 `yaml:"cache_time"`
	HeroAbbrevs    map[string][]string `yaml:"hero_abbrevs"`
	ItemAbbrevs    map[string][]string `yaml:"item_abbrevs"`
	AbilityAbbrevs map[string][]string `yaml:"ability_abbrevs"`
	ImageURLs      ImageURLs           `yaml:"image_urls"`
	Feature        FeatureConfig       `yaml:"feature"`
}

type ImageURLs struct {
	HeroThumbPath    string `yaml:"hero_thumb_path"`
	ItemThumbPath    string `yaml:"item_thumb_path"`
	AbilityThumbPath string `yaml:"ability_thumb_path"`
	StrengthIcon     string `yaml:"strength_icon"`
	AgilityIcon      string `yaml:"agility_icon"`
	IntelligenceIcon string `yaml:"intelligence_icon"`
	UniversalIcon    string `yaml:"universal_icon"`
}

// FeatureConfig gates the dota commands per guild. Guild lists win over
// DefaultEnabled.
type FeatureConfig struct {
	DefaultEnabled bool     `yaml:"default_enabled"`
	EnabledGuilds  []string `yaml:"enabled_guilds"`
	DisabledGuilds []string `yaml:"disabled_guilds"`
}

func (c *DotaConfig) CacheDuration() time.Duration {
	return time.Duration(c.CacheTime) * time.Second
}

func (c *DotaConfig) Abbreviations() *jargon.Tables {
	return &jargon.Tables{
		Heroes:    c.HeroAbbrevs,
		Items:     c.ItemAbbrevs,
		Abilities: c.AbilityAbbrevs,
	}
}

// AttributeIcon returns the configured icon URL, or "" for unknown attributes.
func (u *ImageURLs) AttributeIcon(attr entities.Attribute) string {
	switch attr {
	case entities.AttributeStrength:
		return u.StrengthIcon
	case entities.AttributeAgility:
		return u.AgilityIcon
	case entities.AttributeIntelligence:
		return u.IntelligenceIcon
	case entities.AttributeUniversal:
		return u.UniversalIcon
	default:
		return ""
	}
}

// LoadDota loads the dota section from a YAML file. The section may sit at
// the document root or under a top level "dota" key.
func LoadDota(path string) (*DotaConfig, error) {
	k := koanf.New(".")

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load dota config from %q: %w", path, err)
	}

	root := ""
	if k.Exists("dota") {
		root = "dota"
	}

	var cfg DotaConfig
	if err := k.UnmarshalWithConf(root, &cfg, koanf.UnmarshalConf{Tag: "yaml"}); err != nil {
		return nil, fmt.Errorf("failed to parse dota config from %q: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("dota config validation failed for %q: %w", path, err)
	}

	return &cfg, nil
}

func (c *DotaConfig) Validate() error {
	if c.CacheTime < 0 {
		return fmt.Errorf("cache_time must not be negative, got %d", c.CacheTime)
	}

	for name, url := range c.ServiceURLs {
		if strings.TrimSpace(url) == "" {
			return fmt.Errorf("service_urls.%s is empty", name)
		}
	}

	seen := make(map[string]string)
	for _, guild := range c.Feature.EnabledGuilds {
		seen[guild] = "enabled"
	}
	for _, guild := range c.Feature.DisabledGuilds {
		if seen[guild] == "enabled" {
			return fmt.Errorf("guild %s is both enabled and disabled", guild)
		}
	}

	return nil
}

// DotaWatcher reloads the dota config whenever its file changes.
type DotaWatcher struct {
	provider *file.File
	path     string
}

// WatchDota calls onReload with every successfully parsed revision of the
// file. Invalid revisions are logged and skipped, keeping the previous one.
func WatchDota(path string, onReload func(*DotaConfig)) (*DotaWatcher, error) {
	if onReload == nil {
		return nil, fmt.Errorf("onReload cannot be nil")
	}

	provider := file.Provider(path)
	w := &DotaWatcher{provider: provider, path: path}

	err := provider.Watch(func(event interface{}, err error) {
		if err != nil {
			log.WithError(err).WithField("path", path).Warn("Dota config watch error")
			return
		}

		cfg, err := LoadDota(path)
		if err != nil {
			log.WithError(err).WithField("path", path).Warn("Keeping previous dota config")
			return
		}

		log.WithField("path", path).Info("Reloaded dota config")
		onReload(cfg)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to watch %q: %w", path, err)
	}

	return w, nil
}

func (w *DotaWatcher) Stop() error {
	return w.provider.Unwatch()
}
