package commands

import (
	"fmt"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dota-bot-discord/internal/clients/dota"
	"github.com/KirkDiggler/dota-bot-discord/internal/config"
	"github.com/KirkDiggler/dota-bot-discord/internal/services"
)

var (
	configFile string
	logLevel   string
	outputJSON bool
	timeout    time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "dota-lookup",
	Short: "Look up Dota 2 heroes, items and abilities from the terminal",
	Long: `dota-lookup resolves a hero, item or ability the same way the bot does,
abbreviations included, and prints the embed the bot would post.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()
		return config.ConfigureLogging(config.LogConfig{Level: logLevel, Format: "text"})
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "config/dota.yaml", "Path to the dota config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Print the Discord embed as JSON")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Datafeed request timeout")

	rootCmd.AddCommand(heroCmd)
	rootCmd.AddCommand(itemCmd)
	rootCmd.AddCommand(abilityCmd)
}

// newProvider builds a provider backed by the in-memory cache.
func newProvider() (*services.Provider, *config.DotaConfig, error) {
	dotaCfg, err := config.LoadDota(configFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load dota config: %w", err)
	}

	client, err := dota.New(&dota.Config{
		HttpClient:  &http.Client{Timeout: timeout},
		BaseURL:     dotaCfg.BaseURL,
		ServiceURLs: dotaCfg.ServiceURLs,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create dota client: %w", err)
	}

	log.WithField("base_url", dotaCfg.BaseURL).Debug("Using datafeed")

	return services.NewProvider(&services.ProviderConfig{
		DotaClient:    client,
		CacheTime:     dotaCfg.CacheDuration(),
		Abbreviations: dotaCfg.Abbreviations(),
	}), dotaCfg, nil
}
