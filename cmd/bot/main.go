package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"github.com/KirkDiggler/dota-bot-discord/internal/clients/dota"
	"github.com/KirkDiggler/dota-bot-discord/internal/config"
	v2 "github.com/KirkDiggler/dota-bot-discord/internal/discord/v2"
	"github.com/KirkDiggler/dota-bot-discord/internal/discord/v2/middleware"
	"github.com/KirkDiggler/dota-bot-discord/internal/discord/v2/routers"
	"github.com/KirkDiggler/dota-bot-discord/internal/metrics"
	"github.com/KirkDiggler/dota-bot-discord/internal/repositories/datacache"
	"github.com/KirkDiggler/dota-bot-discord/internal/services"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := config.ConfigureLogging(cfg.Log); err != nil {
		log.Fatalf("Failed to configure logging: %v", err)
	}

	log.Printf("Application ID: %s", cfg.Discord.AppID)
	if cfg.Discord.GuildID != "" {
		log.Printf("Guild ID: %s", cfg.Discord.GuildID)
	}

	dotaCfg, err := config.LoadDota(cfg.Dota.ConfigFile)
	if err != nil {
		log.Fatalf("Failed to load dota config: %v", err)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}

	dotaClient, err := dota.New(&dota.Config{
		HttpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		BaseURL:     dotaCfg.BaseURL,
		ServiceURLs: dotaCfg.ServiceURLs,
	})
	if err != nil {
		log.Fatalf("Failed to create dota client: %v", err)
	}

	providerConfig := &services.ProviderConfig{
		DotaClient:    dotaClient,
		CacheTime:     dotaCfg.CacheDuration(),
		Abbreviations: dotaCfg.Abbreviations(),
	}

	var rateLimitStore middleware.RateLimitStore

	// Keep Redis client for cleanup
	redisClient := connectRedis(cfg.Redis.URL)
	if redisClient != nil {
		providerConfig.Cache = datacache.NewRedis(&datacache.RedisConfig{Client: redisClient})
		rateLimitStore = middleware.NewRedisRateLimitStore(&middleware.RedisRateLimitConfig{Client: redisClient})
		log.Println("Using Redis for the datafeed cache and rate limits")
	}

	provider := services.NewProvider(providerConfig)

	var collector *metrics.Collector
	if cfg.Metrics.Addr != "" {
		registry := prometheus.NewRegistry()
		collector = metrics.NewCollector(registry)

		go func() {
			if err := metrics.Serve(ctx, cfg.Metrics.Addr, registry); err != nil {
				log.WithError(err).Error("Metrics server stopped")
			}
		}()
	}

	setup := &v2.SetupConfig{
		Provider:        provider,
		Dota:            dotaCfg,
		EnabledOverride: cfg.Dota.Enabled,
		RateLimitStore:  rateLimitStore,
	}
	if collector != nil {
		setup.Metrics = collector
	}

	pipeline, dotaRouter, err := v2.SetupHandlers(setup)
	if err != nil {
		log.Fatalf("Failed to set up handlers: %v", err)
	}

	if cfg.Dota.WatchConfig {
		watcher, watchErr := config.WatchDota(cfg.Dota.ConfigFile, func(reloaded *config.DotaConfig) {
			provider.Jargon.SetTables(reloaded.Abbreviations())
			dotaRouter.Reload(reloaded)
		})
		if watchErr != nil {
			log.Printf("Not watching dota config: %v", watchErr)
		} else {
			defer func() {
				if err := watcher.Stop(); err != nil {
					log.Printf("Failed to stop config watcher: %v", err)
				}
			}()
		}
	}

	detach := v2.AttachPipeline(dg, pipeline)
	defer detach()

	if err := dg.Open(); err != nil {
		log.Printf("Failed to open Discord connection: %v", err)
		return
	}
	defer func() {
		if err := dg.Close(); err != nil {
			log.Printf("Failed to close Discord connection: %v", err)
		}
	}()

	// Use empty string for global commands, or set a specific guild ID for testing
	if _, err := routers.RegisterCommands(dg, cfg.Discord.AppID, cfg.Discord.GuildID); err != nil {
		log.Printf("Failed to register commands: %v", err)
		return
	}

	if cfg.Discord.GuildID != "" {
		log.Printf("Registered commands for guild: %s", cfg.Discord.GuildID)
	} else {
		log.Println("Registered global commands (may take up to 1 hour to propagate)")
	}

	log.Println("Bot is now running. Press CTRL-C to exit.")

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	log.Println("Shutting down...")
	stop()

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing Redis connection: %v", err)
		} else {
			log.Println("Closed Redis connection")
		}
	}
}

// connectRedis returns nil when Redis is not configured or unreachable, in
// which case the bot falls back to in-memory storage.
func connectRedis(redisURL string) *redis.Client {
	if redisURL == "" {
		log.Println("No REDIS_URL found, using in-memory cache")
		return nil
	}

	log.Printf("Connecting to Redis at: %s", redisURL)

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("Failed to parse Redis URL: %v", err)
		log.Println("Falling back to in-memory cache")
		return nil
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		log.Println("Falling back to in-memory cache")
		_ = client.Close()
		return nil
	}

	log.Println("Successfully connected to Redis")
	return client
}
