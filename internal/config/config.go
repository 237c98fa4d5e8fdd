package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

type Config struct {
	BrawlAPIKey          string
	BrawlAPIBaseURL      string
	DBPath               string
	ServerPort           string
	LogLevel             string
	BrawlerSyncInterval  time.Duration
	RotationSyncInterval time.Duration
	SyncOnStart          bool
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		BrawlAPIKey:     getEnv("BRAWL_API_KEY", ""),
		BrawlAPIBaseURL: getEnv("BRAWL_API_BASE_URL", "https://api.brawlstars.com/v1"),
		DBPath:          getEnv("DB_PATH", "brawlstats.db"),
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}

	if cfg.BrawlAPIKey == "" {
		return nil, fmt.Errorf("BRAWL_API_KEY is required")
	}

	var err error
	if cfg.BrawlerSyncInterval, err = getDuration("BRAWLER_SYNC_INTERVAL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.RotationSyncInterval, err = getDuration("ROTATION_SYNC_INTERVAL", 30*time.Minute); err != nil {
		return nil, err
	}
	if cfg.SyncOnStart, err = getBool("SYNC_ON_START", false); err != nil {
		return nil, err
	}

	logger.Info().
		Str("api_base_url", cfg.BrawlAPIBaseURL).
		Str("db_path", cfg.DBPath).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Dur("brawler_sync_interval", cfg.BrawlerSyncInterval).
		Dur("rotation_sync_interval", cfg.RotationSyncInterval).
		Bool("sync_on_start", cfg.SyncOnStart).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be positive", key, v)
	}
	return d, nil
}

func getBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return b, nil
}
