package logger

import (
	"brawlstats-sync/internal/config"
	"os"

	"github.com/rs/zerolog"
)

func New() zerolog.Logger {
	return SetLevel(zerolog.DebugLevel)
}

func SetLevel(level zerolog.Level) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Caller().
		Logger()

	logger = logger.Level(level)

	return logger
}

// ForConfig re-levels the bootstrap logger once the configuration is known.
// An unknown LOG_LEVEL keeps the bootstrap level.
func ForConfig(cfg *config.Config, base zerolog.Logger) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		base.Warn().Str("log_level", cfg.LogLevel).Msg("unknown log level, keeping debug")
		return base
	}
	return base.Level(level)
}
