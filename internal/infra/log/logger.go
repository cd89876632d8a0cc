package log

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger создаёт настроенный zerolog для сервиса отзывов.
func NewLogger(appEnv string) zerolog.Logger {
	level := zerolog.InfoLevel
	if appEnv == "dev" {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(os.Stdout).With().
		Timestamp().
		Str("service", "reviews-api").
		Logger().
		Level(level)
	zerolog.TimeFieldFormat = time.RFC3339
	return logger
}
