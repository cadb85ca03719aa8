// Package config loads rbnotes settings from the environment, optionally
// seeded from a .env file in the working directory.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"rbnotes/internal/logger"
)

// Config stores the application configuration.
type Config struct {
	LibraryPath    string // Default rekordbox.xml when no argument is given
	PromptAttempts int    // Invalid answers allowed at the prompt, 0 for no limit
	Log            logger.Config
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt gets an environment variable as int or returns a default value.
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

// Load reads .env (if present) and the environment. Variables already set in
// the environment win over .env entries.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	attempts := getEnvInt("RBNOTES_PROMPT_ATTEMPTS", 0)
	if attempts < 0 {
		attempts = 0
	}

	return &Config{
		LibraryPath:    getEnv("RBNOTES_LIBRARY", ""),
		PromptAttempts: attempts,
		Log: logger.Config{
			Level:      logger.LogLevel(getEnv("RBNOTES_LOG_LEVEL", string(logger.WarnLevel))),
			OutputPath: getEnv("RBNOTES_LOG_FILE", ""),
			MaxSize:    getEnvInt("RBNOTES_LOG_MAX_SIZE", 10),
			MaxBackups: getEnvInt("RBNOTES_LOG_MAX_BACKUPS", 3),
			MaxAge:     getEnvInt("RBNOTES_LOG_MAX_AGE", 28),
			Compress:   getEnvBool("RBNOTES_LOG_COMPRESS", false),
		},
	}, nil
}
