// Package config loads application configuration from environment
// variables, with optional .env file support for local development.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Classifier ClassifierConfig
	Learner    LearnerConfig
	Runtime    RuntimeConfig
}

type ClassifierConfig struct {
	// ScoreThreshold is the minimum keyword score for a classification.
	ScoreThreshold int
	// FuzzyThreshold is the minimum fuzzy-match score for the fallback layer.
	FuzzyThreshold float64
}

type LearnerConfig struct {
	// PatternStorePath is where learned classification patterns persist.
	PatternStorePath string
	// FlushSchedule is a cron expression for periodic pattern flushes.
	FlushSchedule string
}

type RuntimeConfig struct {
	MaxWorkers int
	LogLevel   string
}

// Load reads configuration from environment variables. A .env file in the
// working directory is merged in first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Classifier: ClassifierConfig{
			ScoreThreshold: getEnvAsInt("KASHF_SCORE_THRESHOLD", 50),
			FuzzyThreshold: getEnvAsFloat("KASHF_FUZZY_THRESHOLD", 30),
		},
		Learner: LearnerConfig{
			PatternStorePath: getEnv("KASHF_PATTERN_STORE", "classification_patterns.json"),
			FlushSchedule:    getEnv("KASHF_FLUSH_SCHEDULE", "@every 5m"),
		},
		Runtime: RuntimeConfig{
			MaxWorkers: getEnvAsInt("KASHF_MAX_WORKERS", 4),
			LogLevel:   getEnv("KASHF_LOG_LEVEL", "info"),
		},
	}

	if cfg.Classifier.ScoreThreshold < 0 || cfg.Classifier.ScoreThreshold > 100 {
		return nil, fmt.Errorf("KASHF_SCORE_THRESHOLD must be between 0 and 100, got %d", cfg.Classifier.ScoreThreshold)
	}
	if cfg.Runtime.MaxWorkers < 1 {
		return nil, fmt.Errorf("KASHF_MAX_WORKERS must be at least 1, got %d", cfg.Runtime.MaxWorkers)
	}

	return cfg, nil
}

// SlogLevel maps the configured log level onto slog.
func (c *RuntimeConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}
