package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Classifier.ScoreThreshold)
	assert.InDelta(t, 30, cfg.Classifier.FuzzyThreshold, 0.001)
	assert.Equal(t, "classification_patterns.json", cfg.Learner.PatternStorePath)
	assert.Equal(t, 4, cfg.Runtime.MaxWorkers)
	assert.Equal(t, slog.LevelInfo, cfg.Runtime.SlogLevel())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("KASHF_SCORE_THRESHOLD", "65")
	t.Setenv("KASHF_PATTERN_STORE", "/tmp/patterns.json")
	t.Setenv("KASHF_MAX_WORKERS", "8")
	t.Setenv("KASHF_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 65, cfg.Classifier.ScoreThreshold)
	assert.Equal(t, "/tmp/patterns.json", cfg.Learner.PatternStorePath)
	assert.Equal(t, 8, cfg.Runtime.MaxWorkers)
	assert.Equal(t, slog.LevelDebug, cfg.Runtime.SlogLevel())
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Run("score threshold out of range", func(t *testing.T) {
		t.Setenv("KASHF_SCORE_THRESHOLD", "150")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("workers below one", func(t *testing.T) {
		t.Setenv("KASHF_MAX_WORKERS", "0")
		_, err := Load()
		assert.Error(t, err)
	})
}
