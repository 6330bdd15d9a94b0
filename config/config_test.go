package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"YOUTUBE_API_KEY", "HOST", "PORT", "GIN_MODE", "NLP_BACKEND",
		"NATURAL_LANGUAGE_CREDENTIALS", "OPENAI_API_KEY", "MAPS_CREDENTIALS",
		"TOP_ENTITIES", "ROLLING_WINDOW", "HISTOGRAM_BINS", "COMMENT_PAGE_SIZE",
		"VIDEO_ID_PARSER",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	assert.Equal(t, 8060, cfg.Port)
	assert.Equal(t, BackendLocal, cfg.NLPBackend)
	assert.Equal(t, 30, cfg.TopEntities)
	assert.Equal(t, 20, cfg.RollingWindow)
	assert.Equal(t, 20, cfg.HistogramBins)
	assert.Equal(t, 100, cfg.PageSize)
	assert.Equal(t, ParserLegacy, cfg.VideoIDParser)
	assert.Equal(t, ":8060", cfg.Addr())
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("YOUTUBE_API_KEY", "key")
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "9000")
	t.Setenv("NLP_BACKEND", "CLOUD")
	t.Setenv("COMMENT_PAGE_SIZE", "500")
	t.Setenv("TOP_ENTITIES", "not-a-number")

	cfg := Load()

	assert.Equal(t, "127.0.0.1:9000", cfg.Addr())
	assert.Equal(t, BackendCloud, cfg.NLPBackend)
	assert.Equal(t, 100, cfg.PageSize, "page size is capped by the API maximum")
	assert.Equal(t, 30, cfg.TopEntities)
}

func TestValidate(t *testing.T) {
	t.Run("missing api key", func(t *testing.T) {
		clearEnv(t)
		err := Load().Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "YOUTUBE_API_KEY")
	})

	t.Run("cloud needs credentials", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("YOUTUBE_API_KEY", "key")
		t.Setenv("NLP_BACKEND", "cloud")
		require.Error(t, Load().Validate())
	})

	t.Run("unknown parser", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("YOUTUBE_API_KEY", "key")
		t.Setenv("VIDEO_ID_PARSER", "regex")
		require.Error(t, Load().Validate())
	})

	t.Run("valid", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("YOUTUBE_API_KEY", "key")
		require.NoError(t, Load().Validate())
	})
}
