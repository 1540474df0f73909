package domain

import (
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Empty(t, cfg.Server.AppURL)
	assert.Equal(t, DefaultAppURL, cfg.AppBaseURL())
	assert.Equal(t, "origin", cfg.Server.Remote)
	assert.Equal(t, DefaultLang, cfg.Locale.Lang)
	assert.Equal(t, DefaultImageFormat, cfg.Image.Format)
	assert.Equal(t, DefaultJPEGQuality, cfg.Image.JPEGQuality)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
}

func TestConfig_Validate(t *testing.T) {
	t.Run("valid config has no warnings", func(t *testing.T) {
		cfg := NewDefaultConfig()
		cfg.Validate()
		assert.Empty(t, cfg.Warnings)
	})

	t.Run("invalid values fall back to defaults", func(t *testing.T) {
		cfg := NewDefaultConfig()
		cfg.Server.AppURL = "example.com/forge"
		cfg.Image.JPEGQuality = 150
		cfg.Log.Level = "verbose"

		cfg.Validate()

		assert.Len(t, cfg.Warnings, 3)
		assert.Empty(t, cfg.Server.AppURL)
		assert.Equal(t, DefaultJPEGQuality, cfg.Image.JPEGQuality)
		assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	})
}

func TestConfig_AppBaseURL(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Server.AppURL = "https://example.com/forge"
	assert.Equal(t, "https://example.com/forge/", cfg.AppBaseURL())

	cfg.Server.AppURL = "https://example.com/forge//"
	assert.Equal(t, "https://example.com/forge/", cfg.AppBaseURL())
}

func TestRenderConfigTemplate(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Server.AppURL = "https://example.com/forge/"

	content := RenderConfigTemplate(cfg)

	assert.Contains(t, content, `app_url = "https://example.com/forge/"`)
	assert.Contains(t, content, "# jpeg_quality = 90")

	var parsed Config
	require.NoError(t, toml.Unmarshal([]byte(content), &parsed))
	assert.Equal(t, "https://example.com/forge/", parsed.Server.AppURL)
}
