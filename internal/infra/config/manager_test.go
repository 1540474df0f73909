package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/git-weblink/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_GetRepoConfigInfo(t *testing.T) {
	t.Run("returns info when file exists", func(t *testing.T) {
		weblinkDir := t.TempDir()
		configContent := "[server]\napp_url = \"https://example.com/\""
		err := os.WriteFile(filepath.Join(weblinkDir, domain.ConfigFileName), []byte(configContent), 0644)
		require.NoError(t, err)

		manager := NewManagerWithGlobalDir(weblinkDir, "")
		info := manager.GetRepoConfigInfo()

		assert.Equal(t, filepath.Join(weblinkDir, domain.ConfigFileName), info.Path)
		assert.Equal(t, configContent, info.Content)
		assert.True(t, info.Exists)
	})

	t.Run("returns info when file does not exist", func(t *testing.T) {
		weblinkDir := t.TempDir()

		manager := NewManagerWithGlobalDir(weblinkDir, "")
		info := manager.GetRepoConfigInfo()

		assert.Equal(t, filepath.Join(weblinkDir, domain.ConfigFileName), info.Path)
		assert.Empty(t, info.Content)
		assert.False(t, info.Exists)
	})

	t.Run("outside a repository", func(t *testing.T) {
		manager := NewManagerWithGlobalDir("", "")
		assert.Equal(t, domain.ConfigInfo{}, manager.GetRepoConfigInfo())
	})
}

func TestManager_GetGlobalConfigInfo(t *testing.T) {
	globalDir := t.TempDir()
	configContent := "[log]\nlevel = \"debug\""
	require.NoError(t, os.WriteFile(filepath.Join(globalDir, domain.ConfigFileName), []byte(configContent), 0644))

	manager := NewManagerWithGlobalDir("", globalDir)
	info := manager.GetGlobalConfigInfo()

	assert.Equal(t, filepath.Join(globalDir, domain.ConfigFileName), info.Path)
	assert.Equal(t, configContent, info.Content)
	assert.True(t, info.Exists)
}

func TestManager_InitRepoConfig(t *testing.T) {
	t.Run("creates config file from template", func(t *testing.T) {
		weblinkDir := filepath.Join(t.TempDir(), "weblink")
		manager := NewManagerWithGlobalDir(weblinkDir, "")

		path, err := manager.InitRepoConfig(domain.NewDefaultConfig(), false)

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(weblinkDir, domain.ConfigFileName), path)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "[server]")
		assert.Contains(t, string(content), `app_url = "http://localhost:3000/"`)
	})

	t.Run("refuses to overwrite without force", func(t *testing.T) {
		weblinkDir := t.TempDir()
		path := filepath.Join(weblinkDir, domain.ConfigFileName)
		require.NoError(t, os.WriteFile(path, []byte("existing"), 0644))
		manager := NewManagerWithGlobalDir(weblinkDir, "")

		_, err := manager.InitRepoConfig(domain.NewDefaultConfig(), false)
		assert.ErrorIs(t, err, domain.ErrConfigExists)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "existing", string(content))
	})

	t.Run("overwrites with force", func(t *testing.T) {
		weblinkDir := t.TempDir()
		path := filepath.Join(weblinkDir, domain.ConfigFileName)
		require.NoError(t, os.WriteFile(path, []byte("existing"), 0644))
		manager := NewManagerWithGlobalDir(weblinkDir, "")

		_, err := manager.InitRepoConfig(domain.NewDefaultConfig(), true)
		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "[server]")
	})

	t.Run("outside a repository", func(t *testing.T) {
		manager := NewManagerWithGlobalDir("", t.TempDir())
		_, err := manager.InitRepoConfig(domain.NewDefaultConfig(), false)
		assert.ErrorIs(t, err, domain.ErrNotGitRepository)
	})
}

func TestManager_InitGlobalConfig(t *testing.T) {
	globalDir := filepath.Join(t.TempDir(), "git-weblink")
	manager := NewManagerWithGlobalDir("", globalDir)

	path, err := manager.InitGlobalConfig(domain.NewDefaultConfig(), false)

	require.NoError(t, err)
	assert.FileExists(t, path)
}
