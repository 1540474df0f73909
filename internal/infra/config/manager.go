package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/runoshun/git-weblink/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager manages configuration files.
type Manager struct {
	weblinkDir    string // Path to .git/weblink directory
	globalConfDir string // Path to global config directory (e.g., ~/.config/git-weblink)
}

// NewManager creates a new Manager.
func NewManager(weblinkDir string) *Manager {
	return &Manager{
		weblinkDir:    weblinkDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewManagerWithGlobalDir creates a new Manager with a custom global config directory.
// This is useful for testing.
func NewManagerWithGlobalDir(weblinkDir, globalConfDir string) *Manager {
	return &Manager{
		weblinkDir:    weblinkDir,
		globalConfDir: globalConfDir,
	}
}

// GetRepoConfigInfo returns information about the repository config file.
func (m *Manager) GetRepoConfigInfo() domain.ConfigInfo {
	if m.weblinkDir == "" {
		return domain.ConfigInfo{}
	}
	return m.getConfigInfo(filepath.Join(m.weblinkDir, domain.ConfigFileName))
}

// GetGlobalConfigInfo returns information about the global config file.
func (m *Manager) GetGlobalConfigInfo() domain.ConfigInfo {
	if m.globalConfDir == "" {
		return domain.ConfigInfo{}
	}
	return m.getConfigInfo(filepath.Join(m.globalConfDir, domain.ConfigFileName))
}

// getConfigInfo reads a config file and returns its info.
func (m *Manager) getConfigInfo(path string) domain.ConfigInfo {
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.ConfigInfo{
			Path:   path,
			Exists: false,
		}
	}
	return domain.ConfigInfo{
		Path:    path,
		Content: string(content),
		Exists:  true,
	}
}

// InitRepoConfig creates a repository config file from the template.
func (m *Manager) InitRepoConfig(cfg *domain.Config, force bool) (string, error) {
	if m.weblinkDir == "" {
		return "", domain.ErrNotGitRepository
	}
	return m.initConfig(m.weblinkDir, cfg, force)
}

// InitGlobalConfig creates a global config file from the template.
func (m *Manager) InitGlobalConfig(cfg *domain.Config, force bool) (string, error) {
	if m.globalConfDir == "" {
		return "", errors.New("global config directory not available")
	}
	return m.initConfig(m.globalConfDir, cfg, force)
}

// initConfig writes the rendered template into dir and returns the file path.
func (m *Manager) initConfig(dir string, cfg *domain.Config, force bool) (string, error) {
	path := filepath.Join(dir, domain.ConfigFileName)
	if _, err := os.Stat(path); err == nil && !force {
		return path, domain.ErrConfigExists
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return path, err
	}
	content := domain.RenderConfigTemplate(cfg)
	return path, os.WriteFile(path, []byte(content), 0o600)
}
