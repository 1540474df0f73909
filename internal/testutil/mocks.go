// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"fmt"
	"sync"

	"github.com/runoshun/git-weblink/internal/domain"
)

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config       *domain.Config
	GlobalConfig *domain.Config
	RepoConfig   *domain.Config
	LoadErr      error
	GlobalErr    error
	RepoErr      error
}

// NewMockConfigLoader creates a new MockConfigLoader with default config.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{
		Config: domain.NewDefaultConfig(),
	}
}

// Ensure MockConfigLoader implements domain.ConfigLoader interface.
var _ domain.ConfigLoader = (*MockConfigLoader)(nil)

// Load returns the configured config or error.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}

// LoadGlobal returns the configured config or error.
func (m *MockConfigLoader) LoadGlobal() (*domain.Config, error) {
	if m.GlobalErr != nil {
		return nil, m.GlobalErr
	}
	if m.GlobalConfig != nil {
		return m.GlobalConfig, nil
	}
	return m.Config, nil
}

// LoadRepo returns the configured repo config or error.
func (m *MockConfigLoader) LoadRepo() (*domain.Config, error) {
	if m.RepoErr != nil {
		return nil, m.RepoErr
	}
	if m.RepoConfig != nil {
		return m.RepoConfig, nil
	}
	return m.Config, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitRepoErr      error
	InitGlobalErr    error
	InitConfig       *domain.Config
	RepoConfigInfo   domain.ConfigInfo
	GlobalConfigInfo domain.ConfigInfo
	InitRepoCalled   bool
	InitGlobalCalled bool
	InitForce        bool
}

// NewMockConfigManager creates a new MockConfigManager.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{
		RepoConfigInfo: domain.ConfigInfo{
			Path:   "/test/.git/weblink/config.toml",
			Exists: false,
		},
		GlobalConfigInfo: domain.ConfigInfo{
			Path:   "/home/test/.config/git-weblink/config.toml",
			Exists: false,
		},
	}
}

// Ensure MockConfigManager implements domain.ConfigManager interface.
var _ domain.ConfigManager = (*MockConfigManager)(nil)

// GetRepoConfigInfo returns the configured repo config info.
func (m *MockConfigManager) GetRepoConfigInfo() domain.ConfigInfo {
	return m.RepoConfigInfo
}

// GetGlobalConfigInfo returns the configured global config info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalConfigInfo
}

// InitRepoConfig records the call and returns the configured error.
func (m *MockConfigManager) InitRepoConfig(cfg *domain.Config, force bool) (string, error) {
	m.InitRepoCalled = true
	m.InitConfig = cfg
	m.InitForce = force
	return m.RepoConfigInfo.Path, m.InitRepoErr
}

// InitGlobalConfig records the call and returns the configured error.
func (m *MockConfigManager) InitGlobalConfig(cfg *domain.Config, force bool) (string, error) {
	m.InitGlobalCalled = true
	m.InitConfig = cfg
	m.InitForce = force
	return m.GlobalConfigInfo.Path, m.InitGlobalErr
}

// MockGit is a test double for domain.Git.
type MockGit struct {
	Remotes  map[string]string
	Root     string
	Dir      string
	Requests []string
}

// NewMockGit creates a MockGit with the given origin URL.
func NewMockGit(originURL string) *MockGit {
	return &MockGit{
		Remotes: map[string]string{"origin": originURL},
		Root:    "/test",
		Dir:     "/test/.git",
	}
}

// Ensure MockGit implements domain.Git interface.
var _ domain.Git = (*MockGit)(nil)

// RepoRoot returns the configured root.
func (m *MockGit) RepoRoot() string { return m.Root }

// GitDir returns the configured git dir.
func (m *MockGit) GitDir() string { return m.Dir }

// RemoteURL returns the configured URL for name.
func (m *MockGit) RemoteURL(name string) (string, error) {
	m.Requests = append(m.Requests, name)
	url, ok := m.Remotes[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrRemoteNotFound, name)
	}
	return url, nil
}

// LogEntry is a single entry captured by MockLogger.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
}

// MockLogger captures log entries in memory.
type MockLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

// Ensure MockLogger implements domain.Logger interface.
var _ domain.Logger = (*MockLogger)(nil)

func (m *MockLogger) add(level, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{Level: level, Category: category, Msg: msg})
}

// Debug records a debug entry.
func (m *MockLogger) Debug(category, msg string) { m.add("debug", category, msg) }

// Info records an info entry.
func (m *MockLogger) Info(category, msg string) { m.add("info", category, msg) }

// Warn records a warn entry.
func (m *MockLogger) Warn(category, msg string) { m.add("warn", category, msg) }

// Error records an error entry.
func (m *MockLogger) Error(category, msg string) { m.add("error", category, msg) }
