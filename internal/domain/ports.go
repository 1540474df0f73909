package domain

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (default <- global <- repo).
	Load() (*Config, error)

	// LoadGlobal returns only the global configuration.
	LoadGlobal() (*Config, error)

	// LoadRepo returns only the repository configuration.
	LoadRepo() (*Config, error)
}

// ConfigManager manages configuration files.
type ConfigManager interface {
	// GetRepoConfigInfo returns information about the repository config file.
	GetRepoConfigInfo() ConfigInfo

	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// InitRepoConfig creates a repository config file from the template.
	InitRepoConfig(cfg *Config, force bool) (string, error)

	// InitGlobalConfig creates a global config file from the template.
	InitGlobalConfig(cfg *Config, force bool) (string, error)
}

// Git provides read access to the surrounding repository.
type Git interface {
	// RepoRoot returns the repository root directory.
	RepoRoot() string

	// GitDir returns the .git directory path.
	GitDir() string

	// RemoteURL returns the first URL configured for the named remote.
	// Returns ErrRemoteNotFound if the remote does not exist.
	RemoteURL(name string) (string, error)
}

// Logger writes operational log entries.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// NopLogger discards all log entries.
type NopLogger struct{}

// Debug implements Logger.
func (NopLogger) Debug(_, _ string) {}

// Info implements Logger.
func (NopLogger) Info(_, _ string) {}

// Warn implements Logger.
func (NopLogger) Warn(_, _ string) {}

// Error implements Logger.
func (NopLogger) Error(_, _ string) {}
