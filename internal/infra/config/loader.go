// Package config provides configuration loading functionality.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/git-weblink/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	weblinkDir    string // Path to .git/weblink directory; empty outside a repository
	globalConfDir string // Path to global config directory (e.g., ~/.config/git-weblink)
}

// NewLoader creates a new Loader.
func NewLoader(weblinkDir string) *Loader {
	return &Loader{
		weblinkDir:    weblinkDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(weblinkDir, globalConfDir string) *Loader {
	return &Loader{
		weblinkDir:    weblinkDir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalWeblinkDir(configHome)
}

// Load returns the merged configuration (default <- global <- repo).
// Repository config takes precedence over global config.
func (l *Loader) Load() (*domain.Config, error) {
	global, err := l.LoadGlobal()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	repo, err := l.LoadRepo()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	base := domain.NewDefaultConfig()
	if global != nil {
		base = mergeConfigs(base, global)
	}
	if repo != nil {
		base = mergeConfigs(base, repo)
	}

	base.Validate()
	return base, nil
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
}

// LoadRepo returns only the repository configuration.
func (l *Loader) LoadRepo() (*domain.Config, error) {
	if l.weblinkDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.weblinkDir, domain.ConfigFileName))
}

// loadFile loads a configuration from a file.
// Unknown keys do not fail the load; they are reported as warnings.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	res := &domain.Config{}
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	err = dec.Decode(res)

	var strictErr *toml.StrictMissingError
	switch {
	case err == nil:
		return res, nil
	case errors.As(err, &strictErr):
		res = &domain.Config{}
		if err := toml.Unmarshal(data, res); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		for _, e := range strictErr.Errors {
			res.Warnings = append(res.Warnings, fmt.Sprintf("unknown key in %s: %s", path, strings.Join(e.Key(), ".")))
		}
		return res, nil
	default:
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
}

// mergeConfigs merges override into base. Non-empty override values win.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := *base
	result.Warnings = append(append([]string{}, base.Warnings...), override.Warnings...)

	if override.Server.AppURL != "" {
		result.Server.AppURL = override.Server.AppURL
	}
	if override.Server.Remote != "" {
		result.Server.Remote = override.Server.Remote
	}
	if override.Locale.Lang != "" {
		result.Locale.Lang = override.Locale.Lang
	}
	if override.Image.Format != "" {
		result.Image.Format = override.Image.Format
	}
	if override.Image.JPEGQuality != 0 {
		result.Image.JPEGQuality = override.Image.JPEGQuality
	}
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}

	return &result
}
