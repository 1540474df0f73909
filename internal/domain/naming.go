package domain

import "path/filepath"

// ConfigFileName is the name of the configuration file.
const ConfigFileName = "config.toml"

// RepoWeblinkDir returns the weblink directory inside a repository's .git directory.
func RepoWeblinkDir(gitDir string) string {
	return filepath.Join(gitDir, "weblink")
}

// GlobalWeblinkDir returns the global config directory under configHome.
func GlobalWeblinkDir(configHome string) string {
	return filepath.Join(configHome, "git-weblink")
}

// GlobalLogPath returns the path to the log file.
func GlobalLogPath(weblinkDir string) string {
	return filepath.Join(weblinkDir, "logs", "weblink.log")
}
