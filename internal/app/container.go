// Package app provides the dependency injection container for the application.
package app

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/runoshun/git-weblink/internal/domain"
	"github.com/runoshun/git-weblink/internal/infra/config"
	"github.com/runoshun/git-weblink/internal/infra/git"
	"github.com/runoshun/git-weblink/internal/infra/logging"
	"github.com/runoshun/git-weblink/internal/usecase"
)

// Config holds the application configuration paths.
// All fields are empty outside a git repository.
type Config struct {
	RepoRoot   string // Root directory of the git repository
	GitDir     string // Path to .git directory
	WeblinkDir string // Path to .git/weblink directory
}

// newConfig creates a new Config from the git client.
func newConfig(gitClient *git.Client) Config {
	gitDir := gitClient.GitDir()
	return Config{
		RepoRoot:   gitClient.RepoRoot(),
		GitDir:     gitDir,
		WeblinkDir: domain.RepoWeblinkDir(gitDir),
	}
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Git           domain.Git // nil outside a git repository
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	FileLogger    domain.Logger

	// Pointer fields
	Logger *slog.Logger

	// Configuration
	Config Config
}

// New creates a new Container by detecting the git repository from the given directory.
// Outside a repository the container is still usable; only the git-backed
// parts (remote lookup, repository config, file log) are absent.
func New(dir string) (*Container, error) {
	var (
		cfg    Config
		gitDep domain.Git
	)
	gitClient, err := git.NewClient(dir)
	switch {
	case err == nil:
		cfg = newConfig(gitClient)
		gitDep = gitClient
	case errors.Is(err, domain.ErrNotGitRepository):
	default:
		return nil, err
	}

	configLoader := config.NewLoader(cfg.WeblinkDir)
	appConfig, loadErr := configLoader.Load()
	if loadErr != nil {
		// Commands that read the config report the error themselves
		appConfig = domain.NewDefaultConfig()
	}
	level := logging.ParseLevel(appConfig.Log.Level)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	if loadErr != nil {
		logger.Debug("using default config", "error", loadErr)
	}

	return &Container{
		Git:           gitDep,
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(cfg.WeblinkDir),
		FileLogger:    logging.New(cfg.WeblinkDir, level),
		Logger:        logger,
		Config:        cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, gitDep domain.Git, loader domain.ConfigLoader, manager domain.ConfigManager, fileLogger domain.Logger) *Container {
	if fileLogger == nil {
		fileLogger = domain.NopLogger{}
	}
	return &Container{
		Git:           gitDep,
		ConfigLoader:  loader,
		ConfigManager: manager,
		FileLogger:    fileLogger,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		Config:        cfg,
	}
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if closer, ok := c.FileLogger.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// UseCase factory methods

// EncodeUseCase returns a new Encode use case.
func (c *Container) EncodeUseCase() *usecase.Encode {
	return usecase.NewEncode(c.FileLogger)
}

// DecodeUseCase returns a new Decode use case.
func (c *Container) DecodeUseCase() *usecase.Decode {
	return usecase.NewDecode(c.FileLogger)
}

// ParseHrefUseCase returns a new ParseHref use case.
func (c *Container) ParseHrefUseCase() *usecase.ParseHref {
	return usecase.NewParseHref(c.FileLogger)
}

// IssueLinkUseCase returns a new IssueLink use case.
func (c *Container) IssueLinkUseCase() *usecase.IssueLink {
	return usecase.NewIssueLink(c.Git, c.ConfigLoader, c.FileLogger)
}

// ResolveURLUseCase returns a new ResolveURL use case.
func (c *Container) ResolveURLUseCase() *usecase.ResolveURL {
	return usecase.NewResolveURL(c.ConfigLoader)
}

// DataURIUseCase returns a new DataURI use case.
func (c *Container) DataURIUseCase() *usecase.DataURI {
	return usecase.NewDataURI()
}

// ConvertImageUseCase returns a new ConvertImage use case.
func (c *Container) ConvertImageUseCase() *usecase.ConvertImage {
	return usecase.NewConvertImage(c.ConfigLoader, c.FileLogger)
}

// StripTagsUseCase returns a new StripTags use case.
func (c *Container) StripTagsUseCase() *usecase.StripTags {
	return usecase.NewStripTags()
}

// TranslateDateUseCase returns a new TranslateDate use case.
func (c *Container) TranslateDateUseCase() *usecase.TranslateDate {
	return usecase.NewTranslateDate(c.ConfigLoader)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager, c.FileLogger)
}
