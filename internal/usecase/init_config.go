package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/git-weblink/internal/domain"
)

// InitConfigInput contains the input for the InitConfig use case.
type InitConfigInput struct {
	Config *domain.Config // Values rendered into the template; nil uses defaults
	Global bool           // If true, initialize global config; otherwise repository config
	Force  bool           // Overwrite an existing file
}

// InitConfigOutput contains the output of the InitConfig use case.
type InitConfigOutput struct {
	Path string // Path to the created config file
}

// InitConfig generates a configuration file template.
type InitConfig struct {
	configManager domain.ConfigManager
	logger        domain.Logger
}

// NewInitConfig creates a new InitConfig use case.
func NewInitConfig(configManager domain.ConfigManager, logger domain.Logger) *InitConfig {
	return &InitConfig{
		configManager: configManager,
		logger:        logger,
	}
}

// Execute creates a configuration file with default template.
func (uc *InitConfig) Execute(_ context.Context, in InitConfigInput) (*InitConfigOutput, error) {
	cfg := in.Config
	if cfg == nil {
		cfg = domain.NewDefaultConfig()
	}

	var (
		path string
		err  error
	)
	if in.Global {
		path, err = uc.configManager.InitGlobalConfig(cfg, in.Force)
	} else {
		path, err = uc.configManager.InitRepoConfig(cfg, in.Force)
	}
	if err != nil {
		return nil, fmt.Errorf("init config: %w", err)
	}

	uc.logger.Info("config", "created "+path)
	return &InitConfigOutput{Path: path}, nil
}
