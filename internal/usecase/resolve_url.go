package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/git-weblink/internal/domain"
)

// ResolveURLInput contains the input for the ResolveURL use case.
type ResolveURLInput struct {
	URL string
}

// ResolveURLOutput contains the output of the ResolveURL use case.
type ResolveURLOutput struct {
	Absolute string
	Parts    domain.URLParts
	Basename string
	Extname  string
	Issue    domain.IssueRef
}

// ResolveURL makes a forge URL absolute and describes its parts.
type ResolveURL struct {
	configLoader domain.ConfigLoader
}

// NewResolveURL creates a new ResolveURL use case.
func NewResolveURL(configLoader domain.ConfigLoader) *ResolveURL {
	return &ResolveURL{configLoader: configLoader}
}

// Execute resolves in.URL against the configured app URL.
func (uc *ResolveURL) Execute(_ context.Context, in ResolveURLInput) (*ResolveURLOutput, error) {
	cfg, err := uc.configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	abs, err := domain.ToAbsoluteURL(cfg.AppBaseURL(), in.URL)
	if err != nil {
		return nil, err
	}
	parts, err := domain.ParseURL(abs)
	if err != nil {
		return nil, err
	}

	return &ResolveURLOutput{
		Absolute: abs,
		Parts:    parts,
		Basename: domain.Basename(parts.Pathname),
		Extname:  domain.Extname(parts.Pathname),
		Issue:    domain.ParseIssueHref(abs),
	}, nil
}
