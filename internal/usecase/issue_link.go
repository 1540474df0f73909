package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/git-weblink/internal/domain"
)

// IssueLinkInput contains the input for the IssueLink use case.
type IssueLinkInput struct {
	Type   domain.IssueType
	Remote string // Remote name; empty uses server.remote from config
	Owner  string // Overrides the owner derived from the remote
	Repo   string // Overrides the repository derived from the remote
	Index  int
}

// IssueLinkOutput contains the output of the IssueLink use case.
type IssueLinkOutput struct {
	URL string
	Ref domain.IssueRef
}

// IssueLink builds the web URL of an issue or pull request in the current repository.
type IssueLink struct {
	git          domain.Git // nil outside a repository
	configLoader domain.ConfigLoader
	logger       domain.Logger
}

// NewIssueLink creates a new IssueLink use case.
func NewIssueLink(git domain.Git, configLoader domain.ConfigLoader, logger domain.Logger) *IssueLink {
	return &IssueLink{
		git:          git,
		configLoader: configLoader,
		logger:       logger,
	}
}

// Execute resolves owner and repository and returns the link.
// The base URL is server.app_url, or the web URL of the remote host when unset.
func (uc *IssueLink) Execute(_ context.Context, in IssueLinkInput) (*IssueLinkOutput, error) {
	cfg, err := uc.configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	owner, repo := in.Owner, in.Repo
	baseURL := ""
	if cfg.Server.AppURL != "" {
		baseURL = cfg.AppBaseURL()
	}

	if owner == "" || repo == "" || baseURL == "" {
		remote, err := uc.resolveRemote(in.Remote, cfg)
		if err != nil {
			return nil, err
		}
		if owner == "" {
			owner = remote.Owner
		}
		if repo == "" {
			repo = remote.Repo
		}
		if baseURL == "" {
			baseURL = remote.BaseURL
		}
	}

	ref, err := domain.NewIssueRef(owner, repo, in.Type, in.Index)
	if err != nil {
		return nil, err
	}

	link := ref.URL(baseURL)
	uc.logger.Info("link", link)
	return &IssueLinkOutput{URL: link, Ref: ref}, nil
}

func (uc *IssueLink) resolveRemote(name string, cfg *domain.Config) (domain.RepoRemote, error) {
	if uc.git == nil {
		return domain.RepoRemote{}, domain.ErrNotGitRepository
	}
	if name == "" {
		name = cfg.Server.Remote
	}
	rawURL, err := uc.git.RemoteURL(name)
	if err != nil {
		return domain.RepoRemote{}, err
	}
	return domain.ParseRemoteURL(rawURL)
}
