// Package git provides read access to the surrounding git repository.
package git

import (
	"errors"
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/storage/filesystem"
	"github.com/runoshun/git-weblink/internal/domain"
)

// Ensure Client implements domain.Git.
var _ domain.Git = (*Client)(nil)

// Client provides git operations backed by go-git.
type Client struct {
	repo     *gogit.Repository
	repoRoot string // Repository root (worktree root)
	gitDir   string // Common .git directory
}

// NewClient opens the repository containing dir, searching parent directories.
// Returns domain.ErrNotGitRepository if dir is not inside a repository.
func NewClient(dir string) (*Client, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, domain.ErrNotGitRepository
		}
		return nil, fmt.Errorf("open repository: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		// Bare repositories have no worktree and no place for weblink files.
		return nil, domain.ErrNotGitRepository
	}
	repoRoot := wt.Filesystem.Root()

	gitDir := filepath.Join(repoRoot, ".git")
	if fs, ok := repo.Storer.(*filesystem.Storage); ok {
		gitDir = fs.Filesystem().Root()
	}

	return &Client{
		repo:     repo,
		repoRoot: repoRoot,
		gitDir:   gitDir,
	}, nil
}

// RepoRoot returns the repository root directory.
func (c *Client) RepoRoot() string {
	return c.repoRoot
}

// GitDir returns the .git directory path.
func (c *Client) GitDir() string {
	return c.gitDir
}

// RemoteURL returns the first URL of the named remote.
func (c *Client) RemoteURL(name string) (string, error) {
	remote, err := c.repo.Remote(name)
	if err != nil {
		if errors.Is(err, gogit.ErrRemoteNotFound) {
			return "", fmt.Errorf("%w: %s", domain.ErrRemoteNotFound, name)
		}
		return "", fmt.Errorf("read remote %s: %w", name, err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("%w: %s has no url", domain.ErrRemoteNotFound, name)
	}
	return urls[0], nil
}
