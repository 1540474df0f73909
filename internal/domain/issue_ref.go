package domain

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// IssueType distinguishes issue links from pull request links.
type IssueType string

// Issue types recognized in hrefs.
const (
	IssueTypeIssues IssueType = "issues"
	IssueTypePulls  IssueType = "pulls"
)

// IsValid returns true if t is a known issue type.
func (t IssueType) IsValid() bool {
	return t == IssueTypeIssues || t == IssueTypePulls
}

// IssueRef identifies an issue or pull request.
// Either all fields are set or none is.
type IssueRef struct {
	Owner string    `json:"owner,omitempty"`
	Repo  string    `json:"repo,omitempty"`
	Type  IssueType `json:"type,omitempty"`
	Index string    `json:"index,omitempty"`
}

// Matched reports whether the ref was extracted from a matching href.
func (r IssueRef) Matched() bool {
	return r.Type != ""
}

// Path returns the forge path of the ref: /{owner}/{repo}/{type}/{index}.
func (r IssueRef) Path() string {
	if !r.Matched() {
		return ""
	}
	return "/" + r.Owner + "/" + r.Repo + "/" + string(r.Type) + "/" + r.Index
}

// URL joins the ref path onto baseURL, keeping any sub-path of baseURL.
func (r IssueRef) URL(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + r.Path()
}

var schemePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.\-]*://`)

// ParseIssueHref extracts owner, repo, type and index from an issue or pull
// request href. The href may be relative or absolute and may carry any number
// of leading sub-path segments; only the last four path segments are matched.
// A non-matching href yields the zero IssueRef.
func ParseIssueHref(href string) IssueRef {
	p := hrefPath(href)
	segs := strings.Split(strings.TrimRight(p, "/"), "/")
	if len(segs) < 4 {
		return IssueRef{}
	}
	tail := segs[len(segs)-4:]
	owner, repo, typ, index := tail[0], tail[1], IssueType(tail[2]), tail[3]
	if owner == "" || repo == "" || !typ.IsValid() || !isDigits(index) {
		return IssueRef{}
	}
	return IssueRef{Owner: owner, Repo: repo, Type: typ, Index: index}
}

// hrefPath drops fragment, query, scheme and host from href.
func hrefPath(href string) string {
	if i := strings.IndexByte(href, '#'); i >= 0 {
		href = href[:i]
	}
	if i := strings.IndexByte(href, '?'); i >= 0 {
		href = href[:i]
	}
	rest := ""
	switch {
	case schemePattern.MatchString(href):
		rest = href[strings.Index(href, "://")+3:]
	case strings.HasPrefix(href, "//"):
		rest = href[2:]
	default:
		return href
	}
	// rest is host[:port][/path]
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		return rest[i:]
	}
	return ""
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// NewIssueRef builds a ref from its parts, validating type and index.
func NewIssueRef(owner, repo string, typ IssueType, index int) (IssueRef, error) {
	if !typ.IsValid() {
		return IssueRef{}, fmt.Errorf("%w: %q", ErrInvalidIssueType, typ)
	}
	if index <= 0 {
		return IssueRef{}, fmt.Errorf("%w: %d", ErrInvalidIndex, index)
	}
	if owner == "" || repo == "" {
		return IssueRef{}, fmt.Errorf("%w: owner and repo are required", ErrInvalidRemote)
	}
	return IssueRef{Owner: owner, Repo: repo, Type: typ, Index: strconv.Itoa(index)}, nil
}

// RepoRemote is a repository location parsed from a git remote URL.
type RepoRemote struct {
	BaseURL string // Web base URL of the forge, sub-path included, with trailing slash
	Host    string
	Owner   string
	Repo    string
}

var scpRemotePattern = regexp.MustCompile(`^(?:[^@/]+@)?([^:/]+):(.+)$`)

// ParseRemoteURL parses a git remote URL in https, ssh or scp-like form.
//
// Examples:
//   - https://example.com/forge/owner/repo.git
//   - ssh://git@example.com:2222/owner/repo.git
//   - git@example.com:owner/repo.git
func ParseRemoteURL(remote string) (RepoRemote, error) {
	remote = strings.TrimSpace(remote)
	if remote == "" {
		return RepoRemote{}, fmt.Errorf("%w: empty", ErrInvalidRemote)
	}

	if !strings.Contains(remote, "://") {
		m := scpRemotePattern.FindStringSubmatch(remote)
		if m == nil {
			return RepoRemote{}, fmt.Errorf("%w: %s", ErrInvalidRemote, remote)
		}
		owner, repo, _, ok := splitRepoPath(m[2])
		if !ok {
			return RepoRemote{}, fmt.Errorf("%w: %s", ErrInvalidRemote, remote)
		}
		return RepoRemote{
			BaseURL: "https://" + m[1] + "/",
			Host:    m[1],
			Owner:   owner,
			Repo:    repo,
		}, nil
	}

	u, err := url.Parse(remote)
	if err != nil {
		return RepoRemote{}, fmt.Errorf("%w: %v", ErrInvalidRemote, err)
	}
	if u.Host == "" {
		return RepoRemote{}, fmt.Errorf("%w: %s", ErrInvalidRemote, remote)
	}
	owner, repo, prefix, ok := splitRepoPath(u.Path)
	if !ok {
		return RepoRemote{}, fmt.Errorf("%w: %s", ErrInvalidRemote, remote)
	}

	r := RepoRemote{Host: u.Hostname(), Owner: owner, Repo: repo}
	switch u.Scheme {
	case "http", "https":
		r.BaseURL = u.Scheme + "://" + u.Host + prefix + "/"
	case "ssh", "git", "git+ssh":
		r.BaseURL = "https://" + u.Hostname() + "/"
	default:
		return RepoRemote{}, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidRemote, u.Scheme)
	}
	return r, nil
}

// splitRepoPath returns owner and repo from the last two segments of p and
// the leading path before them (no trailing slash).
func splitRepoPath(p string) (owner, repo, prefix string, ok bool) {
	p = strings.Trim(p, "/")
	p = strings.TrimSuffix(p, ".git")
	segs := strings.Split(p, "/")
	if len(segs) < 2 {
		return "", "", "", false
	}
	owner, repo = segs[len(segs)-2], segs[len(segs)-1]
	if owner == "" || repo == "" {
		return "", "", "", false
	}
	if len(segs) > 2 {
		prefix = "/" + strings.Join(segs[:len(segs)-2], "/")
	}
	return owner, repo, prefix, true
}
