package domain

import (
	"fmt"
	"html"
	"net/url"
	"path"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// URLParts holds the location parts of a parsed URL.
type URLParts struct {
	Pathname string // Always starts with "/"
	Search   string // Query with leading "?", or empty
	Hash     string // Fragment with leading "#", or empty
}

// placeholderOrigin resolves relative input in ParseURL.
var placeholderOrigin = &url.URL{Scheme: "https", Host: "localhost", Path: "/"}

// ParseURL splits an absolute or relative URL into pathname, search and hash.
func ParseURL(s string) (URLParts, error) {
	ref, err := url.Parse(s)
	if err != nil {
		return URLParts{}, fmt.Errorf("%w: %v", ErrUnsupportedURL, err)
	}
	u := placeholderOrigin.ResolveReference(ref)

	parts := URLParts{Pathname: u.EscapedPath()}
	if parts.Pathname == "" {
		parts.Pathname = "/"
	}
	if u.RawQuery != "" {
		parts.Search = "?" + u.RawQuery
	}
	if frag := u.EscapedFragment(); frag != "" {
		parts.Hash = "#" + frag
	}
	return parts, nil
}

// ToAbsoluteURL makes s absolute against the origin of appURL.
// Absolute http(s) URLs are returned unchanged, protocol-relative URLs take
// the scheme of appURL, and root-relative paths are joined onto its origin.
// Any other input returns ErrUnsupportedURL.
func ToAbsoluteURL(appURL, s string) (string, error) {
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return s, nil
	}

	base, err := url.Parse(appURL)
	if err != nil || base.Host == "" {
		return "", fmt.Errorf("%w: app url %q", ErrUnsupportedURL, appURL)
	}
	scheme := base.Scheme
	if scheme == "" {
		scheme = "http"
	}

	if strings.HasPrefix(s, "//") {
		return scheme + ":" + s, nil
	}
	if s != "" && !strings.HasPrefix(s, "/") {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedURL, s)
	}
	return scheme + "://" + base.Host + s, nil
}

// Basename returns the last element of a slash-separated path.
func Basename(p string) string {
	if i := strings.LastIndexByte(p, '/'); i >= 0 {
		return p[i+1:]
	}
	return p
}

// Extname returns the extension of the last path element, dot included.
func Extname(p string) string {
	return path.Ext(Basename(p))
}

var stripPolicy = bluemonday.StrictPolicy()

// StripTags removes all HTML tags from s and returns the remaining text.
func StripTags(s string) string {
	return html.UnescapeString(stripPolicy.Sanitize(s))
}
