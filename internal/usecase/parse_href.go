package usecase

import (
	"context"

	"github.com/runoshun/git-weblink/internal/domain"
)

// ParseHrefInput contains the input for the ParseHref use case.
type ParseHrefInput struct {
	Hrefs []string
}

// HrefResult pairs an href with the reference parsed from it.
type HrefResult struct {
	Href string          `json:"href"`
	Ref  domain.IssueRef `json:"ref"`
}

// ParseHrefOutput contains the output of the ParseHref use case.
type ParseHrefOutput struct {
	Results []HrefResult
	Matched int
}

// ParseHref extracts issue and pull request references from hrefs.
type ParseHref struct {
	logger domain.Logger
}

// NewParseHref creates a new ParseHref use case.
func NewParseHref(logger domain.Logger) *ParseHref {
	return &ParseHref{logger: logger}
}

// Execute parses every href. Non-matching hrefs yield a zero reference.
func (uc *ParseHref) Execute(_ context.Context, in ParseHrefInput) (*ParseHrefOutput, error) {
	out := &ParseHrefOutput{Results: make([]HrefResult, 0, len(in.Hrefs))}
	for _, href := range in.Hrefs {
		ref := domain.ParseIssueHref(href)
		if ref.Matched() {
			out.Matched++
		} else {
			uc.logger.Debug("href", "no issue reference in "+href)
		}
		out.Results = append(out.Results, HrefResult{Href: href, Ref: ref})
	}
	return out, nil
}
