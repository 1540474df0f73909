package usecase

import (
	"context"

	"github.com/runoshun/git-weblink/internal/domain"
)

// StripTagsInput contains the input for the StripTags use case.
type StripTagsInput struct {
	HTML string
}

// StripTagsOutput contains the output of the StripTags use case.
type StripTagsOutput struct {
	Text string
}

// StripTags reduces rendered HTML to plain text.
type StripTags struct{}

// NewStripTags creates a new StripTags use case.
func NewStripTags() *StripTags {
	return &StripTags{}
}

// Execute strips all tags from in.HTML.
func (uc *StripTags) Execute(_ context.Context, in StripTagsInput) (*StripTagsOutput, error) {
	return &StripTagsOutput{Text: domain.StripTags(in.HTML)}, nil
}
