package usecase_test

import (
	"context"
	"testing"

	"github.com/runoshun/git-weblink/internal/domain"
	"github.com/runoshun/git-weblink/internal/testutil"
	"github.com/runoshun/git-weblink/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHref_Execute(t *testing.T) {
	logger := &testutil.MockLogger{}
	uc := usecase.NewParseHref(logger)

	out, err := uc.Execute(context.Background(), usecase.ParseHrefInput{
		Hrefs: []string{
			"/sub/owner/repo/issues/3",
			"/just/two/segments",
			"https://example.com/owner/repo/pulls/7?x=1",
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, out.Matched)
	require.Len(t, out.Results, 3)
	assert.Equal(t, domain.IssueRef{Owner: "owner", Repo: "repo", Type: domain.IssueTypeIssues, Index: "3"}, out.Results[0].Ref)
	assert.False(t, out.Results[1].Ref.Matched())
	assert.Equal(t, "/just/two/segments", out.Results[1].Href)
	assert.Equal(t, domain.IssueTypePulls, out.Results[2].Ref.Type)
	assert.Equal(t, "7", out.Results[2].Ref.Index)

	require.Len(t, logger.Entries, 1)
	assert.Contains(t, logger.Entries[0].Msg, "/just/two/segments")
}

func TestParseHref_Execute_Empty(t *testing.T) {
	uc := usecase.NewParseHref(domain.NopLogger{})

	out, err := uc.Execute(context.Background(), usecase.ParseHrefInput{})

	require.NoError(t, err)
	assert.Empty(t, out.Results)
	assert.Zero(t, out.Matched)
}
