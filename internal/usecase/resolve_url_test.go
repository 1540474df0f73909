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

func TestResolveURL_Execute(t *testing.T) {
	t.Run("root-relative path uses default app url", func(t *testing.T) {
		uc := usecase.NewResolveURL(testutil.NewMockConfigLoader())

		out, err := uc.Execute(context.Background(), usecase.ResolveURLInput{URL: "/owner/repo/issues/1?tab=files#c2"})

		require.NoError(t, err)
		assert.Equal(t, "http://localhost:3000/owner/repo/issues/1?tab=files#c2", out.Absolute)
		assert.Equal(t, domain.URLParts{Pathname: "/owner/repo/issues/1", Search: "?tab=files", Hash: "#c2"}, out.Parts)
		assert.Equal(t, "1", out.Basename)
		assert.Equal(t, "", out.Extname)
		assert.True(t, out.Issue.Matched())
	})

	t.Run("protocol-relative takes app url scheme", func(t *testing.T) {
		loader := testutil.NewMockConfigLoader()
		loader.Config.Server.AppURL = "https://example.com/forge/"
		uc := usecase.NewResolveURL(loader)

		out, err := uc.Execute(context.Background(), usecase.ResolveURLInput{URL: "//cdn.example.com/assets/logo.svg"})

		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/assets/logo.svg", out.Absolute)
		assert.Equal(t, "logo.svg", out.Basename)
		assert.Equal(t, ".svg", out.Extname)
		assert.False(t, out.Issue.Matched())
	})

	t.Run("relative path is unsupported", func(t *testing.T) {
		uc := usecase.NewResolveURL(testutil.NewMockConfigLoader())

		_, err := uc.Execute(context.Background(), usecase.ResolveURLInput{URL: "path"})

		assert.ErrorIs(t, err, domain.ErrUnsupportedURL)
	})
}
