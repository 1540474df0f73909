package usecase_test

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"testing"

	"github.com/runoshun/git-weblink/internal/domain"
	"github.com/runoshun/git-weblink/internal/testutil"
	"github.com/runoshun/git-weblink/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 4, 4))))
	return buf.Bytes()
}

func TestDataURI_Execute(t *testing.T) {
	uc := usecase.NewDataURI()

	out, err := uc.Execute(context.Background(), usecase.DataURIInput{
		ContentType: "application/json",
		Data:        []byte(`{"test":true}`),
	})

	require.NoError(t, err)
	assert.Equal(t, "data:application/json;base64,eyJ0ZXN0Ijp0cnVlfQ==", out.URI)
}

func TestConvertImage_Execute(t *testing.T) {
	t.Run("uses configured format", func(t *testing.T) {
		loader := testutil.NewMockConfigLoader()
		loader.Config.Image.Format = "image/jpeg"
		logger := &testutil.MockLogger{}
		uc := usecase.NewConvertImage(loader, logger)

		out, err := uc.Execute(context.Background(), usecase.ConvertImageInput{Data: pngBytes(t)})

		require.NoError(t, err)
		assert.Equal(t, "image/png", out.SourceType)
		assert.Equal(t, "image/jpeg", out.TargetType)
		assert.False(t, out.Unchanged)
		assert.NotEmpty(t, out.Data)
		require.Len(t, logger.Entries, 1)
		assert.Equal(t, "image", logger.Entries[0].Category)
	})

	t.Run("explicit target matching source is unchanged", func(t *testing.T) {
		uc := usecase.NewConvertImage(testutil.NewMockConfigLoader(), domain.NopLogger{})
		src := pngBytes(t)

		out, err := uc.Execute(context.Background(), usecase.ConvertImageInput{Data: src, TargetType: "image/png"})

		require.NoError(t, err)
		assert.True(t, out.Unchanged)
		assert.Equal(t, src, out.Data)
	})

	t.Run("undecodable input", func(t *testing.T) {
		uc := usecase.NewConvertImage(testutil.NewMockConfigLoader(), domain.NopLogger{})

		_, err := uc.Execute(context.Background(), usecase.ConvertImageInput{Data: []byte("nope")})

		assert.ErrorIs(t, err, domain.ErrUnsupportedImage)
	})
}
