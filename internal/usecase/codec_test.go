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

func TestEncode_Execute(t *testing.T) {
	logger := &testutil.MockLogger{}
	uc := usecase.NewEncode(logger)

	out, err := uc.Execute(context.Background(), usecase.EncodeInput{Data: []byte("AA?")})

	require.NoError(t, err)
	assert.Equal(t, "QUE_", out.Encoded)
	require.Len(t, logger.Entries, 1)
	assert.Equal(t, "codec", logger.Entries[0].Category)
}

func TestDecode_Execute(t *testing.T) {
	t.Run("decodes padded and unpadded input", func(t *testing.T) {
		uc := usecase.NewDecode(&testutil.MockLogger{})

		for _, in := range []string{"YQ", "YQ=="} {
			out, err := uc.Execute(context.Background(), usecase.DecodeInput{Encoded: in})
			require.NoError(t, err)
			assert.Equal(t, []byte("a"), out.Data)
		}
	})

	t.Run("logs and returns invalid encoding", func(t *testing.T) {
		logger := &testutil.MockLogger{}
		uc := usecase.NewDecode(logger)

		_, err := uc.Execute(context.Background(), usecase.DecodeInput{Encoded: "YQ="})

		assert.ErrorIs(t, err, domain.ErrInvalidEncoding)
		require.Len(t, logger.Entries, 1)
		assert.Equal(t, "warn", logger.Entries[0].Level)
	})
}
