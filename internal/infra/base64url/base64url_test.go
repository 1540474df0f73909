package base64url

import (
	"crypto/rand"
	"strings"
	"testing"

	"github.com/runoshun/git-weblink/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"slash becomes underscore", "AA?", "QUE_"},
		{"plus becomes dash", "AA~", "QUF-"},
		{"two padding chars stripped", "a", "YQ"},
		{"one padding char stripped", "ab", "YWI"},
		{"no padding", "abc", "YWJj"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Encode([]byte(tt.input)))
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"url-safe underscore", "QUE_", "AA?"},
		{"url-safe dash", "QUF-", "AA~"},
		{"standard slash", "QUE/", "AA?"},
		{"standard plus", "QUF+", "AA~"},
		{"unpadded", "YQ", "a"},
		{"padded", "YQ==", "a"},
		{"single padding", "YWI=", "ab"},
		{"mixed alphabets", "-_+/", "\xfb\xff\xbf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.input)
			require.NoError(t, err)
			assert.Equal(t, []byte(tt.want), got)
		})
	}
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"short padding", "YQ="},
		{"excess padding", "YQ==="},
		{"padding on complete block", "YWJj="},
		{"padding in the middle", "Y=Q"},
		{"truncated block", "YWJjZ"},
		{"whitespace", "YW Jj"},
		{"illegal character", "YW*j"},
		{"only padding", "=="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidEncoding)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for n := 0; n < 64; n++ {
		buf := make([]byte, n)
		_, err := rand.Read(buf)
		require.NoError(t, err)

		encoded := Encode(buf)
		assert.NotContains(t, encoded, "+")
		assert.NotContains(t, encoded, "/")
		assert.NotContains(t, encoded, "=")

		decoded, err := Decode(encoded)
		require.NoError(t, err)
		assert.Equal(t, buf, decoded)

		if rem := len(encoded) % 4; rem > 0 {
			padded, err := Decode(encoded + strings.Repeat("=", 4-rem))
			require.NoError(t, err)
			assert.Equal(t, decoded, padded)
		}
	}
}
