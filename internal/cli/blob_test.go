package cli

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/git-weblink/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataURICommand(t *testing.T) {
	c, _, _ := newTestContainer(t)

	stdout, _, err := execute(t, c, `{"test":true}`, "datauri", "--type", "application/json")

	require.NoError(t, err)
	assert.Equal(t, "data:application/json;base64,eyJ0ZXN0Ijp0cnVlfQ==\n", stdout)
}

func TestDataURICommand_SniffsFile(t *testing.T) {
	c, _, _ := newTestContainer(t)
	path := filepath.Join(t.TempDir(), "note.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	stdout, _, err := execute(t, c, "", "datauri", path)

	require.NoError(t, err)
	assert.Equal(t, "data:text/plain;base64,aGVsbG8=\n", stdout)
}

func TestConvertCommand(t *testing.T) {
	c, _, _ := newTestContainer(t)
	dir := t.TempDir()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))))
	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "out.jpg")
	require.NoError(t, os.WriteFile(in, buf.Bytes(), 0o644))

	stdout, _, err := execute(t, c, "", "convert", in, out, "--to", "image/jpeg")

	require.NoError(t, err)
	assert.Contains(t, stdout, "source  image/png\n")
	assert.Contains(t, stdout, "target  image/jpeg\n")
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff, 0xd8}, data[:2])
}

func TestConvertCommand_Undecodable(t *testing.T) {
	c, _, _ := newTestContainer(t)
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(in, []byte("not an image"), 0o644))

	_, _, err := execute(t, c, "", "convert", in, filepath.Join(dir, "out.png"))

	assert.ErrorIs(t, err, domain.ErrUnsupportedImage)
	assert.NoFileExists(t, filepath.Join(dir, "out.png"))
}

func TestStripTagsCommand(t *testing.T) {
	c, _, _ := newTestContainer(t)

	stdout, _, err := execute(t, c, "", "strip-tags", "<h1>Title</h1>")

	require.NoError(t, err)
	assert.Equal(t, "Title\n", stdout)
}
