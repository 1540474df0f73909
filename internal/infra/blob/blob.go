// Package blob provides helpers for binary payloads pasted into the forge UI:
// data URI encoding and image format conversion.
package blob

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"
	"strings"

	"github.com/runoshun/git-weblink/internal/domain"

	// Decoders for formats browsers hand over but forges do not store.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Supported target MIME types for ConvertImage.
const (
	TypePNG  = "image/png"
	TypeJPEG = "image/jpeg"
	TypeGIF  = "image/gif"
)

// Options tunes image encoding.
type Options struct {
	JPEGQuality int // 1-100; zero means jpeg.DefaultQuality
}

type encodeFunc func(w io.Writer, img image.Image, opts Options) error

var encoders = map[string]encodeFunc{
	TypePNG: func(w io.Writer, img image.Image, _ Options) error {
		return png.Encode(w, img)
	},
	TypeJPEG: func(w io.Writer, img image.Image, opts Options) error {
		q := opts.JPEGQuality
		if q == 0 {
			q = jpeg.DefaultQuality
		}
		return jpeg.Encode(w, img, &jpeg.Options{Quality: q})
	},
	TypeGIF: func(w io.Writer, img image.Image, _ Options) error {
		return gif.Encode(w, img, nil)
	},
}

// DetectContentType returns the MIME type of data without parameters.
func DetectContentType(data []byte) string {
	ct := http.DetectContentType(data)
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	return strings.TrimSpace(ct)
}

// DataURI returns data as a base64 data URI. An empty contentType is sniffed.
func DataURI(contentType string, data []byte) string {
	if contentType == "" {
		contentType = DetectContentType(data)
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// ConvertImage re-encodes an image into targetType.
// Input already in targetType is returned unchanged.
func ConvertImage(data []byte, targetType string, opts Options) ([]byte, error) {
	encode, ok := encoders[targetType]
	if !ok {
		return nil, fmt.Errorf("%w: cannot encode %s", domain.ErrUnsupportedImage, targetType)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnsupportedImage, err)
	}
	if "image/"+format == targetType {
		return data, nil
	}

	var buf bytes.Buffer
	if err := encode(&buf, img, opts); err != nil {
		return nil, fmt.Errorf("encode %s: %w", targetType, err)
	}
	return buf.Bytes(), nil
}

// SupportedTargets returns the MIME types ConvertImage can produce.
func SupportedTargets() []string {
	return []string{TypePNG, TypeJPEG, TypeGIF}
}
