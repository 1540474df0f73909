// Package base64url provides the URL-safe Base64 codec used in forge links.
//
// Encoded output uses the URL-safe alphabet (- and _ instead of + and /)
// and carries no padding. Decoding accepts either alphabet, padded or
// unpadded, so values produced by other Base64 encoders can be read back.
package base64url

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/runoshun/git-weblink/internal/domain"
)

// toStd maps the URL-safe alphabet back onto the standard one.
var toStd = strings.NewReplacer("-", "+", "_", "/")

// Encode returns the unpadded URL-safe Base64 encoding of b.
func Encode(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

// Decode decodes a URL-safe or standard Base64 string, padded or not.
// Padding, when present, must complete the input to a multiple of four
// characters. Structurally invalid input returns domain.ErrInvalidEncoding.
func Decode(s string) ([]byte, error) {
	body := strings.TrimRight(s, "=")
	padLen := len(s) - len(body)

	if padLen > 2 {
		return nil, fmt.Errorf("%w: too much padding", domain.ErrInvalidEncoding)
	}
	if padLen > 0 && len(s)%4 != 0 {
		return nil, fmt.Errorf("%w: padding does not match length %d", domain.ErrInvalidEncoding, len(body))
	}
	if len(body)%4 == 1 {
		return nil, fmt.Errorf("%w: truncated input of length %d", domain.ErrInvalidEncoding, len(body))
	}
	for i := 0; i < len(body); i++ {
		if !isAlphabet(body[i]) {
			return nil, fmt.Errorf("%w: illegal character %q at offset %d", domain.ErrInvalidEncoding, body[i], i)
		}
	}

	std := toStd.Replace(body)
	if rem := len(std) % 4; rem > 0 {
		std += strings.Repeat("=", 4-rem)
	}

	out, err := base64.StdEncoding.DecodeString(std)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidEncoding, err)
	}
	return out, nil
}

func isAlphabet(c byte) bool {
	switch {
	case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		return true
	case c == '-' || c == '_' || c == '+' || c == '/':
		return true
	}
	return false
}
