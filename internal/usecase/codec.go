// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/git-weblink/internal/domain"
	"github.com/runoshun/git-weblink/internal/infra/base64url"
)

// EncodeInput contains the input for the Encode use case.
type EncodeInput struct {
	Data []byte
}

// EncodeOutput contains the output of the Encode use case.
type EncodeOutput struct {
	Encoded string
}

// Encode encodes bytes with the URL-safe Base64 codec.
type Encode struct {
	logger domain.Logger
}

// NewEncode creates a new Encode use case.
func NewEncode(logger domain.Logger) *Encode {
	return &Encode{logger: logger}
}

// Execute encodes in.Data.
func (uc *Encode) Execute(_ context.Context, in EncodeInput) (*EncodeOutput, error) {
	out := &EncodeOutput{Encoded: base64url.Encode(in.Data)}
	uc.logger.Debug("codec", fmt.Sprintf("encoded %d bytes", len(in.Data)))
	return out, nil
}

// DecodeInput contains the input for the Decode use case.
type DecodeInput struct {
	Encoded string
}

// DecodeOutput contains the output of the Decode use case.
type DecodeOutput struct {
	Data []byte
}

// Decode decodes URL-safe or standard Base64.
type Decode struct {
	logger domain.Logger
}

// NewDecode creates a new Decode use case.
func NewDecode(logger domain.Logger) *Decode {
	return &Decode{logger: logger}
}

// Execute decodes in.Encoded.
func (uc *Decode) Execute(_ context.Context, in DecodeInput) (*DecodeOutput, error) {
	data, err := base64url.Decode(in.Encoded)
	if err != nil {
		uc.logger.Warn("codec", err.Error())
		return nil, err
	}
	uc.logger.Debug("codec", fmt.Sprintf("decoded %d bytes", len(data)))
	return &DecodeOutput{Data: data}, nil
}
