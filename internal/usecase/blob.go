package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/git-weblink/internal/domain"
	"github.com/runoshun/git-weblink/internal/infra/blob"
)

// DataURIInput contains the input for the DataURI use case.
type DataURIInput struct {
	ContentType string // Empty sniffs the type from Data
	Data        []byte
}

// DataURIOutput contains the output of the DataURI use case.
type DataURIOutput struct {
	URI string
}

// DataURI wraps a payload in a base64 data URI.
type DataURI struct{}

// NewDataURI creates a new DataURI use case.
func NewDataURI() *DataURI {
	return &DataURI{}
}

// Execute builds the data URI.
func (uc *DataURI) Execute(_ context.Context, in DataURIInput) (*DataURIOutput, error) {
	return &DataURIOutput{URI: blob.DataURI(in.ContentType, in.Data)}, nil
}

// ConvertImageInput contains the input for the ConvertImage use case.
type ConvertImageInput struct {
	TargetType string // Empty uses image.format from config
	Data       []byte
}

// ConvertImageOutput contains the output of the ConvertImage use case.
type ConvertImageOutput struct {
	SourceType string
	TargetType string
	Data       []byte
	Unchanged  bool // Input was already in the target type
}

// ConvertImage re-encodes an image for upload.
type ConvertImage struct {
	configLoader domain.ConfigLoader
	logger       domain.Logger
}

// NewConvertImage creates a new ConvertImage use case.
func NewConvertImage(configLoader domain.ConfigLoader, logger domain.Logger) *ConvertImage {
	return &ConvertImage{
		configLoader: configLoader,
		logger:       logger,
	}
}

// Execute converts in.Data to the target type.
func (uc *ConvertImage) Execute(_ context.Context, in ConvertImageInput) (*ConvertImageOutput, error) {
	cfg, err := uc.configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	target := in.TargetType
	if target == "" {
		target = cfg.Image.Format
	}
	source := blob.DetectContentType(in.Data)

	data, err := blob.ConvertImage(in.Data, target, blob.Options{JPEGQuality: cfg.Image.JPEGQuality})
	if err != nil {
		uc.logger.Warn("image", err.Error())
		return nil, err
	}

	uc.logger.Info("image", fmt.Sprintf("converted %s (%d bytes) to %s (%d bytes)", source, len(in.Data), target, len(data)))
	return &ConvertImageOutput{
		SourceType: source,
		TargetType: target,
		Data:       data,
		Unchanged:  source == target,
	}, nil
}
