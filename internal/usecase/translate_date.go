package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/git-weblink/internal/domain"
)

// DateNameKind selects between month and weekday names.
type DateNameKind string

// Date name kinds.
const (
	DateNameMonth DateNameKind = "month"
	DateNameDay   DateNameKind = "day"
)

// TranslateDateInput contains the input for the TranslateDate use case.
type TranslateDateInput struct {
	Kind  DateNameKind
	Lang  string // Empty uses locale.lang from config
	Value int    // 0-based month, or weekday with 0 = Sunday
}

// TranslateDateOutput contains the output of the TranslateDate use case.
type TranslateDateOutput struct {
	Lang string
	Name string
}

// TranslateDate returns localized abbreviated month and weekday names.
type TranslateDate struct {
	configLoader domain.ConfigLoader
}

// NewTranslateDate creates a new TranslateDate use case.
func NewTranslateDate(configLoader domain.ConfigLoader) *TranslateDate {
	return &TranslateDate{configLoader: configLoader}
}

// Execute looks up the name.
func (uc *TranslateDate) Execute(_ context.Context, in TranslateDateInput) (*TranslateDateOutput, error) {
	lang := in.Lang
	if lang == "" {
		cfg, err := uc.configLoader.Load()
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		lang = cfg.Locale.Lang
	}

	out := &TranslateDateOutput{Lang: lang}
	switch in.Kind {
	case DateNameMonth:
		out.Name = domain.TranslateMonth(lang, in.Value)
	case DateNameDay:
		out.Name = domain.TranslateDay(lang, in.Value)
	default:
		return nil, fmt.Errorf("unknown date name kind %q", in.Kind)
	}
	return out, nil
}
