package domain

import (
	_ "embed"
	"fmt"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales.yaml
var localesContent []byte

type localeNames struct {
	Tag    string   `yaml:"tag"`
	Months []string `yaml:"months"`
	Days   []string `yaml:"days"`
}

var (
	localesOnce   sync.Once
	localeTable   []localeNames
	localeMatcher language.Matcher
)

func loadLocales() {
	if err := yaml.Unmarshal(localesContent, &localeTable); err != nil {
		// Should never happen with embedded table
		panic(fmt.Sprintf("failed to parse locale table: %v", err))
	}
	tags := make([]language.Tag, 0, len(localeTable))
	for _, l := range localeTable {
		if len(l.Months) != 12 || len(l.Days) != 7 {
			panic(fmt.Sprintf("locale %s: want 12 months and 7 days", l.Tag))
		}
		tags = append(tags, language.MustParse(l.Tag))
	}
	localeMatcher = language.NewMatcher(tags)
}

func lookupLocale(lang string) localeNames {
	localesOnce.Do(loadLocales)
	tag, err := language.Parse(lang)
	if err != nil {
		return localeTable[0]
	}
	_, idx, _ := localeMatcher.Match(tag)
	return localeTable[idx]
}

// SupportedLanguages returns the language tags with name tables.
func SupportedLanguages() []string {
	localesOnce.Do(loadLocales)
	out := make([]string, 0, len(localeTable))
	for _, l := range localeTable {
		out = append(out, l.Tag)
	}
	return out
}

// TranslateMonth returns the abbreviated name of a 0-based month in lang.
// Out-of-range months wrap around. Unknown languages use English.
func TranslateMonth(lang string, month int) string {
	return lookupLocale(lang).Months[wrap(month, 12)]
}

// TranslateDay returns the abbreviated weekday name in lang, 0 being Sunday.
// Out-of-range days wrap around. Unknown languages use English.
func TranslateDay(lang string, day int) string {
	return lookupLocale(lang).Days[wrap(day, 7)]
}

func wrap(n, m int) int {
	return ((n % m) + m) % m
}
