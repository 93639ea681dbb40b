package types

import (
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/text/language"
)

// LanguageTag represents a report output language (BCP 47 primary subtag)
type LanguageTag string

const (
	LangSwedish LanguageTag = "sv"
	LangEnglish LanguageTag = "en"
)

// DefaultLanguage is applied when no language is requested
const DefaultLanguage = LangSwedish

// SupportedLanguages returns every language a report can be rendered in
func SupportedLanguages() []LanguageTag {
	return []LanguageTag{LangSwedish, LangEnglish}
}

// String returns the string representation
func (l LanguageTag) String() string {
	return string(l)
}

// Validate checks that the tag is well-formed and one of the supported
// languages.
func (l LanguageTag) Validate() error {
	if _, err := language.Parse(string(l)); err != nil {
		return goerr.Wrap(err, "malformed language tag", goerr.V("language", l))
	}
	for _, supported := range SupportedLanguages() {
		if l == supported {
			return nil
		}
	}
	return goerr.New("unsupported language",
		goerr.V("language", l),
		goerr.V("supported", SupportedLanguages()))
}
