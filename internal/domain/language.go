// Package domain defines the bot's data model: supported languages and the
// immutable result records produced by the external provider clients.
package domain

// Language identifies one of the bot's display languages.
type Language string

const (
	LangUzLatin Language = "uz_latin"
	LangUzKiril Language = "uz_kiril"
	LangEnglish Language = "en"
)

// DefaultLanguage is used for new conversations and unknown language codes.
const DefaultLanguage = LangUzLatin

// Languages lists every supported language in presentation order.
var Languages = []Language{LangUzLatin, LangUzKiril, LangEnglish}

// ParseLanguage maps a raw code to a supported Language, falling back to the
// default for anything unrecognized.
func ParseLanguage(code string) Language {
	for _, lang := range Languages {
		if string(lang) == code {
			return lang
		}
	}

	return DefaultLanguage
}
