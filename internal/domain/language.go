package domain

// Language is a supported conversation language
type Language string

const (
	LanguageRU Language = "ru"
	LanguageEN Language = "en"
)

// DefaultLanguage is used until the user picks a language
const DefaultLanguage = LanguageRU

// Callback data sent by the language selection keyboard
const (
	CallbackLangRU = "lang_ru"
	CallbackLangEN = "lang_en"
)

// LanguageFromCallback maps language keyboard callback data to a Language
func LanguageFromCallback(data string) (Language, bool) {
	switch data {
	case CallbackLangRU:
		return LanguageRU, true
	case CallbackLangEN:
		return LanguageEN, true
	default:
		return "", false
	}
}

// Normalize returns the language itself if supported, DefaultLanguage otherwise
func (l Language) Normalize() Language {
	switch l {
	case LanguageRU, LanguageEN:
		return l
	default:
		return DefaultLanguage
	}
}

// Callback returns the keyboard callback data for the language
func (l Language) Callback() string {
	switch l.Normalize() {
	case LanguageEN:
		return CallbackLangEN
	default:
		return CallbackLangRU
	}
}
