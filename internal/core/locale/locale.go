package locale

import (
	"strings"

	"github.com/mnasyf821-dotcom/palcars/internal/constants"

	"golang.org/x/text/language"
)

// Language - язык интерфейса
type Language string

const (
	Arabic  Language = "ar"
	English Language = "en"
)

// DefaultLanguage - интерфейс по умолчанию арабский
const DefaultLanguage = Arabic

var supported = []language.Tag{language.Arabic, language.English}

var matcher = language.NewMatcher(supported)

// Parse принимает "ar" или "en" в любом регистре
func Parse(raw string) (Language, bool) {
	switch Language(strings.ToLower(strings.TrimSpace(raw))) {
	case Arabic:
		return Arabic, true
	case English:
		return English, true
	default:
		return "", false
	}
}

// Negotiate выбирает язык: сначала явный параметр, затем Accept-Language, затем fallback
func Negotiate(explicit, acceptLanguage string, fallback Language) Language {
	if lang, ok := Parse(explicit); ok {
		return lang
	}
	if lang, ok := MatchAcceptLanguage(acceptLanguage); ok {
		return lang
	}
	return fallback
}

// MatchAcceptLanguage подбирает поддерживаемый язык по заголовку Accept-Language.
// false, если заголовок пустой, некорректный или не содержит ar/en.
func MatchAcceptLanguage(acceptLanguage string) (Language, bool) {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return "", false
	}

	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return "", false
	}
	if supported[idx] == language.English {
		return English, true
	}
	return Arabic, true
}

// Tag возвращает тег x/text для форматирования чисел
func (l Language) Tag() language.Tag {
	if l == English {
		return language.AmericanEnglish
	}
	return language.Arabic
}

// T выбирает перевод строки
func T(lang Language, en, ar string) string {
	if lang == English {
		return en
	}
	return ar
}

// Label выбирает подпись из справочника
func Label(lang Language, label constants.Label) string {
	return T(lang, label.En, label.Ar)
}
