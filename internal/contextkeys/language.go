package contextkeys

import (
	"context"

	"github.com/mnasyf821-dotcom/palcars/internal/core/locale"
)

type languageKeyType struct{}

var languageKey = languageKeyType{}

func ContextWithLanguage(ctx context.Context, lang locale.Language) context.Context {
	return context.WithValue(ctx, languageKey, lang)
}

// LanguageFromContext возвращает язык запроса или язык по умолчанию
func LanguageFromContext(ctx context.Context) locale.Language {
	if lang, ok := ctx.Value(languageKey).(locale.Language); ok {
		return lang
	}
	return locale.DefaultLanguage
}
