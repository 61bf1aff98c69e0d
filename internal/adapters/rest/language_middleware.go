package rest

import (
	"net/http"

	"github.com/mnasyf821-dotcom/palcars/internal/contextkeys"
	"github.com/mnasyf821-dotcom/palcars/internal/core/locale"
)

// LanguageMiddleware выбирает язык ответа: параметр lang, затем Accept-Language,
// затем язык по умолчанию из конфигурации.
func LanguageMiddleware(fallback locale.Language) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := locale.Negotiate(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"), fallback)

			w.Header().Set("Content-Language", string(lang))
			w.Header().Add("Vary", "Accept-Language")
			next.ServeHTTP(w, r.WithContext(contextkeys.ContextWithLanguage(r.Context(), lang)))
		})
	}
}
