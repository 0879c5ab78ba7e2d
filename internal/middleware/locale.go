package middleware

import (
	"context"
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

type localeKey struct{}

// Languages the client apps ship UI strings for. The first entry is the
// fallback when nothing matches.
var localeMatcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Spanish,
	language.French,
	language.German,
})

// Locale resolves the caller's language from X-Locale, then Accept-Language,
// matched against the supported set. The base language lands in the request
// context and in the Content-Language response header.
func Locale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		locale := resolveLocale(r)
		w.Header().Set("Content-Language", locale)
		ctx := context.WithValue(r.Context(), localeKey{}, locale)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func resolveLocale(r *http.Request) string {
	prefs := strings.TrimSpace(r.Header.Get("X-Locale"))
	if prefs == "" {
		prefs = r.Header.Get("Accept-Language")
	}
	tags, _, err := language.ParseAcceptLanguage(prefs)
	if err != nil || len(tags) == 0 {
		tags = []language.Tag{language.English}
	}
	tag, _, _ := localeMatcher.Match(tags...)
	base, _ := tag.Base()
	return base.String()
}

// LocaleFromContext returns the resolved locale, or "en" outside a request.
func LocaleFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(localeKey{}).(string); ok {
		return v
	}
	return "en"
}
