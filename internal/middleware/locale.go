package middleware

import (
	"net/http"
	"strings"
	"time"

	"omgagents.ai/web/internal/i18n"
)

const LangCookieName = "hl"

// Locale resolves the visitor language (query `hl`, session, `hl` cookie,
// Accept-Language, in that order), persists it and stores a Translator in the
// request context.
func Locale(bundle *i18n.Bundle) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s := GetSession(r)
			lang := ""
			if q := strings.TrimSpace(r.URL.Query().Get("hl")); q != "" && bundle.IsSupported(q) {
				lang = bundle.Normalize(q)
				SetLangCookie(w, lang)
			} else if s.Locale != "" && bundle.IsSupported(s.Locale) {
				lang = bundle.Normalize(s.Locale)
			} else if c, err := r.Cookie(LangCookieName); err == nil && bundle.IsSupported(c.Value) {
				lang = bundle.Normalize(c.Value)
			} else {
				lang = bundle.Resolve(r.Header.Get("Accept-Language"))
			}
			if s.Locale != lang {
				s.Locale = lang
				s.MarkDirty()
			}

			w.Header().Set("Content-Language", lang)
			ctx := WithLang(r.Context(), lang)
			ctx = i18n.WithTranslator(ctx, bundle.Translator(lang))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SetLangCookie remembers the language choice for a year.
func SetLangCookie(w http.ResponseWriter, lang string) {
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    lang,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(365 * 24 * time.Hour),
	})
}

// Lang returns the negotiated language for the request.
func Lang(r *http.Request) string {
	if v, ok := r.Context().Value(ctxKeyLang).(string); ok && v != "" {
		return v
	}
	if s := GetSession(r); s.Locale != "" {
		return s.Locale
	}
	return "en"
}

// VaryLocale sets Vary header for Accept-Language on dynamic responses
func VaryLocale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Accept-Language")
		w.Header().Add("Vary", "Cookie")
		next.ServeHTTP(w, r)
	})
}
