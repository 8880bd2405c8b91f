package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"omgagents.ai/web/internal/catalog"
	legal "omgagents.ai/web/internal/content"
	"omgagents.ai/web/internal/handlers"
	"omgagents.ai/web/internal/i18n"
	mw "omgagents.ai/web/internal/middleware"
	"omgagents.ai/web/internal/overlay"
)

// home renders the landing page. The about, product, legal and contact query
// parameters open the matching overlay so every modal has a shareable URL.
func (s *server) home(w http.ResponseWriter, r *http.Request) {
	tr := i18n.FromContext(r.Context())
	o, ok := s.deepLink(r, tr)
	if !ok {
		s.notFound(w, r)
		return
	}
	s.renderPage(w, r, tr, http.StatusOK, o)
}

// deepLink resolves the overlay named by the query string. It reports false
// when a parameter names something that does not exist.
func (s *server) deepLink(r *http.Request, tr i18n.Translator) (*handlers.Overlay, bool) {
	q := r.URL.Query()
	switch {
	case q.Get("about") != "":
		id, ok := catalog.ParseCardID(q.Get("about"))
		if !ok {
			return nil, false
		}
		o, ok := handlers.CardOverlay(tr, id)
		if ok {
			openOverlay(r, overlay.KindAbout, q.Get("about"))
		}
		return o, ok
	case q.Get("product") != "":
		o, ok := handlers.ProductOverlay(tr, q.Get("product"))
		if ok {
			openOverlay(r, overlay.KindProduct, q.Get("product"))
		}
		return o, ok
	case q.Get("legal") != "":
		kind, ok := legal.ParseKind(q.Get("legal"))
		if !ok {
			return nil, false
		}
		page, err := s.legal.Legal(r.Context(), kind, tr.Lang())
		if err != nil {
			logError(r, "legal content unavailable", err)
			return nil, false
		}
		openOverlay(r, overlay.KindLegal, string(kind))
		return handlers.LegalOverlay(page), true
	case q.Get("contact") != "":
		return handlers.ContactOverlay(s.openContactForm(r)), true
	}
	return nil, true
}

// switchLang stores the chosen language and re-renders the page in it. htmx
// requests get the page back in place; plain requests are redirected home.
func (s *server) switchLang(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if !s.bundle.IsSupported(code) {
		s.notFound(w, r)
		return
	}
	lang := s.bundle.Normalize(code)
	sess := mw.GetSession(r)
	if sess.Locale != lang {
		sess.Locale = lang
		sess.MarkDirty()
	}
	mw.SetLangCookie(w, lang)

	if !mw.IsHTMX(r.Context()) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	w.Header().Set("HX-Push-Url", "/")
	w.Header().Set("Content-Language", lang)
	s.renderPage(w, r, s.bundle.Translator(lang), http.StatusOK, nil)
}
