package main

import (
	"net/http"
	"time"

	"go.uber.org/zap"
	g "maragu.dev/gomponents"

	"omgagents.ai/web/internal/config"
	"omgagents.ai/web/internal/contact"
	legal "omgagents.ai/web/internal/content"
	"omgagents.ai/web/internal/handlers"
	"omgagents.ai/web/internal/i18n"
	mw "omgagents.ai/web/internal/middleware"
	"omgagents.ai/web/internal/observability"
	"omgagents.ai/web/internal/pageload"
	"omgagents.ai/web/internal/views"
)

// server holds the dependencies shared by every handler.
type server struct {
	cfg       config.Config
	bundle    *i18n.Bundle
	sessions  *mw.SessionStore
	legal     *legal.Store
	contact   *contact.Service
	analytics handlers.Analytics
	// sleep paces the page-load stream; tests replace it.
	sleep func(time.Duration)
}

// wantsFragment reports whether the response should be a partial swap rather
// than a full document. Boosted navigations expect the whole page.
func wantsFragment(r *http.Request) bool {
	return mw.IsHTMX(r.Context()) && !mw.IsBoosted(r)
}

// pageInput collects the request-scoped values the home view model needs.
func (s *server) pageInput(r *http.Request) handlers.PageInput {
	sess := mw.GetSession(r)
	in := handlers.PageInput{
		SiteURL:   s.cfg.SiteURL,
		CSRFToken: sess.CSRFToken,
		Analytics: s.analytics,
		Revealed:  s.sessions.Revealed(r),
	}
	// The entrance timeline runs once per document; swapped-in pages start
	// from its final frame.
	if mw.IsHTMX(r.Context()) {
		in.Load = pageload.Final()
	}
	return in
}

// renderPage writes the full document with o open, if set.
func (s *server) renderPage(w http.ResponseWriter, r *http.Request, tr i18n.Translator, status int, o *handlers.Overlay) {
	page := handlers.BuildPage(tr, s.pageInput(r))
	page.OpenOverlay(o, s.cfg.SiteURL)
	writeNode(w, r, status, views.Home(tr, page))
}

// renderOverlay answers an overlay request: the overlay root for htmx swaps,
// otherwise the page with the overlay open.
func (s *server) renderOverlay(w http.ResponseWriter, r *http.Request, o *handlers.Overlay) {
	tr := i18n.FromContext(r.Context())
	if wantsFragment(r) {
		writeNode(w, r, http.StatusOK, views.OverlayRoot(tr, o))
		return
	}
	s.renderPage(w, r, tr, http.StatusOK, o)
}

func writeNode(w http.ResponseWriter, r *http.Request, status int, n g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := n.Render(w); err != nil {
		observability.FromContext(r.Context()).Error("render failed", zap.Error(err))
	}
}

// notFound answers unknown paths and unknown overlay ids.
func (s *server) notFound(w http.ResponseWriter, r *http.Request) {
	tr := i18n.FromContext(r.Context())
	if tr.Lang() == "" {
		tr = s.bundle.Translator(s.bundle.Resolve(r.Header.Get("Accept-Language")))
	}
	if wantsFragment(r) {
		writeNode(w, r, http.StatusNotFound, views.NotFound(tr))
		return
	}
	http.Error(w, tr.T("errors.notFound"), http.StatusNotFound)
}
